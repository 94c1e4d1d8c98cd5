package memory

import "rrdesigns-backend/internal/domain"

// DefaultGallery is the published gallery loaded at startup.
func DefaultGallery() []domain.GalleryItem {
	return []domain.GalleryItem{
		{ID: 1, Title: "Skyline Residences", Location: "Kochi • Residential", Image: "https://images.unsplash.com/photo-1616594039302-0f48c2df307d?q=80&w=1400"},
		{ID: 2, Title: "Harborfront Tower", Location: "Bengaluru • Commercial", Image: "https://images.unsplash.com/photo-1484154218962-a197022b5858?q=80&w=1400"},
		{ID: 3, Title: "Palm Grove Villa", Location: "Goa • Luxury Villa", Image: "https://images.unsplash.com/photo-1505691938895-1758d7feb511?q=80&w=1400"},
		{ID: 4, Title: "Cascade Retreat", Location: "Munnar • Boutique Stay", Image: "https://images.unsplash.com/photo-1464146072230-91cabc968266?q=80&w=1400"},
		{ID: 5, Title: "Zenith Lofts", Location: "Mumbai • Residential", Image: "https://images.unsplash.com/photo-1493663284031-b7e3aefcae8e?q=80&w=1400"},
		{ID: 6, Title: "Atrium Exchange", Location: "Hyderabad • Corporate", Image: "https://images.unsplash.com/photo-1431578500526-4d9613015464?q=80&w=1400"},
		{ID: 7, Title: "Terracotta House", Location: "Pune • Contemporary Home", Image: "https://images.unsplash.com/photo-1616594039514-7ed9b3567ec4?q=80&w=1400"},
		{ID: 8, Title: "Spectrum Studios", Location: "Delhi • Co-working", Image: "https://images.unsplash.com/photo-1616486338812-3dadae4b4ace?q=80&w=1400"},
	}
}

// DefaultProjects is the published project portfolio loaded at startup.
func DefaultProjects() []domain.Project {
	return []domain.Project{
		{
			ID:          1,
			Name:        "Skyline Residences",
			Category:    "Residential",
			Location:    "Kochi, Kerala",
			Area:        "4,800 sqft",
			Year:        "2024",
			Palette:     "Warm neutrals, brushed brass, Calacatta marble",
			Description: "A duplex apartment transformed into a light-filled retreat featuring bespoke joinery, layered lighting and handcrafted statement furniture.",
			Video:       "https://videos.pexels.com/video-files/30154917/12201209_2560_1440_25fps.mp4",
			Images: domain.ImageList{
				"https://images.unsplash.com/photo-1505691938895-1758d7feb511?q=80&w=1200",
				"https://images.unsplash.com/photo-1505691938895-1758d7feb511?q=80&w=800",
				"https://images.unsplash.com/photo-1616594039964-ae9021a400a0?q=80&w=800",
			},
		},
		{
			ID:          2,
			Name:        "Harborfront Tower",
			Category:    "Commercial",
			Location:    "Bengaluru, India",
			Area:        "9,200 sqft",
			Year:        "2023",
			Palette:     "Charcoal, smoked oak, matte black metal",
			Description: "An executive workspace with collaborative lounges, acoustic pods and a gallery-like reception that mirrors RR Designs' high-gloss detailing.",
			Video:       "https://videos.pexels.com/video-files/30154919/12201215_1920_1080_25fps.mp4",
			Images: domain.ImageList{
				"https://images.unsplash.com/photo-1484154218962-a197022b5858?q=80&w=1200",
				"https://images.unsplash.com/photo-1464146072230-91cabc968266?q=80&w=800",
				"https://images.unsplash.com/photo-1505691938895-1758d7feb511?q=80&w=600",
			},
		},
		{
			ID:          3,
			Name:        "Palm Grove Villa",
			Category:    "Luxury Villa",
			Location:    "Goa, India",
			Area:        "6,350 sqft",
			Year:        "2022",
			Palette:     "Terrazzo, cane, teak, sea-glass hues",
			Description: "Indoor-outdoor living merges with a floating staircase, sunken conversation pits, and custom lighting designed to mimic coastal sunsets.",
			Video:       "https://videos.pexels.com/video-files/27476983/12119995_1920_1080_30fps.mp4",
			Images: domain.ImageList{
				"https://images.unsplash.com/photo-1505691938895-1758d7feb511?q=80&w=1000",
				"https://images.unsplash.com/photo-1464146072230-91cabc968266?q=80&w=900",
				"https://images.unsplash.com/photo-1616594039302-0f48c2df307d?q=80&w=800",
			},
		},
	}
}
