package domain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// ErrNotFound is returned by content repositories for unknown ids.
var ErrNotFound = errors.New("resource not found")

type GalleryItem struct {
	ID       int64  `json:"id"`
	Title    string `json:"title" validate:"required"`
	Location string `json:"location"`
	Image    string `json:"image" validate:"required"`
}

// GalleryItemPatch carries only the fields being changed.
type GalleryItemPatch struct {
	Title    *string `json:"title"`
	Location *string `json:"location"`
	Image    *string `json:"image"`
}

type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Location    string    `json:"location"`
	Area        string    `json:"area"`
	Year        string    `json:"year"`
	Palette     string    `json:"palette"`
	Description string    `json:"description"`
	Video       string    `json:"video"`
	Images      ImageList `json:"images"`
}

type ProjectPatch struct {
	Name        *string    `json:"name"`
	Category    *string    `json:"category"`
	Location    *string    `json:"location"`
	Area        *string    `json:"area"`
	Year        *string    `json:"year"`
	Palette     *string    `json:"palette"`
	Description *string    `json:"description"`
	Video       *string    `json:"video"`
	Images      *ImageList `json:"images"`
}

// ImageList accepts a JSON array of URLs or one comma-separated string.
type ImageList []string

func (l *ImageList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = cleanImages(list)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*l = cleanImages(strings.Split(joined, ","))
	return nil
}

func cleanImages(in []string) ImageList {
	out := make(ImageList, 0, len(in))
	for _, img := range in {
		if img = strings.TrimSpace(img); img != "" {
			out = append(out, img)
		}
	}
	return out
}

type GalleryRepository interface {
	List(ctx context.Context) ([]GalleryItem, error)
	Create(ctx context.Context, item *GalleryItem) error
	Update(ctx context.Context, id int64, patch *GalleryItemPatch) (*GalleryItem, error)
	Delete(ctx context.Context, id int64) ([]GalleryItem, error)
}

type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, id int64, patch *ProjectPatch) (*Project, error)
	Delete(ctx context.Context, id int64) ([]Project, error)
}

// AdminCredentialStore holds the single admin panel password.
type AdminCredentialStore interface {
	Verify(ctx context.Context, password string) bool
	SetPassword(ctx context.Context, password string) error
}

type ContentUsecase interface {
	ListGallery(ctx context.Context) ([]GalleryItem, error)
	AddGalleryItem(ctx context.Context, item *GalleryItem) error
	UpdateGalleryItem(ctx context.Context, id int64, patch *GalleryItemPatch) (*GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id int64) ([]GalleryItem, error)

	ListProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, id int64) (*Project, error)
	AddProject(ctx context.Context, project *Project) error
	UpdateProject(ctx context.Context, id int64, patch *ProjectPatch) (*Project, error)
	DeleteProject(ctx context.Context, id int64) ([]Project, error)
}

type AdminUsecase interface {
	VerifyPassword(ctx context.Context, password string) bool
	ChangePassword(ctx context.Context, newPassword string) error
}
