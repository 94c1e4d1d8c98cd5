package memory

import (
	"context"
	"slices"
	"sync"

	"rrdesigns-backend/internal/domain"
)

type galleryRepo struct {
	mu    sync.RWMutex
	items []domain.GalleryItem
	ids   *idSource
}

// NewGalleryRepository returns a process-local store seeded with seed.
func NewGalleryRepository(seed []domain.GalleryItem) domain.GalleryRepository {
	return &galleryRepo{
		items: append([]domain.GalleryItem{}, seed...),
		ids:   newIDSource(),
	}
}

func (r *galleryRepo) List(ctx context.Context) ([]domain.GalleryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

func (r *galleryRepo) Create(ctx context.Context, item *domain.GalleryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.ids.next()
	r.items = append(r.items, *item)
	return nil
}

func (r *galleryRepo) Update(ctx context.Context, id int64, patch *domain.GalleryItemPatch) (*domain.GalleryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.items, func(it domain.GalleryItem) bool { return it.ID == id })
	if i < 0 {
		return nil, domain.ErrNotFound
	}

	item := &r.items[i]
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Location != nil {
		item.Location = *patch.Location
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}

	updated := *item
	return &updated, nil
}

func (r *galleryRepo) Delete(ctx context.Context, id int64) ([]domain.GalleryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.items, func(it domain.GalleryItem) bool { return it.ID == id })
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	r.items = slices.Delete(r.items, i, i+1)
	return slices.Clone(r.items), nil
}
