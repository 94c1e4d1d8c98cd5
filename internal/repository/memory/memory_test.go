package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"rrdesigns-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestGalleryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewGalleryRepository(DefaultGallery())

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 8)

	item := &domain.GalleryItem{Title: "Lotus Court", Location: "Chennai • Residential", Image: "https://example.com/lotus.jpg"}
	require.NoError(t, repo.Create(ctx, item))
	assert.NotZero(t, item.ID)

	updated, err := repo.Update(ctx, item.ID, &domain.GalleryItemPatch{Location: strPtr("Chennai • Villa")})
	require.NoError(t, err)
	assert.Equal(t, "Lotus Court", updated.Title)
	assert.Equal(t, "Chennai • Villa", updated.Location)
	assert.Equal(t, item.ID, updated.ID)

	remaining, err := repo.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 8)

	_, err = repo.Delete(ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Update(ctx, 999, &domain.GalleryItemPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGalleryRepository_ListIsACopy(t *testing.T) {
	ctx := context.Background()
	repo := NewGalleryRepository(DefaultGallery())

	items, _ := repo.List(ctx)
	items[0].Title = "mutated"

	again, _ := repo.List(ctx)
	assert.Equal(t, "Skyline Residences", again[0].Title)
}

func TestProjectRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(DefaultProjects())

	p, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Harborfront Tower", p.Name)

	p.Images[0] = "mutated"
	fresh, _ := repo.GetByID(ctx, 2)
	assert.NotEqual(t, "mutated", fresh.Images[0])

	created := &domain.Project{Name: "Lotus Court", Category: "Residential"}
	require.NoError(t, repo.Create(ctx, created))
	assert.NotNil(t, created.Images)

	images := domain.ImageList{"a.jpg", "b.jpg"}
	updated, err := repo.Update(ctx, created.ID, &domain.ProjectPatch{Year: strPtr("2025"), Images: &images})
	require.NoError(t, err)
	assert.Equal(t, "Lotus Court", updated.Name)
	assert.Equal(t, "2025", updated.Year)
	assert.Equal(t, images, updated.Images)

	kept, err := repo.Update(ctx, created.ID, &domain.ProjectPatch{Area: strPtr("900 sqft")})
	require.NoError(t, err)
	assert.Equal(t, images, kept.Images)

	remaining, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, remaining, 3)

	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIDSource_StrictlyIncreasing(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	src := &idSource{now: func() time.Time { return fixed }}

	a, b, c := src.next(), src.next(), src.next()
	assert.Equal(t, int64(1_700_000_000_000), a)
	assert.Equal(t, a+1, b)
	assert.Equal(t, b+1, c)
}

func TestGalleryRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewGalleryRepository(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &domain.GalleryItem{Title: "t", Image: "i"})
		}()
	}
	wg.Wait()

	items, _ := repo.List(ctx)
	require.Len(t, items, 50)
	seen := map[int64]bool{}
	for _, it := range items {
		assert.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
	}
}

func TestAdminCredentialStore(t *testing.T) {
	ctx := context.Background()
	store := NewAdminCredentialStore("admin123")

	assert.True(t, store.Verify(ctx, "admin123"))
	assert.False(t, store.Verify(ctx, "admin1234"))
	assert.False(t, store.Verify(ctx, ""))

	require.NoError(t, store.SetPassword(ctx, "n3w-pass"))
	assert.False(t, store.Verify(ctx, "admin123"))
	assert.True(t, store.Verify(ctx, "n3w-pass"))

	assert.False(t, NewAdminCredentialStore("").Verify(ctx, ""))
}
