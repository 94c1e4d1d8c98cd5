package memory

import (
	"context"
	"slices"
	"sync"

	"rrdesigns-backend/internal/domain"
)

type projectRepo struct {
	mu       sync.RWMutex
	projects []domain.Project
	ids      *idSource
}

// NewProjectRepository returns a process-local store seeded with seed.
func NewProjectRepository(seed []domain.Project) domain.ProjectRepository {
	projects := make([]domain.Project, len(seed))
	for i, p := range seed {
		projects[i] = cloneProject(p)
	}
	return &projectRepo{
		projects: projects,
		ids:      newIDSource(),
	}
}

func (r *projectRepo) List(ctx context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(), nil
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	p := cloneProject(r.projects[i])
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	project.ID = r.ids.next()
	if project.Images == nil {
		project.Images = domain.ImageList{}
	}
	r.projects = append(r.projects, cloneProject(*project))
	return nil
}

func (r *projectRepo) Update(ctx context.Context, id int64, patch *domain.ProjectPatch) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}

	p := &r.projects[i]
	setIf(&p.Name, patch.Name)
	setIf(&p.Category, patch.Category)
	setIf(&p.Location, patch.Location)
	setIf(&p.Area, patch.Area)
	setIf(&p.Year, patch.Year)
	setIf(&p.Palette, patch.Palette)
	setIf(&p.Description, patch.Description)
	setIf(&p.Video, patch.Video)
	if patch.Images != nil {
		p.Images = slices.Clone(*patch.Images)
	}

	updated := cloneProject(*p)
	return &updated, nil
}

func (r *projectRepo) Delete(ctx context.Context, id int64) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	r.projects = slices.Delete(r.projects, i, i+1)
	return r.snapshot(), nil
}

func (r *projectRepo) index(id int64) int {
	return slices.IndexFunc(r.projects, func(p domain.Project) bool { return p.ID == id })
}

func (r *projectRepo) snapshot() []domain.Project {
	out := make([]domain.Project, len(r.projects))
	for i, p := range r.projects {
		out[i] = cloneProject(p)
	}
	return out
}

func cloneProject(p domain.Project) domain.Project {
	p.Images = slices.Clone(p.Images)
	if p.Images == nil {
		p.Images = domain.ImageList{}
	}
	return p
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
