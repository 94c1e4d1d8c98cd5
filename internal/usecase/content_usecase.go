package usecase

import (
	"context"
	"errors"
	"strings"

	"rrdesigns-backend/internal/domain"
	"rrdesigns-backend/pkg/apperror"
	"rrdesigns-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contentUsecase struct {
	gallery  domain.GalleryRepository
	projects domain.ProjectRepository
	validate *validator.Validate
}

func NewContentUsecase(gallery domain.GalleryRepository, projects domain.ProjectRepository, validate *validator.Validate) domain.ContentUsecase {
	return &contentUsecase{
		gallery:  gallery,
		projects: projects,
		validate: validate,
	}
}

func (u *contentUsecase) ListGallery(ctx context.Context) ([]domain.GalleryItem, error) {
	return u.gallery.List(ctx)
}

func (u *contentUsecase) AddGalleryItem(ctx context.Context, item *domain.GalleryItem) error {
	item.Title = strings.TrimSpace(item.Title)
	item.Image = strings.TrimSpace(item.Image)
	if err := u.validate.Struct(item); err != nil {
		return invalid(err)
	}
	return u.gallery.Create(ctx, item)
}

func (u *contentUsecase) UpdateGalleryItem(ctx context.Context, id int64, patch *domain.GalleryItemPatch) (*domain.GalleryItem, error) {
	trimPatch(patch.Title, patch.Image)
	if blank(patch.Title) {
		return nil, apperror.BadRequest("Title cannot be empty")
	}
	if blank(patch.Image) {
		return nil, apperror.BadRequest("Image URL cannot be empty")
	}

	item, err := u.gallery.Update(ctx, id, patch)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Gallery item not found")
	}
	return item, err
}

func (u *contentUsecase) DeleteGalleryItem(ctx context.Context, id int64) ([]domain.GalleryItem, error) {
	items, err := u.gallery.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Gallery item not found")
	}
	return items, err
}

func (u *contentUsecase) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return u.projects.List(ctx)
}

func (u *contentUsecase) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := u.projects.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Project not found")
	}
	return project, err
}

func (u *contentUsecase) AddProject(ctx context.Context, project *domain.Project) error {
	project.Name = strings.TrimSpace(project.Name)
	project.Category = strings.TrimSpace(project.Category)
	if err := u.validate.Struct(project); err != nil {
		return invalid(err)
	}
	return u.projects.Create(ctx, project)
}

func (u *contentUsecase) UpdateProject(ctx context.Context, id int64, patch *domain.ProjectPatch) (*domain.Project, error) {
	trimPatch(patch.Name, patch.Category)
	if blank(patch.Name) {
		return nil, apperror.BadRequest("Name cannot be empty")
	}
	if blank(patch.Category) {
		return nil, apperror.BadRequest("Category cannot be empty")
	}

	project, err := u.projects.Update(ctx, id, patch)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Project not found")
	}
	return project, err
}

func (u *contentUsecase) DeleteProject(ctx context.Context, id int64) ([]domain.Project, error) {
	projects, err := u.projects.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Project not found")
	}
	return projects, err
}

type adminUsecase struct {
	store domain.AdminCredentialStore
}

func NewAdminUsecase(store domain.AdminCredentialStore) domain.AdminUsecase {
	return &adminUsecase{store: store}
}

func (u *adminUsecase) VerifyPassword(ctx context.Context, password string) bool {
	return u.store.Verify(ctx, password)
}

func (u *adminUsecase) ChangePassword(ctx context.Context, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return apperror.BadRequest("New password is required")
	}
	return u.store.SetPassword(ctx, newPassword)
}

// trimPatch trims the present fields that create also trims.
func trimPatch(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// blank reports a patch field that is present but empty.
func blank(s *string) bool {
	return s != nil && *s == ""
}

func invalid(err error) error {
	return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
}
