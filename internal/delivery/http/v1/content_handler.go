package v1

import (
	"net/http"
	"strconv"

	"rrdesigns-backend/internal/delivery/http/response"
	"rrdesigns-backend/internal/domain"
	"rrdesigns-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

func NewContentHandler(public *gin.RouterGroup, admin *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{contentUC: contentUC}

	// PUBLIC routes - listings rendered by the Gallery and Projects pages
	public.GET("/gallery", handler.ListGallery)
	public.GET("/projects", handler.ListProjects)
	public.GET("/projects/:id", handler.GetProject)

	// ADMIN routes - admin panel password required
	gallery := admin.Group("/gallery")
	{
		gallery.POST("", handler.CreateGalleryItem)
		gallery.PUT("/:id", handler.UpdateGalleryItem)
		gallery.DELETE("/:id", handler.DeleteGalleryItem)
	}

	projects := admin.Group("/projects")
	{
		projects.POST("", handler.CreateProject)
		projects.PUT("/:id", handler.UpdateProject)
		projects.DELETE("/:id", handler.DeleteProject)
	}
}

// ListGallery godoc
// @Summary      List gallery items
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.GalleryItem}
// @Router       /gallery [get]
func (h *ContentHandler) ListGallery(c *gin.Context) {
	items, err := h.contentUC.ListGallery(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Gallery retrieved", items)
}

// CreateGalleryItem godoc
// @Summary      Add a gallery item
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-Password  header    string              true  "Admin password"
// @Param        item              body      domain.GalleryItem  true  "Gallery item"
// @Success      201  {object}  response.Response{data=domain.GalleryItem}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /admin/gallery [post]
func (h *ContentHandler) CreateGalleryItem(c *gin.Context) {
	var item domain.GalleryItem
	if !bindJSON(c, &item) {
		return
	}

	if err := h.contentUC.AddGalleryItem(c.Request.Context(), &item); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Gallery item created", item)
}

// UpdateGalleryItem godoc
// @Summary      Update a gallery item
// @Description  Only the fields present in the body are changed.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-Password  header    string                   true  "Admin password"
// @Param        id                path      int                      true  "Gallery item ID"
// @Param        item              body      domain.GalleryItemPatch  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.GalleryItem}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/gallery/{id} [put]
func (h *ContentHandler) UpdateGalleryItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch domain.GalleryItemPatch
	if !bindJSON(c, &patch) {
		return
	}

	item, err := h.contentUC.UpdateGalleryItem(c.Request.Context(), id, &patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Gallery item updated", item)
}

// DeleteGalleryItem godoc
// @Summary      Delete a gallery item
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Password  header    string  true  "Admin password"
// @Param        id                path      int     true  "Gallery item ID"
// @Success      200  {object}  response.Response{data=[]domain.GalleryItem}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/gallery/{id} [delete]
func (h *ContentHandler) DeleteGalleryItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.contentUC.DeleteGalleryItem(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Gallery item deleted", items)
}

// ListProjects godoc
// @Summary      List projects
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Project}
// @Router       /projects [get]
func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects, err := h.contentUC.ListProjects(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}

// GetProject godoc
// @Summary      Get project details
// @Tags         content
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  response.Response{data=domain.Project}
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [get]
func (h *ContentHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	project, err := h.contentUC.GetProject(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project retrieved", project)
}

// CreateProject godoc
// @Summary      Add a project
// @Description  images may be a JSON array or a comma-separated string.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-Password  header    string          true  "Admin password"
// @Param        project           body      domain.Project  true  "Project"
// @Success      201  {object}  response.Response{data=domain.Project}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /admin/projects [post]
func (h *ContentHandler) CreateProject(c *gin.Context) {
	var project domain.Project
	if !bindJSON(c, &project) {
		return
	}

	if err := h.contentUC.AddProject(c.Request.Context(), &project); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created", project)
}

// UpdateProject godoc
// @Summary      Update a project
// @Description  Only the fields present in the body are changed.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-Password  header    string               true  "Admin password"
// @Param        id                path      int                  true  "Project ID"
// @Param        project           body      domain.ProjectPatch  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Project}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/projects/{id} [put]
func (h *ContentHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch domain.ProjectPatch
	if !bindJSON(c, &patch) {
		return
	}

	project, err := h.contentUC.UpdateProject(c.Request.Context(), id, &patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated", project)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Password  header    string  true  "Admin password"
// @Param        id                path      int     true  "Project ID"
// @Success      200  {object}  response.Response{data=[]domain.Project}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/projects/{id} [delete]
func (h *ContentHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	projects, err := h.contentUC.DeleteProject(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted", projects)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(apperror.BadRequest("Invalid ID"))
		return 0, false
	}
	return id, true
}
