package v1

import (
	"net/http"

	"rrdesigns-backend/internal/delivery/http/response"
	"rrdesigns-backend/internal/domain"
	"rrdesigns-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

type LoginRequest struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

func NewAdminHandler(public *gin.RouterGroup, admin *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	public.POST("/admin/login", handler.Login)
	admin.PUT("/password", handler.ChangePassword)
}

// Login godoc
// @Summary      Check the admin panel password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Password"
// @Success      200          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	if !h.adminUC.VerifyPassword(c.Request.Context(), req.Password) {
		_ = c.Error(apperror.Unauthorized("Invalid admin password"))
		return
	}
	response.Success(c, http.StatusOK, "Authenticated", nil)
}

// ChangePassword godoc
// @Summary      Change the admin panel password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-Password  header    string                 true  "Current admin password"
// @Param        body              body      ChangePasswordRequest  true  "New password"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /admin/password [put]
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.adminUC.ChangePassword(c.Request.Context(), req.NewPassword); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password updated", nil)
}
