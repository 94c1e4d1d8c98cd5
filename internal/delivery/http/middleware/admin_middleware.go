package middleware

import (
	"rrdesigns-backend/internal/domain"
	"rrdesigns-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const AdminPasswordHeader = "X-Admin-Password"

// AdminAuth guards staff routes with the admin panel password.
func AdminAuth(adminUC domain.AdminUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !adminUC.VerifyPassword(c.Request.Context(), c.GetHeader(AdminPasswordHeader)) {
			_ = c.Error(apperror.Unauthorized("Invalid admin password"))
			c.Abort()
			return
		}
		c.Next()
	}
}
