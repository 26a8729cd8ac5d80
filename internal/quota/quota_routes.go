package quota

import (
	"go-simpeg/internal/middleware"
	"go-simpeg/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	quotas := r.Group("/quotas")
	quotas.Use(middleware.AuthMiddleware())
	{
		quotas.GET("/:employee_id/:year", rbac.Authorize(rbacService, "kuota", "read"), handler.Get)
		quotas.POST("/:employee_id/:year/recompute", rbac.Authorize(rbacService, "kuota", "recompute"), handler.Recompute)
	}
}
