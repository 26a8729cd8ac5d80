package rbac_http

import (
	"go-simpeg/internal/middleware"
	"go-simpeg/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *rbac.Handler, service rbac.Service) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/enforce", handler.Enforce)

		// Management
		group.GET("/roles", rbac.Authorize(service, "role", "read"), handler.ListRoles)
		group.GET("/roles/:id", rbac.Authorize(service, "role", "read"), handler.GetRole)
		group.POST("/roles", rbac.Authorize(service, "role", "manage"), handler.CreateRole)
		group.PUT("/roles/:id", rbac.Authorize(service, "role", "manage"), handler.UpdateRole)
		group.DELETE("/roles/:id", rbac.Authorize(service, "role", "manage"), handler.DeleteRole)
		group.POST("/assignments", rbac.Authorize(service, "role", "manage"), handler.AssignRole)

		group.GET("/permissions", rbac.Authorize(service, "role", "manage"), handler.ListPermissions)
	}
}
