package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", rbac.Authorize(rbacService, "pegawai", "read"), handler.GetAll)
		employees.GET("/options", rbac.Authorize(rbacService, "pegawai", "read"), handler.GetOptions)
		employees.GET("/:id", rbac.Authorize(rbacService, "pegawai", "read"), handler.GetById)
		employees.POST("", rbac.Authorize(rbacService, "pegawai", "create"), handler.Create)
		employees.PUT("/:id", rbac.Authorize(rbacService, "pegawai", "update"), handler.Update)
		employees.DELETE("/:id", rbac.Authorize(rbacService, "pegawai", "delete"), handler.Delete)
		employees.POST("/:id/educations", rbac.Authorize(rbacService, "pegawai", "update"), handler.AddEducation)
		employees.POST("/:id/rank-histories", rbac.Authorize(rbacService, "pegawai", "update"), handler.AddRankHistory)
	}
}
