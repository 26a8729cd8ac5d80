package calendar

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
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("/:year", rbac.Authorize(rbacService, "libur", "read"), handler.ListHolidays)
	}
}
