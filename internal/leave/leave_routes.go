package leave

import (
	"go-simpeg/internal/middleware"
	"go-simpeg/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	redisClient *redis.Client,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.GET("", rbac.Authorize(rbacService, "cuti", "read"), handler.GetAll)
		leaves.GET("/:id", rbac.Authorize(rbacService, "cuti", "read"), handler.GetById)
		// Pengajuan dari form rentan double-submit, lindungi dengan idempotency key.
		leaves.POST("",
			rbac.Authorize(rbacService, "cuti", "create"),
			middleware.Idempotency(redisClient),
			handler.Create,
		)
		leaves.POST("/preview", rbac.Authorize(rbacService, "cuti", "read"), handler.Preview)
		leaves.PUT("/:id", rbac.Authorize(rbacService, "cuti", "update"), handler.Update)
		leaves.POST("/:id/approve", rbac.Authorize(rbacService, "cuti", "approve"), handler.Approve)
		leaves.POST("/:id/reject", rbac.Authorize(rbacService, "cuti", "approve"), handler.Reject)
		leaves.POST("/:id/complete", rbac.Authorize(rbacService, "cuti", "approve"), handler.Complete)
		leaves.DELETE("/:id", rbac.Authorize(rbacService, "cuti", "delete"), handler.Delete)
	}
}
