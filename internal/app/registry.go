package app

import (
	"context"
	"database/sql"
	"path/filepath"

	"go-simpeg/internal/auth"
	"go-simpeg/internal/calendar"
	"go-simpeg/internal/employee"
	"go-simpeg/internal/leave"
	"go-simpeg/internal/messaging/kafka"
	"go-simpeg/internal/middleware"
	"go-simpeg/internal/quota"
	"go-simpeg/internal/rbac"
	"go-simpeg/internal/rbac/infra"
	"go-simpeg/internal/rbac/rbac_http"
	"go-simpeg/internal/report"
	"go-simpeg/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// quotaGuard menjembatani workflow cuti dengan service kuota tanpa membuat
// siklus impor antar paket.
type quotaGuard struct {
	quotas quota.Service
}

func (g quotaGuard) Snapshot(ctx context.Context, employeeID string, year int) (leave.QuotaSnapshot, error) {
	resp, err := g.quotas.Get(ctx, employeeID, year)
	if err != nil {
		return leave.QuotaSnapshot{}, err
	}
	return leave.QuotaSnapshot{
		AnnualQuota:      resp.AnnualQuota,
		AnnualUsed:       resp.AnnualUsed,
		AnnualRemaining:  resp.AnnualRemaining,
		TotalAvailable:   resp.TotalAvailable,
		ServiceYears:     resp.ServiceYears,
		BigLeaveEligible: resp.BigLeaveEligible,
		BigLeaveStatus:   resp.BigLeaveStatus,
	}, nil
}

func (g quotaGuard) Recompute(ctx context.Context, employeeID string, year int) error {
	_, err := g.quotas.Recompute(ctx, employeeID, year)
	return err
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	cal := calendar.Indonesia()

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	quotaRepo := quota.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("configs", "rbac_model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	quotaService := quota.NewService(db, quotaRepo, rdb)
	authService := auth.NewService(authRepo, rbacService, employeeRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, cal, quotaGuard{quotas: quotaService}, outboxRepo)
	reportService := report.NewService(reportRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	calendarHandler := calendar.NewHandler(cal)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandlerWithCache(leaveService, rdb)
	quotaHandler := quota.NewHandler(quotaService)
	reportHandler := report.NewHandler(reportService)
	rbacHandler := rbac.NewHandler(rbacService, rbacRepo)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.ContextLogger(zap.L()))
	{
		auth.RegisterRoutes(api, authHandler)
		calendar.RegisterRoutes(api, calendarHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		quota.RegisterRoutes(api, quotaHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
		rbac_http.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
