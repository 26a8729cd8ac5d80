package quota

import (
	"context"
	"database/sql"
	"errors"
	"time"

	quotaerrors "go-simpeg/internal/quota/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=quota_repo.go -destination=mock/quota_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByEmployeeYear(ctx context.Context, employeeID string, year int) (*LeaveQuota, error)
	Create(ctx context.Context, q *LeaveQuota) error
	Update(ctx context.Context, q *LeaveQuota) error
	ListLeaveUsages(ctx context.Context, employeeID string, year int) ([]LeaveUsage, error)
	GetEmployeeHireDate(ctx context.Context, employeeID string) (time.Time, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) FindByEmployeeYear(ctx context.Context, employeeID string, year int) (*LeaveQuota, error) {
	var q LeaveQuota
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		First(&q).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, quotaerrors.ErrQuotaNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) Create(ctx context.Context, q *LeaveQuota) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *repository) Update(ctx context.Context, q *LeaveQuota) error {
	return r.db.WithContext(ctx).Save(q).Error
}

// ListLeaveUsages membaca rekaman cuti pegawai pada tahun anggaran tertentu.
// Semua status ikut dihitung; lihat catatan kebijakan di service cuti.
func (r *repository) ListLeaveUsages(ctx context.Context, employeeID string, year int) ([]LeaveUsage, error) {
	var usages []LeaveUsage
	err := r.db.WithContext(ctx).
		Table("leaves").
		Select("leave_type", "duration_days").
		Where("employee_id = ?", employeeID).
		Where("fiscal_year = ?", year).
		Where("deleted_at IS NULL").
		Scan(&usages).Error
	return usages, err
}

func (r *repository) GetEmployeeHireDate(ctx context.Context, employeeID string) (time.Time, error) {
	var hireDate time.Time
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("hire_date").
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Scan(&hireDate).Error
	return hireDate, err
}

// IsUniqueViolation reports whether err is a Postgres duplicate-key error,
// which the lazy-create path treats as "someone else created it first".
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
