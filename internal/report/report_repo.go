package report

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	LeaveRecap(ctx context.Context, year int) ([]LeaveRecapRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// LeaveRecap menggabungkan data pegawai, saldo kuota, dan jumlah pengajuan
// yang masih menunggu untuk satu tahun anggaran.
func (r *repository) LeaveRecap(ctx context.Context, year int) ([]LeaveRecapRow, error) {
	var rows []LeaveRecapRow

	err := r.db.WithContext(ctx).
		Table("employees e").
		Select(`
			e.id::text AS employee_id,
			e.nip,
			e.full_name,
			e.work_unit,
			COALESCE(q.annual_quota, 0) AS annual_quota,
			COALESCE(q.annual_used, 0) AS annual_used,
			COALESCE(q.annual_remaining, 0) AS annual_remaining,
			COALESCE(q.previous_year_remaining, 0) AS previous_year_remaining,
			COALESCE(q.total_available, 0) AS total_available,
			COALESCE(q.sick_used, 0) AS sick_used,
			COALESCE(q.maternity_used, 0) AS maternity_used,
			COALESCE(q.important_reason_used, 0) AS important_reason_used,
			COALESCE(q.big_leave_status, false) AS big_leave_status,
			COALESCE(p.pending_requests, 0) AS pending_requests`).
		Joins("LEFT JOIN leave_quotas q ON q.employee_id = e.id AND q.year = ?", year).
		Joins(`LEFT JOIN (
			SELECT employee_id, COUNT(*) AS pending_requests
			FROM leaves
			WHERE fiscal_year = ? AND status = 'PENDING' AND deleted_at IS NULL
			GROUP BY employee_id
		) p ON p.employee_id = e.id`, year).
		Where("e.deleted_at IS NULL").
		Order("e.full_name ASC").
		Scan(&rows).Error

	return rows, err
}
