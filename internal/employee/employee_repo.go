package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
	FindOptions(ctx context.Context) ([]EmployeeOption, error)
	AddEducation(ctx context.Context, ed *Education) error
	AddRankHistory(ctx context.Context, rh *RankHistory) error
	NIPExists(ctx context.Context, nip string) (bool, error)
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("Educations").
		Preload("RankHistories", func(db *gorm.DB) *gorm.DB {
			return db.Order("effective_date DESC")
		}).
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindOptions(ctx context.Context) ([]EmployeeOption, error) {
	var opts []EmployeeOption
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("id::text AS id, nip, full_name").
		Order("full_name ASC").
		Scan(&opts).Error
	return opts, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

func (r *repository) AddEducation(ctx context.Context, ed *Education) error {
	return r.db.WithContext(ctx).Create(ed).Error
}

func (r *repository) AddRankHistory(ctx context.Context, rh *RankHistory) error {
	return r.db.WithContext(ctx).Create(rh).Error
}

func (r *repository) NIPExists(ctx context.Context, nip string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("nip = ?", nip).
		Count(&count).Error
	return count > 0, err
}
