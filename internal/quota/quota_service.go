package quota

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	quotaerrors "go-simpeg/internal/quota/errors"
	"go-simpeg/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheTTL = 10 * time.Minute

func cacheKey(employeeID string, year int) string {
	return fmt.Sprintf("quota:%s:%d", employeeID, year)
}

//go:generate mockgen -source=quota_service.go -destination=mock/quota_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, employeeID string, year int) (QuotaResponse, error)
	Recompute(ctx context.Context, employeeID string, year int) (QuotaResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("quota.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("quota.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func validateKeys(employeeID string, year int) error {
	if _, err := uuid.Parse(employeeID); err != nil {
		return quotaerrors.ErrInvalidEmployeeID
	}
	if year < 2000 || year > 2100 {
		return quotaerrors.ErrInvalidYear
	}
	return nil
}

func (s *service) Get(ctx context.Context, employeeID string, year int) (QuotaResponse, error) {
	if err := validateKeys(employeeID, year); err != nil {
		return QuotaResponse{}, err
	}

	if s.rdb != nil {
		if payload, err := s.rdb.Get(ctx, cacheKey(employeeID, year)).Bytes(); err == nil {
			var resp QuotaResponse
			if err := json.Unmarshal(payload, &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Singleflight supaya cache miss serentak tidak menumpuk query.
	v, err, _ := s.sf.Do(cacheKey(employeeID, year), func() (any, error) {
		q, err := s.repo.FindByEmployeeYear(ctx, employeeID, year)
		if err != nil {
			if errors.Is(err, quotaerrors.ErrQuotaNotFound) {
				// Snapshot dibuat malas saat pertama kali dirujuk.
				return s.Recompute(ctx, employeeID, year)
			}
			return QuotaResponse{}, err
		}
		resp := mapToResponse(*q)
		s.fillCache(ctx, resp)
		return resp, nil
	})
	if err != nil {
		return QuotaResponse{}, err
	}
	return v.(QuotaResponse), nil
}

// Recompute rebuilds the (employee, year) snapshot from the current leave
// records and persists it. The computed balance is returned even when the
// write step fails; in that case the error reports the failed save so the
// caller can tell "calculation succeeded, save failed" apart from a failed
// calculation.
func (s *service) Recompute(ctx context.Context, employeeID string, year int) (QuotaResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("recompute quota requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
	)

	if err := validateKeys(employeeID, year); err != nil {
		return QuotaResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("recompute quota begin tx failed", zap.Error(err))
		return QuotaResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	q, err := qtx.FindByEmployeeYear(ctx, employeeID, year)
	isNew := false
	if err != nil {
		if !errors.Is(err, quotaerrors.ErrQuotaNotFound) {
			s.logger.Error("recompute quota read failed", zap.Error(err))
			return QuotaResponse{}, err
		}
		q, err = s.newSnapshot(ctx, qtx, employeeID, year)
		if err != nil {
			return QuotaResponse{}, err
		}
		isNew = true
	}

	usages, err := qtx.ListLeaveUsages(ctx, employeeID, year)
	if err != nil {
		s.logger.Error("recompute quota list usages failed", zap.Error(err))
		return QuotaResponse{}, err
	}

	balanced := Rebalance(*q, usages)
	resp := mapToResponse(balanced)

	if err := s.persist(ctx, qtx, &balanced, isNew); err != nil {
		s.logger.Warn("quota computed but persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Int("year", year),
			zap.Error(err),
		)
		return resp, quotaerrors.ErrPersistFailed
	}
	if err := tx.Commit(); err != nil {
		s.logger.Warn("quota computed but commit failed", zap.Error(err))
		return resp, quotaerrors.ErrPersistFailed
	}

	s.invalidateCache(ctx, employeeID, year)
	s.fillCache(ctx, resp)

	s.logger.Info("quota recomputed",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
		zap.Int("annual_used", resp.AnnualUsed),
		zap.Int("total_available", resp.TotalAvailable),
		zap.Bool("big_leave_status", resp.BigLeaveStatus),
	)
	return resp, nil
}

// newSnapshot builds the lazy first snapshot for an (employee, year) pair:
// default annual quota, carry-over from the previous year when one exists,
// service years derived from the hire date.
func (s *service) newSnapshot(ctx context.Context, repo Repository, employeeID string, year int) (*LeaveQuota, error) {
	hireDate, err := repo.GetEmployeeHireDate(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if hireDate.IsZero() {
		return nil, quotaerrors.ErrEmployeeNotFound
	}

	carried := 0
	if prev, err := repo.FindByEmployeeYear(ctx, employeeID, year-1); err == nil && prev.AnnualRemaining > 0 {
		carried = prev.AnnualRemaining
	}

	return &LeaveQuota{
		ID:                    uuid.New(),
		EmployeeID:            uuid.MustParse(employeeID),
		Year:                  year,
		AnnualQuota:           DefaultAnnualQuota,
		AnnualRemaining:       DefaultAnnualQuota,
		PreviousYearRemaining: carried,
		TotalAvailable:        DefaultAnnualQuota + carried,
		ServiceYears:          serviceYears(hireDate, year),
	}, nil
}

func (s *service) persist(ctx context.Context, repo Repository, q *LeaveQuota, isNew bool) error {
	if !isNew {
		return repo.Update(ctx, q)
	}
	if err := repo.Create(ctx, q); err != nil {
		if !IsUniqueViolation(err) {
			return err
		}
		// Balapan dengan pembuatan malas dari request lain: ambil rekor
		// yang menang lalu timpa dengan hasil hitung ini.
		existing, findErr := repo.FindByEmployeeYear(ctx, q.EmployeeID.String(), q.Year)
		if findErr != nil {
			return findErr
		}
		q.ID = existing.ID
		return repo.Update(ctx, q)
	}
	return nil
}

// serviceYears counts completed service years as of the end of the fiscal
// year, which is when big-leave eligibility is assessed.
func serviceYears(hireDate time.Time, year int) int {
	years := year - hireDate.Year()
	if years < 0 {
		return 0
	}
	return years
}

func (s *service) fillCache(ctx context.Context, resp QuotaResponse) {
	if s.rdb == nil {
		return
	}
	if payload, err := json.Marshal(resp); err == nil {
		_ = s.rdb.Set(ctx, cacheKey(resp.EmployeeID, resp.Year), payload, cacheTTL).Err()
	}
}

func (s *service) invalidateCache(ctx context.Context, employeeID string, year int) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, cacheKey(employeeID, year)).Err()
}
