package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	quotaerrors "go-simpeg/internal/quota/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Rekap dipakai layar dashboard, cache pendek saja supaya tidak basi lama
// setelah recompute.
const recapCacheTTL = 5 * time.Minute

func recapCacheKey(year int) string {
	return fmt.Sprintf("report:leave-recap:%d", year)
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	LeaveRecap(ctx context.Context, year int) (LeaveRecapResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) LeaveRecap(ctx context.Context, year int) (LeaveRecapResponse, error) {
	if year < 2000 || year > 2100 {
		return LeaveRecapResponse{}, quotaerrors.ErrInvalidYear
	}

	if s.rdb != nil {
		if payload, err := s.rdb.Get(ctx, recapCacheKey(year)).Bytes(); err == nil {
			var resp LeaveRecapResponse
			if err := json.Unmarshal(payload, &resp); err == nil {
				return resp, nil
			}
		}
	}

	rows, err := s.repo.LeaveRecap(ctx, year)
	if err != nil {
		s.logger.Error("leave recap query failed", zap.Int("year", year), zap.Error(err))
		return LeaveRecapResponse{}, err
	}
	if rows == nil {
		rows = []LeaveRecapRow{}
	}

	resp := LeaveRecapResponse{Year: year, Rows: rows}

	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, recapCacheKey(year), payload, recapCacheTTL).Err(); err != nil {
				s.logger.Warn("leave recap cache fill failed", zap.Int("year", year), zap.Error(err))
			}
		}
	}

	return resp, nil
}
