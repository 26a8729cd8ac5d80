package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-simpeg/internal/calendar"
	"go-simpeg/internal/events"
	leaveerrors "go-simpeg/internal/leave/errors"
	"go-simpeg/internal/messaging/kafka"
	"go-simpeg/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuotaSnapshot is the balance view the workflow validates against before it
// accepts a request.
type QuotaSnapshot struct {
	AnnualQuota      int
	AnnualUsed       int
	AnnualRemaining  int
	TotalAvailable   int
	ServiceYears     int
	BigLeaveEligible bool
	BigLeaveStatus   bool
}

// QuotaGuard is the balancer as seen from the workflow. Recompute is
// best-effort after commit; a failed recompute is logged, never fatal, the
// event consumer will converge the snapshot later.
type QuotaGuard interface {
	Snapshot(ctx context.Context, employeeID string, year int) (QuotaSnapshot, error)
	Recompute(ctx context.Context, employeeID string, year int) error
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, employeeID string, year int) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actorID, id, rejectionReason string) (LeaveResponse, error)
	Complete(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
	Preview(ctx context.Context, req PreviewRequest) (PreviewResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	cal    *calendar.HolidaySet
	quotas QuotaGuard
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, cal *calendar.HolidaySet, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, cal, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	cal *calendar.HolidaySet,
	quotas QuotaGuard,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		cal:    cal,
		quotas: quotas,
		outbox: outboxRepo,
		logger: l,
	}
}

// resolveDates reconciles the requested dates with the working-day calendar.
// When a duration is given the end date is projected from it; when an end
// date is given the duration is counted from the range; when both are given
// the dates win and the duration is recomputed.
func (s *service) resolveDates(startDate, endDate string, durationDays *int) (start, end time.Time, duration int, err error) {
	start, err = calendar.ParseDate(startDate)
	if err != nil {
		return start, end, 0, leaveerrors.ErrInvalidDateFormat
	}

	if endDate != "" {
		end, err = calendar.ParseDate(endDate)
		if err != nil {
			return start, end, 0, leaveerrors.ErrInvalidDateFormat
		}
		if start.After(end) {
			return start, end, 0, leaveerrors.ErrInvalidDateRange
		}
		return start, end, s.cal.CountWorkingDays(start, end), nil
	}

	if durationDays == nil || *durationDays < 1 {
		return start, end, 0, leaveerrors.ErrMissingEndOrDuration
	}
	end, err = s.cal.ProjectEndDate(start, *durationDays)
	if err != nil {
		return start, end, 0, leaveerrors.ErrMissingEndOrDuration
	}
	return start, end, *durationDays, nil
}

// checkPolicy enforces the per-type regulation row and the quota balance.
// Over-use and eligibility problems are rejected at submission; balances that
// already went negative are never corrected retroactively.
func (s *service) checkPolicy(ctx context.Context, employeeID, leaveType string, duration, year int) error {
	reg, ok := Regulations[leaveType]
	if !ok {
		return leaveerrors.ErrInvalidLeaveType
	}
	if duration > reg.MaxDurationDays {
		return leaveerrors.ErrDurationExceedsMax
	}

	if s.quotas == nil {
		return nil
	}
	snap, err := s.quotas.Snapshot(ctx, employeeID, year)
	if err != nil {
		return err
	}

	if reg.MinServiceYears > 0 && snap.ServiceYears < reg.MinServiceYears {
		return leaveerrors.ErrServiceYearsNotMet
	}

	switch leaveType {
	case TypeAnnual:
		if duration > snap.TotalAvailable {
			return leaveerrors.ErrAnnualQuotaExceeded
		}
	case TypeBigLeave:
		if snap.BigLeaveStatus {
			return leaveerrors.ErrBigLeaveAlreadyTaken
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
	)

	createdByUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	if !ValidType(req.LeaveType) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}

	start, end, duration, err := s.resolveDates(req.StartDate, req.EndDate, req.DurationDays)
	if err != nil {
		s.logger.Warn("create leave date validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	year := start.Year()

	if err := s.checkPolicy(ctx, req.EmployeeID, req.LeaveType, duration, year); err != nil {
		s.logger.Warn("create leave policy check failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("leave_type", req.LeaveType),
			zap.Int("duration_days", duration),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create leave employee check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !exists {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, req.EmployeeID, start, end, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("employee_id", req.EmployeeID),
			zap.String("start_date", req.StartDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &Leave{
		ID:           uuid.New(),
		EmployeeID:   employeeUUID,
		LeaveType:    req.LeaveType,
		StartDate:    start,
		EndDate:      end,
		DurationDays: duration,
		FiscalYear:   year,
		Reason:       req.Reason,
		DocumentURL:  req.DocumentURL,
		Status:       StatusPending,
		CreatedBy:    createdByUUID,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.enqueueEvent(ctx, tx, rid, events.LeaveCreated, l); err != nil {
		s.logger.Error("create leave enqueue event failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.recomputeQuota(ctx, l)

	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("duration_days", duration),
	)
	return s.mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, employeeID string, year int) ([]LeaveResponse, error) {
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, leaveerrors.ErrInvalidEmployeeID
		}
	}
	leaves, err := s.repo.FindAll(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = s.mapToResponse(l)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return s.mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
	)

	if _, err := uuid.Parse(actorID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if !ValidType(req.LeaveType) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}

	start, end, duration, err := s.resolveDates(req.StartDate, req.EndDate, req.DurationDays)
	if err != nil {
		return LeaveResponse{}, err
	}
	year := start.Year()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrRecordLocked
	}

	if err := s.checkPolicy(ctx, l.EmployeeID.String(), req.LeaveType, duration, year); err != nil {
		return LeaveResponse{}, err
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, l.EmployeeID.String(), start, end, &id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	previousYear := l.FiscalYear

	l.LeaveType = req.LeaveType
	l.StartDate = start
	l.EndDate = end
	l.DurationDays = duration
	l.FiscalYear = year
	l.Reason = req.Reason
	l.DocumentURL = req.DocumentURL

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("update leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.enqueueEvent(ctx, tx, rid, events.LeaveUpdated, l); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.recomputeQuota(ctx, l)
	if previousYear != l.FiscalYear && s.quotas != nil {
		// Geser tahun anggaran: saldo tahun lama juga harus dihitung ulang.
		if err := s.quotas.Recompute(ctx, l.EmployeeID.String(), previousYear); err != nil {
			s.logger.Warn("recompute previous-year quota failed",
				zap.String("employee_id", l.EmployeeID.String()),
				zap.Int("year", previousYear),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("update leave success",
		zap.String("leave_id", id),
		zap.Int("duration_days", duration),
	)
	return s.mapToResponse(*l), nil
}

func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	switch currentStatus {
	case StatusPending:
		return targetStatus == StatusApproved || targetStatus == StatusRejected
	case StatusApproved:
		return targetStatus == StatusCompleted
	default:
		// COMPLETED dan REJECTED terminal.
		return false
	}
}

func (s *service) Approve(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	return s.transitionStatus(ctx, actorID, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, actorID, id, rejectionReason string) (LeaveResponse, error) {
	return s.transitionStatus(ctx, actorID, id, StatusRejected, &rejectionReason)
}

func (s *service) Complete(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	return s.transitionStatus(ctx, actorID, id, StatusCompleted, nil)
}

func (s *service) transitionStatus(ctx context.Context, actorID, id, targetStatus string, rejectionReason *string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("transition leave status requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", targetStatus),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if !isAllowedStatusTransition(l.Status, targetStatus) {
		s.logger.Warn("transition leave status invalid",
			zap.String("leave_id", id),
			zap.String("from_status", l.Status),
			zap.String("to_status", targetStatus),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	l.Status = targetStatus
	eventType := events.LeaveUpdated
	switch targetStatus {
	case StatusApproved:
		l.ApprovedBy = &actorUUID
		now := time.Now().UTC()
		l.ApprovedAt = &now
		l.RejectionReason = nil
		eventType = events.LeaveApproved
	case StatusRejected:
		if rejectionReason == nil || *rejectionReason == "" {
			return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
		}
		l.ApprovedBy = nil
		l.ApprovedAt = nil
		l.RejectionReason = rejectionReason
		eventType = events.LeaveRejected
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("transition leave persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if err := s.enqueueEvent(ctx, tx, rid, eventType, l); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("transition leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.recomputeQuota(ctx, l)

	s.logger.Info("transition leave status success",
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
	)
	return s.mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.enqueueEvent(ctx, tx, rid, events.LeaveDeleted, l); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	// Hapus rekor BESAR memulihkan kuota tahunan; rekor ANNUAL
	// mengembalikan sisa cuti. Keduanya lewat hitung ulang yang sama.
	s.recomputeQuota(ctx, l)

	s.logger.Info("delete leave success",
		zap.String("leave_id", id),
		zap.String("leave_type", l.LeaveType),
	)
	return nil
}

func (s *service) Preview(ctx context.Context, req PreviewRequest) (PreviewResponse, error) {
	start, end, duration, err := s.resolveDates(req.StartDate, req.EndDate, req.DurationDays)
	if err != nil {
		return PreviewResponse{}, err
	}

	return PreviewResponse{
		StartDate:             calendar.DateKey(start),
		EndDate:               calendar.DateKey(end),
		DurationDays:          duration,
		StartsOnNonWorkingDay: s.cal.IsNonWorkingDay(start),
		ExcludedDays:          s.cal.ScanRange(start, end),
	}, nil
}

// recomputeQuota is the best-effort post-commit sync with the balancer. The
// stored record is already committed; a failure here only delays the balance
// until the event consumer catches up.
func (s *service) recomputeQuota(ctx context.Context, l *Leave) {
	if s.quotas == nil {
		return
	}
	if err := s.quotas.Recompute(ctx, l.EmployeeID.String(), l.FiscalYear); err != nil {
		s.logger.Warn("quota recompute after leave change failed",
			zap.String("leave_id", l.ID.String()),
			zap.String("employee_id", l.EmployeeID.String()),
			zap.Int("year", l.FiscalYear),
			zap.Error(err),
		)
	}
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, rid, eventType string, l *Leave) error {
	if s.outbox == nil {
		return nil
	}

	event := events.LeaveLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		LeaveID:    l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		FiscalYear: l.FiscalYear,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     rid,
		AggregateType: "leave",
		AggregateID:   l.ID.String(),
		EventType:     eventType,
		Topic:         events.LeaveLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:                    l.ID.String(),
		EmployeeID:            l.EmployeeID.String(),
		LeaveType:             l.LeaveType,
		StartDate:             calendar.DateKey(l.StartDate),
		EndDate:               calendar.DateKey(l.EndDate),
		DurationDays:          l.DurationDays,
		FiscalYear:            l.FiscalYear,
		Reason:                l.Reason,
		DocumentURL:           l.DocumentURL,
		Status:                l.Status,
		CreatedBy:             l.CreatedBy.String(),
		RejectionReason:       l.RejectionReason,
		StartsOnNonWorkingDay: s.cal.IsNonWorkingDay(l.StartDate),
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}
