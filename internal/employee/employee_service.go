package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-simpeg/internal/calendar"
	employeeerrors "go-simpeg/internal/employee/errors"
	"go-simpeg/internal/events"
	"go-simpeg/internal/messaging/kafka"
	"go-simpeg/internal/shared/contextutil"
	"go-simpeg/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// EmployeeOptionsKey adalah key cache daftar opsi pegawai untuk form.
const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	AddEducation(ctx context.Context, id string, req AddEducationRequest) (EmployeeResponse, error)
	AddRankHistory(ctx context.Context, id string, req AddRankHistoryRequest) (EmployeeResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("nip", req.NIP),
		zap.String("email", req.Email),
	)

	hireDate, err := calendar.ParseDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}
	var birthDate *time.Time
	if req.BirthDate != "" {
		bd, err := calendar.ParseDate(req.BirthDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
		}
		birthDate = &bd
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.NIP == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "nip")
		if err != nil {
			s.logger.Error("create employee generate nip failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.NIP = fmt.Sprintf("PEG-%06d", nextVal)
	} else {
		exists, err := qtx.NIPExists(ctx, req.NIP)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if exists {
			return EmployeeResponse{}, employeeerrors.ErrDuplicateNIP
		}
	}

	e := &Employee{
		ID:             uuid.New(),
		NIP:            req.NIP,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		BirthPlace:     req.BirthPlace,
		BirthDate:      birthDate,
		Gender:         req.Gender,
		PhotoURL:       req.PhotoURL,
		EmploymentType: req.EmploymentType,
		Rank:           req.Rank,
		Position:       req.Position,
		WorkUnit:       req.WorkUnit,
		HireDate:       hireDate,
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: e.ID.String(),
			HireDate:   calendar.DateKey(e.HireDate),
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return EmployeeResponse{}, err
		}
		err = s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   e.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
		if err != nil {
			s.logger.Error("create employee enqueue event failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("employee_id", e.ID.String()),
		zap.String("nip", e.NIP),
	)
	return mapToResponse(*e, time.Now().Year()), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	year := time.Now().Year()
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e, year)
	}
	return resp, nil
}

// GetOptions melayani dropdown form. Data master, jadi aman dicache lama.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		opts, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, err
		}
		if opts == nil {
			opts = []EmployeeOption{}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(opts); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return opts, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Warn("invalidate employee options cache failed", zap.Error(err))
	}
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*e, time.Now().Year()), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	hireDate, err := calendar.ParseDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}
	var birthDate *time.Time
	if req.BirthDate != "" {
		bd, err := calendar.ParseDate(req.BirthDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
		}
		birthDate = &bd
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	e.FullName = req.FullName
	e.Email = req.Email
	e.Phone = req.Phone
	e.BirthPlace = req.BirthPlace
	e.BirthDate = birthDate
	e.Gender = req.Gender
	e.PhotoURL = req.PhotoURL
	e.EmploymentType = req.EmploymentType
	e.Rank = req.Rank
	e.Position = req.Position
	e.WorkUnit = req.WorkUnit
	e.HireDate = hireDate

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*e, time.Now().Year()), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateOptionsCache(ctx)
	return nil
}

func (s *service) AddEducation(ctx context.Context, id string, req AddEducationRequest) (EmployeeResponse, error) {
	employeeUUID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	ed := &Education{
		ID:          uuid.New(),
		EmployeeID:  employeeUUID,
		Level:       req.Level,
		Institution: req.Institution,
		Major:       req.Major,
		GradYear:    req.GradYear,
	}
	if err := s.repo.AddEducation(ctx, ed); err != nil {
		return EmployeeResponse{}, err
	}
	return s.GetByID(ctx, id)
}

func (s *service) AddRankHistory(ctx context.Context, id string, req AddRankHistoryRequest) (EmployeeResponse, error) {
	employeeUUID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	effective, err := calendar.ParseDate(req.EffectiveDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	rh := &RankHistory{
		ID:            uuid.New(),
		EmployeeID:    employeeUUID,
		Rank:          req.Rank,
		Position:      req.Position,
		EffectiveDate: effective,
		DecreeNumber:  req.DecreeNumber,
	}
	if err := qtx.AddRankHistory(ctx, rh); err != nil {
		return EmployeeResponse{}, err
	}

	// Kenaikan pangkat juga memutakhirkan pangkat/jabatan berjalan.
	e.Rank = req.Rank
	if req.Position != "" {
		e.Position = req.Position
	}
	if err := qtx.Update(ctx, e); err != nil {
		return EmployeeResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return s.GetByID(ctx, id)
}

func mapRepositoryError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") {
		if strings.Contains(msg, "nip") {
			return employeeerrors.ErrDuplicateNIP
		}
		if strings.Contains(msg, "email") {
			return employeeerrors.ErrDuplicateEmail
		}
	}
	return err
}
