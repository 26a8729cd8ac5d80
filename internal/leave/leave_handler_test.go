package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-simpeg/internal/leave"
	leaveerrors "go-simpeg/internal/leave/errors"
	"go-simpeg/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	createFn   func(ctx context.Context, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	getAllFn   func(ctx context.Context, employeeID string, year int) ([]leave.LeaveResponse, error)
	getByIDFn  func(ctx context.Context, id string) (leave.LeaveResponse, error)
	updateFn   func(ctx context.Context, actorID, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error)
	approveFn  func(ctx context.Context, actorID, id string) (leave.LeaveResponse, error)
	rejectFn   func(ctx context.Context, actorID, id, rejectionReason string) (leave.LeaveResponse, error)
	completeFn func(ctx context.Context, actorID, id string) (leave.LeaveResponse, error)
	deleteFn   func(ctx context.Context, id string) error
	previewFn  func(ctx context.Context, req leave.PreviewRequest) (leave.PreviewResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.createFn(ctx, actorID, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context, employeeID string, year int) ([]leave.LeaveResponse, error) {
	return f.getAllFn(ctx, employeeID, year)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeLeaveService) Update(ctx context.Context, actorID, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	return f.updateFn(ctx, actorID, id, req)
}
func (f *fakeLeaveService) Approve(ctx context.Context, actorID, id string) (leave.LeaveResponse, error) {
	return f.approveFn(ctx, actorID, id)
}
func (f *fakeLeaveService) Reject(ctx context.Context, actorID, id, rejectionReason string) (leave.LeaveResponse, error) {
	return f.rejectFn(ctx, actorID, id, rejectionReason)
}
func (f *fakeLeaveService) Complete(ctx context.Context, actorID, id string) (leave.LeaveResponse, error) {
	return f.completeFn(ctx, actorID, id)
}
func (f *fakeLeaveService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeLeaveService) Preview(ctx context.Context, req leave.PreviewRequest) (leave.PreviewResponse, error) {
	return f.previewFn(ctx, req)
}

func TestLeaveHandler_Create(t *testing.T) {
	// Register the json tag-name func before any subtest binds the request
	// struct: validator caches field names per struct on first use.
	apperror.Init()
	t.Run("success uses employee_id from context", func(t *testing.T) {
		actorID := uuid.New().String()
		employeeID := uuid.New().String()

		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, aid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, actorID, aid)
				assert.Equal(t, employeeID, req.EmployeeID)
				return leave.LeaveResponse{
					ID:           uuid.New().String(),
					EmployeeID:   req.EmployeeID,
					LeaveType:    req.LeaveType,
					StartDate:    req.StartDate,
					EndDate:      req.EndDate,
					DurationDays: 3,
					FiscalYear:   2024,
					Reason:       req.Reason,
					Status:       leave.StatusPending,
					CreatedBy:    aid,
				}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + employeeID + `","leave_type":"ANNUAL","start_date":"2024-02-01","end_date":"2024-02-05","reason":"Acara keluarga"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("employee_id", actorID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, employeeID, got.EmployeeID)
		assert.Equal(t, "ANNUAL", got.LeaveType)
		assert.Equal(t, 3, got.DurationDays)
	})

	t.Run("negative invalid body", func(t *testing.T) {
		apperror.Init()
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, aid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				t.Fatal("service should not be called")
				return leave.LeaveResponse{}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{"leave_type":"WRONG"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
		assert.Equal(t, "Employee Id is required", env.Error.Message)
	})

	t.Run("negative malformed json falls back to generic invalid input", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, aid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				t.Fatal("service should not be called")
				return leave.LeaveResponse{}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{"employee_id":`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
		assert.Equal(t, "Invalid input", env.Error.Message)
	})

	t.Run("negative policy violation mapped to 422", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, aid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrAnnualQuotaExceeded
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + uuid.New().String() + `","leave_type":"ANNUAL","start_date":"2024-02-01","end_date":"2024-02-05"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "POLICY_VIOLATION", env.Error.Code)
	})
}

func TestLeaveHandler_GetAll(t *testing.T) {
	buildRows := func(n int) []leave.LeaveResponse {
		rows := make([]leave.LeaveResponse, n)
		for i := range rows {
			rows[i] = leave.LeaveResponse{
				ID:         uuid.New().String(),
				EmployeeID: uuid.New().String(),
				LeaveType:  "ANNUAL",
				FiscalYear: 2024,
				Status:     leave.StatusPending,
			}
		}
		return rows
	}

	t.Run("paginates in handler", func(t *testing.T) {
		svc := &fakeLeaveService{
			getAllFn: func(ctx context.Context, employeeID string, year int) ([]leave.LeaveResponse, error) {
				assert.Equal(t, 2024, year)
				return buildRows(25), nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves?year=2024&page=2&page_size=10", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var rows []leave.LeaveResponse
		assert.NoError(t, json.Unmarshal(env.Data, &rows))
		assert.Len(t, rows, 10)

		var meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
			Page       int   `json:"page"`
		}
		assert.NoError(t, json.Unmarshal(env.Meta, &meta))
		assert.Equal(t, int64(25), meta.Total)
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, 2, meta.Page)
	})

	t.Run("page beyond range yields empty slice", func(t *testing.T) {
		svc := &fakeLeaveService{
			getAllFn: func(ctx context.Context, employeeID string, year int) ([]leave.LeaveResponse, error) {
				return buildRows(3), nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves?page=9", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var rows []leave.LeaveResponse
		assert.NoError(t, json.Unmarshal(env.Data, &rows))
		assert.Len(t, rows, 0)
	})
}

func TestLeaveHandler_GetById(t *testing.T) {
	t.Run("negative not found", func(t *testing.T) {
		svc := &fakeLeaveService{
			getByIDFn: func(ctx context.Context, id string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves/x", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestLeaveHandler_Reject(t *testing.T) {
	t.Run("success forwards reason", func(t *testing.T) {
		id := uuid.New().String()
		actorID := uuid.New().String()

		svc := &fakeLeaveService{
			rejectFn: func(ctx context.Context, aid, targetID, reason string) (leave.LeaveResponse, error) {
				assert.Equal(t, actorID, aid)
				assert.Equal(t, id, targetID)
				assert.Equal(t, "Dokumen tidak lengkap", reason)
				return leave.LeaveResponse{ID: targetID, Status: leave.StatusRejected, RejectionReason: &reason}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves/"+id+"/reject", strings.NewReader(`{"rejection_reason":"Dokumen tidak lengkap"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set("employee_id", actorID)

		h.Reject(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative missing reason rejected by binding", func(t *testing.T) {
		svc := &fakeLeaveService{
			rejectFn: func(ctx context.Context, aid, targetID, reason string) (leave.LeaveResponse, error) {
				t.Fatal("service should not be called")
				return leave.LeaveResponse{}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves/x/reject", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Reject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		called := false
		svc := &fakeLeaveService{
			deleteFn: func(ctx context.Context, targetID string) error {
				called = true
				assert.Equal(t, id, targetID)
				return nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/leaves/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Delete(c)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLeaveHandler_Preview(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			previewFn: func(ctx context.Context, req leave.PreviewRequest) (leave.PreviewResponse, error) {
				assert.Equal(t, "2024-04-05", req.StartDate)
				return leave.PreviewResponse{
					StartDate:    req.StartDate,
					EndDate:      "2024-04-18",
					DurationDays: 5,
				}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves/preview", strings.NewReader(`{"start_date":"2024-04-05","duration_days":5}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Preview(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.PreviewResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "2024-04-18", got.EndDate)
		assert.Equal(t, 5, got.DurationDays)
	})
}
