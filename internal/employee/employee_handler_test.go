package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-simpeg/internal/employee"
	employeeerrors "go-simpeg/internal/employee/errors"
	"go-simpeg/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	createFn         func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn         func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByIDFn        func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	updateFn         func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn         func(ctx context.Context, id string) error
	getOptionsFn     func(ctx context.Context) ([]employee.EmployeeOption, error)
	addEducationFn   func(ctx context.Context, id string, req employee.AddEducationRequest) (employee.EmployeeResponse, error)
	addRankHistoryFn func(ctx context.Context, id string, req employee.AddRankHistoryRequest) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeOption, error) {
	return f.getOptionsFn(ctx)
}
func (f *fakeEmployeeService) AddEducation(ctx context.Context, id string, req employee.AddEducationRequest) (employee.EmployeeResponse, error) {
	return f.addEducationFn(ctx, id, req)
}
func (f *fakeEmployeeService) AddRankHistory(ctx context.Context, id string, req employee.AddRankHistoryRequest) (employee.EmployeeResponse, error) {
	return f.addRankHistoryFn(ctx, id, req)
}

type employeeEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestEmployeeHandler_Create(t *testing.T) {
	// Register the json tag-name func before any subtest binds the request
	// struct: validator caches field names per struct on first use.
	apperror.Init()
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Siti Rahma", req.FullName)
				assert.Equal(t, "PNS", req.EmploymentType)
				return employee.EmployeeResponse{
					ID:       uuid.New().String(),
					NIP:      "PEG-000007",
					FullName: req.FullName,
					Email:    req.Email,
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"full_name":"Siti Rahma","email":"siti@instansi.go.id","employment_type":"PNS","hire_date":"2019-01-02"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var env employeeEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		var got employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "PEG-000007", got.NIP)
	})

	t.Run("negative missing full name rejected by binding", func(t *testing.T) {
		apperror.Init()
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service should not be called")
				return employee.EmployeeResponse{}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"email":"siti@instansi.go.id","employment_type":"PNS","hire_date":"2019-01-02"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env employeeEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
		assert.Equal(t, "Full Name is required", env.Error.Message)
	})

	t.Run("negative duplicate nip mapped to conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrDuplicateNIP
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"nip":"198001012005011001","full_name":"Siti Rahma","email":"siti@instansi.go.id","employment_type":"PNS","hire_date":"2019-01-02"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		var env employeeEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeConflict, env.Error.Code)
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			getByIDFn: func(ctx context.Context, targetID string) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, targetID)
				return employee.EmployeeResponse{ID: id, FullName: "Budi Santoso"}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.GetById(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env employeeEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getByIDFn: func(ctx context.Context, targetID string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/x", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var env employeeEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeNotFound, env.Error.Code)
	})
}

func TestEmployeeHandler_GetOptions(t *testing.T) {
	svc := &fakeEmployeeService{
		getOptionsFn: func(ctx context.Context) ([]employee.EmployeeOption, error) {
			return []employee.EmployeeOption{
				{ID: uuid.New().String(), NIP: "PEG-000001", FullName: "Budi Santoso"},
				{ID: uuid.New().String(), NIP: "PEG-000002", FullName: "Siti Rahma"},
			}, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/options", nil)

	h.GetOptions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env employeeEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
	var got []employee.EmployeeOption
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 2)
}
