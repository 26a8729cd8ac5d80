package rbac

import (
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/stretchr/testify/assert"
)

// =========================================
// Mock Repository
// =========================================

type mockRepo struct {
	employeeRoles   []EmployeeRoleRow
	rolePermissions []RolePermissionRow
}

func (m *mockRepo) GetEmployeeRoles() ([]EmployeeRoleRow, error) {
	return m.employeeRoles, nil
}

func (m *mockRepo) GetRolePermissions() ([]RolePermissionRow, error) {
	return m.rolePermissions, nil
}

func (m *mockRepo) ListRoles() ([]RoleRow, error)                  { return nil, nil }
func (m *mockRepo) GetRoleByID(id string) (*RoleRow, error)        { return nil, nil }
func (m *mockRepo) GetRoleByName(name string) (*RoleRow, error)    { return nil, nil }
func (m *mockRepo) CreateRole(role *RoleRow) error                 { return nil }
func (m *mockRepo) UpdateRole(role *RoleRow) error                 { return nil }
func (m *mockRepo) DeleteRole(id string) error                     { return nil }
func (m *mockRepo) AssignRole(employeeID, roleID string) error     { return nil }
func (m *mockRepo) ListPermissions() ([]PermissionRow, error)      { return nil, nil }
func (m *mockRepo) GetPermissionsByRoleID(roleID string) ([]PermissionRow, error) {
	return nil, nil
}
func (m *mockRepo) UpdateRolePermissions(roleID string, permIDs []string) error { return nil }

// =========================================
// Helper: Test Enforcer
// =========================================

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	modelText := `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

	m, err := model.NewModelFromString(modelText)
	assert.NoError(t, err)

	e, err := casbin.NewEnforcer(m)
	assert.NoError(t, err)

	return e
}

// =========================================
// TEST: Load + Enforce
// =========================================

func TestRBACService_Enforce(t *testing.T) {
	repo := &mockRepo{
		employeeRoles: []EmployeeRoleRow{
			{EmployeeID: "emp-1", RoleID: "role-kepegawaian"},
		},
		rolePermissions: []RolePermissionRow{
			{RoleID: "role-kepegawaian", Resource: "pegawai", Action: "read"},
			{RoleID: "role-kepegawaian", Resource: "cuti", Action: "create"},
		},
	}
	enforcer := newTestEnforcer(t)

	service := NewService(repo, enforcer)

	err := service.LoadPolicy()
	assert.NoError(t, err)

	// Should allow
	allowed, err := service.Enforce(EnforceRequest{
		EmployeeID: "emp-1",
		Resource:   "pegawai",
		Action:     "read",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)

	// Wrong action
	allowed, err = service.Enforce(EnforceRequest{
		EmployeeID: "emp-1",
		Resource:   "pegawai",
		Action:     "delete",
	})
	assert.NoError(t, err)
	assert.False(t, allowed)

	// Unknown employee
	allowed, err = service.Enforce(EnforceRequest{
		EmployeeID: "emp-2",
		Resource:   "pegawai",
		Action:     "read",
	})
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_PolicyReloadPicksUpChanges(t *testing.T) {
	repo := &mockRepo{
		employeeRoles: []EmployeeRoleRow{
			{EmployeeID: "emp-1", RoleID: "role-atasan"},
		},
	}
	enforcer := newTestEnforcer(t)
	service := NewService(repo, enforcer)

	allowed, err := service.Enforce(EnforceRequest{
		EmployeeID: "emp-1",
		Resource:   "cuti",
		Action:     "approve",
	})
	assert.NoError(t, err)
	assert.False(t, allowed)

	// Grant permission afterwards; Enforce reloads from the repo each call.
	repo.rolePermissions = []RolePermissionRow{
		{RoleID: "role-atasan", Resource: "cuti", Action: "approve"},
	}

	allowed, err = service.Enforce(EnforceRequest{
		EmployeeID: "emp-1",
		Resource:   "cuti",
		Action:     "approve",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)
}
