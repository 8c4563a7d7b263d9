package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/admin/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodDelete, "/api/v1/admin/users/"+uuid.New().String(), userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminListUsers(t *testing.T) {
	env := newTestEnv(t)
	env.admin.On("ListUsers", mock.Anything, types.ListOptions{Page: 1, Limit: 20}).
		Return([]types.UserResponse{{Username: "alice"}, {Username: "bob"}}, int64(2), nil)

	w := env.do(http.MethodGet, "/api/v1/admin/users?limit=20", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["users"], 2)
}

func TestAdminSetRole(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.admin.On("SetRole", mock.Anything, id, models.RoleAdmin).
		Return(&models.User{Base: models.Base{ID: id}, Email: "bob@example.com", Role: models.RoleAdmin}, nil)

	w := env.do(http.MethodPut, "/api/v1/admin/users/"+id.String()+"/role", adminToken, map[string]string{"role": "admin"})
	assert.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["role"])

	w = env.do(http.MethodPut, "/api/v1/admin/users/"+id.String()+"/role", adminToken, map[string]string{"role": "owner"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.admin.On("DeleteUser", mock.Anything, env.adminID, id).Return(nil)
	env.admin.On("DeleteUser", mock.Anything, env.adminID, env.adminID).
		Return(fmt.Errorf("%w: cannot delete your own account", service.ErrInvalidInput))

	w := env.do(http.MethodDelete, "/api/v1/admin/users/"+id.String(), adminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodDelete, "/api/v1/admin/users/"+env.adminID.String(), adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "cannot delete your own account")
}
