package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/route-planner/backend/internal/domain"
)

func TestListUsers_200(t *testing.T) {
	age := 31
	svc := &mockUserServicer{
		list: func(context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: 1, Username: "alice", Email: "alice@example.com", FirstName: "Alice", LastName: "Reyes",
					Age: &age, Role: domain.RoleUser, Preferences: json.RawMessage(`["nature"]`), Banned: true},
				{ID: 99, Username: "root", Email: "root@example.com", Role: domain.RoleAdmin},
			}, nil
		},
	}

	rec := do(t, newHTTPHandler(deps{users: svc}), http.MethodGet, "/api/users", nil, adminToken(t))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.JSONEq(t, `"alice"`, string(body[0]["username"]))
	assert.JSONEq(t, `31`, string(body[0]["age"]))
	assert.JSONEq(t, `null`, string(body[0]["middle_name"]))
	assert.JSONEq(t, `["nature"]`, string(body[0]["preferences"]))
	assert.JSONEq(t, `true`, string(body[0]["banned"]))
	assert.JSONEq(t, `[]`, string(body[1]["preferences"]))
	assert.NotContains(t, body[0], "password_hash")
}

func TestListUsers_Empty(t *testing.T) {
	svc := &mockUserServicer{
		list: func(context.Context) ([]domain.User, error) { return []domain.User{}, nil },
	}

	rec := do(t, newHTTPHandler(deps{users: svc}), http.MethodGet, "/api/users", nil, adminToken(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListUsers_NonAdmin_403(t *testing.T) {
	rec := do(t, newHTTPHandler(deps{}), http.MethodGet, "/api/users", nil, userToken(t, alice))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admins only", errorMessage(t, rec))
}

func TestListUsers_500(t *testing.T) {
	svc := &mockUserServicer{
		list: func(context.Context) ([]domain.User, error) {
			return nil, fmt.Errorf("service.UserService.List: %w", domain.ErrStorage)
		},
	}

	rec := do(t, newHTTPHandler(deps{users: svc}), http.MethodGet, "/api/users", nil, adminToken(t))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server error", errorMessage(t, rec))
}

func TestSetUserBan_200(t *testing.T) {
	var gotID int64
	var gotBan bool
	svc := &mockUserServicer{
		setBanned: func(_ context.Context, id int64, banned bool) error {
			gotID, gotBan = id, banned
			return nil
		},
	}
	h := newHTTPHandler(deps{users: svc})

	for ban, msg := range map[bool]string{true: "User banned successfully", false: "User unbanned successfully"} {
		rec := do(t, h, http.MethodPost, "/api/users/5/ban", map[string]any{"ban": ban}, adminToken(t))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(5), gotID)
		assert.Equal(t, ban, gotBan)

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, msg, body.Message)
	}
}

// Only a JSON boolean is a valid ban value; nothing else reaches the service.
func TestSetUserBan_400_InvalidBanValue(t *testing.T) {
	svc := &mockUserServicer{
		setBanned: func(context.Context, int64, bool) error {
			t.Fatal("service must not be called")
			return nil
		},
	}
	h := newHTTPHandler(deps{users: svc})

	for _, body := range []string{`{}`, `{"ban":null}`, `{"ban":1}`, `{"ban":"true"}`, `{"ban":[true]}`} {
		rec := do(t, h, http.MethodPost, "/api/users/5/ban", body, adminToken(t))

		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Invalid ban value", errorMessage(t, rec), body)
	}
}

func TestSetUserBan_404_AdminOrMissing(t *testing.T) {
	svc := &mockUserServicer{
		setBanned: func(context.Context, int64, bool) error {
			return fmt.Errorf("service.UserService.SetBanned: %w", domain.ErrNotFound)
		},
	}

	rec := do(t, newHTTPHandler(deps{users: svc}), http.MethodPost, "/api/users/99/ban", `{"ban":true}`, adminToken(t))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found or cannot ban admin", errorMessage(t, rec))
}

func TestSetUserBan_NonAdmin_403(t *testing.T) {
	rec := do(t, newHTTPHandler(deps{}), http.MethodPost, "/api/users/5/ban", `{"ban":true}`, userToken(t, alice))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admins only", errorMessage(t, rec))
}

func TestSetUserBan_NoToken_401(t *testing.T) {
	rec := do(t, newHTTPHandler(deps{}), http.MethodPost, "/api/users/5/ban", `{"ban":true}`, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSetUserBan_NonIntegerID_400(t *testing.T) {
	rec := do(t, newHTTPHandler(deps{}), http.MethodPost, "/api/users/abc/ban", `{"ban":true}`, adminToken(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request", errorMessage(t, rec))
}
