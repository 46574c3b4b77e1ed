package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateUserRequiresAuth(t *testing.T) {
	env := setup(t)

	w := env.do(t, http.MethodPost, "/api/auth/registered-businessOwner", "",
		map[string]string{"name": "Jane Doe", "email": "jane@example.com"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Authorization header missing")
}

func TestCreateUserAndList(t *testing.T) {
	env := setup(t)
	token := env.seedAdmin(t)

	w := env.do(t, http.MethodPost, "/api/auth/registered-businessOwner", token,
		map[string]string{"name": "Jane Doe", "email": "jane@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "User created successfully")

	// Same email again is rejected.
	w = env.do(t, http.MethodPost, "/api/auth/registered-businessOwner", token,
		map[string]string{"name": "Jane Again", "email": "jane@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "User already exists")

	env.seedOwner(t, "owner@example.com", "contact@company.example")

	w = env.do(t, http.MethodGet, "/api/auth/superadmin/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	existingUsers, ok := body["existingUsers"].([]any)
	require.True(t, ok)
	require.Len(t, existingUsers, 1)

	businessOwners, ok := body["businessOwners"].([]any)
	require.True(t, ok)
	require.Len(t, businessOwners, 1)
}
