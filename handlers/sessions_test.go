package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsCreate(t *testing.T) {
	r, _ := newTestApp(t)

	rr := doRequest(t, r, http.MethodPost, "/users", "", gin.H{
		"name":     "Auth Test User",
		"email":    "auth_testuser@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, r, http.MethodPost, "/sessions", "", gin.H{
		"email":    "auth_testuser@example.com",
		"password": "password123",
	})

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	token, ok := body["token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "auth_testuser@example.com", user["email"])
	assert.NotContains(t, user, "password")
}

func TestSessionsCreate_WrongPassword(t *testing.T) {
	r, db := newTestApp(t)
	createUser(t, db, "Auth User", "known@example.com", "customer")

	rr := doRequest(t, r, http.MethodPost, "/sessions", "", gin.H{
		"email":    "known@example.com",
		"password": "wrong-password",
	})

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rr)["message"])
}

func TestSessionsCreate_UnknownEmail(t *testing.T) {
	r, _ := newTestApp(t)

	rr := doRequest(t, r, http.MethodPost, "/sessions", "", gin.H{
		"email":    "nobody@example.com",
		"password": "password123",
	})

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rr)["message"])
}
