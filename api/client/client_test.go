package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBearerTokenAttached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/admin", r.URL.Path)
		assert.Equal(t, "Bearer mocked-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		requestID := r.Header.Get("X-Request-ID")
		_, err := uuid.Parse(requestID)
		assert.NoError(t, err)

		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := New(server.URL, "/api/v1")
	c.Token = "mocked-token"

	_, status, err := c.Get("/users/admin")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := New(server.URL, "/api/v1")

	_, _, err := c.Post("/users/admin/login", map[string]string{"email": "a@x.com"})
	assert.NoError(t, err)
}

func TestServerMessageForwarded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "email already taken"}`))
	}))
	defer server.Close()

	c := New(server.URL, "/api/v1")

	_, status, err := c.Post("/users", map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, status)

	var httpErr *HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "email already taken", httpErr.Message)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestGenericMessageWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, "/api/v1")

	_, _, err := c.Get("/groups")
	var httpErr *HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "request failed with status 500", httpErr.Message)
}
