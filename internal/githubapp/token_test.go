package githubapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/app/installations/42/access_tokens", r.URL.Path)
		assert.Equal(t, "Bearer app.jwt.token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"token":"ghs_abcdef","expires_at":"2026-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	exchanger := NewExchanger(srv.URL, srv.Client())

	token, err := exchanger.Exchange(context.Background(), "app.jwt.token", 42)
	require.NoError(t, err)
	assert.Equal(t, "ghs_abcdef", token)
}

func TestExchangeNon2xx(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "unauthorized (expired credential)", status: http.StatusUnauthorized},
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			exchanger := NewExchanger(srv.URL, srv.Client())

			_, err := exchanger.Exchange(context.Background(), "app.jwt.token", 42)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTokenExchangeFailed)
		})
	}
}

func TestExchangeMissingInstallation(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	exchanger := NewExchanger(srv.URL, srv.Client())

	_, err := exchanger.Exchange(context.Background(), "app.jwt.token", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingInstallation)
	assert.Zero(t, calls.Load(), "no outbound call should be made without an installation id")
}
