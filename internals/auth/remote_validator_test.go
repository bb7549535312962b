package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteValidatorOK(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/validate", r.URL.Path)
		gotToken = r.URL.Query().Get("token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"prof@university.edu","role":"ROLE_PROFESSOR","userId":"prof-1","firstName":"Ada","lastName":"Lovelace"}`))
	}))
	defer srv.Close()

	v := NewRemoteValidator(srv.URL)
	claim, err := v.Validate(context.Background(), "sometoken")
	require.NoError(t, err)
	assert.Equal(t, "sometoken", gotToken)
	assert.Equal(t, "prof@university.edu", claim.Email)
	assert.Equal(t, "ROLE_PROFESSOR", claim.Role)
	assert.Equal(t, "prof-1", claim.UserID)
}

func TestRemoteValidatorBadRequestIsUnauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	v := NewRemoteValidator(srv.URL)
	_, err := v.Validate(context.Background(), "expired")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRemoteValidatorUpstreamErrorIsNotUnauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	v := NewRemoteValidator(srv.URL)
	_, err := v.Validate(context.Background(), "whatever")
	require.ErrorIs(t, err, ErrUpstream)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
}

func TestRemoteValidatorConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	v := NewRemoteValidator(srv.URL)
	_, err := v.Validate(context.Background(), "whatever")
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestRemoteValidatorTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	v := NewRemoteValidator(srv.URL)
	v.client = &http.Client{Timeout: 20 * time.Millisecond}

	_, err := v.Validate(context.Background(), "whatever")
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
}

func TestRemoteValidatorMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	v := NewRemoteValidator(srv.URL)
	_, err := v.Validate(context.Background(), "whatever")
	require.ErrorIs(t, err, ErrUpstream)
}
