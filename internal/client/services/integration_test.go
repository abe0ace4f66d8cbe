package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyzone/flyzone-cli/internal/client/api"
	"github.com/flyzone/flyzone-cli/internal/logging"
)

// Exercises the real HTTP client against a fake backend: a login must leave
// the token in the session store, and the next authenticated call must carry
// it in the Authorization header.
func TestLoginThenMyFlights_TokenFlowsFromStore(t *testing.T) {
	ctx := context.Background()

	var gotAuthHeader string
	r := mux.NewRouter()
	r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.AuthResponse{AccessToken: "tok1", Code: 200})
	}).Methods(http.MethodPost)
	r.HandleFunc("/bookings/my-flights", func(w http.ResponseWriter, req *http.Request) {
		gotAuthHeader = req.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	store, _ := setupStore(t)
	client := api.NewHTTPClient(srv.URL, store)

	authSvc := NewAuthService(client, store, logging.NewDiscard())
	_, err := authSvc.Login(ctx, &LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "tok1", store.Token())

	flightSvc := NewFlightService(client, logging.NewDiscard())
	res, err := flightSvc.MyFlights(ctx)
	require.NoError(t, err)
	assert.False(t, res.Degraded)
	assert.Equal(t, "Bearer tok1", gotAuthHeader)
}

// After logout the token is gone, so an authenticated call must fail before
// reaching the network.
func TestLogoutThenMyFlights_NoRequestIssued(t *testing.T) {
	ctx := context.Background()

	hits := 0
	r := mux.NewRouter()
	r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.AuthResponse{AccessToken: "tok1", Code: 200})
	}).Methods(http.MethodPost)
	r.HandleFunc("/bookings/my-flights", func(w http.ResponseWriter, req *http.Request) {
		hits++
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	store, _ := setupStore(t)
	client := api.NewHTTPClient(srv.URL, store)

	authSvc := NewAuthService(client, store, logging.NewDiscard())
	_, err := authSvc.Login(ctx, &LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	require.NoError(t, authSvc.Logout(ctx))

	flightSvc := NewFlightService(client, logging.NewDiscard())
	_, err = flightSvc.MyFlights(ctx)
	require.Error(t, err)
	assert.Zero(t, hits)
}
