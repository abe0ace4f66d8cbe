// Package api contains the FlyZone backend client: one operation per REST
// endpoint, bearer-token handling, and error normalization.
package api

import (
	"context"

	"github.com/flyzone/flyzone-cli/internal/client/models"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// The session store implements it.
type TokenSource interface {
	Token() string
}

// AuthResponse mirrors the success body of /auth/register and /auth/login.
type AuthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	Code        int    `json:"code"`
	UUID        string `json:"uuid,omitempty"`
}

// AgentResponse mirrors the success body of /agent/query.
type AgentResponse struct {
	Response string `json:"response"`
}

// BookResponse mirrors the success body of /bookings/book.
type BookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SearchRequest is the body of POST /bookings/search. Date is YYYY-MM-DD.
type SearchRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	Passengers int    `json:"passengers"`
}

// Client is the FlyZone backend API surface.
//
// Every call is a single attempt: no retries, no caching. All methods honor
// context cancellation. Methods past Register/Login require a token from the
// TokenSource and fail with common.ErrMissingToken before issuing a request
// when none is present.
type Client interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	AskAgent(ctx context.Context, query string) (string, error)
	MyFlights(ctx context.Context) ([]models.Flight, error)
	SearchFlights(ctx context.Context, req *SearchRequest) ([]models.Flight, error)
	BookFlight(ctx context.Context, flightID string) (*BookResponse, error)
}
