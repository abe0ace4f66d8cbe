package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/flyzone/flyzone-cli/internal/client/models"
	"github.com/flyzone/flyzone-cli/internal/common"
)

// Fallback messages used when an error response carries no detail field.
const (
	fallbackRegister  = "Registration failed"
	fallbackLogin     = "Login failed"
	fallbackAgent     = "Failed to get agent response"
	fallbackMyFlights = "Failed to fetch flights"
	fallbackSearch    = "Failed to search flights"
	fallbackBook      = "Failed to book flight"
)

// HTTPClient talks to the FlyZone backend over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	hc      *http.Client
}

// NewHTTPClient builds a client for the backend at baseURL. Authenticated
// calls read the bearer token from tokens at request time, so a login that
// happens after construction is picked up automatically.
func NewHTTPClient(baseURL string, tokens TokenSource) *HTTPClient {
	return &HTTPClient{baseURL: baseURL, tokens: tokens, hc: &http.Client{}}
}

func (c *HTTPClient) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, false, fallbackRegister, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, false, fallbackLogin, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) AskAgent(ctx context.Context, query string) (string, error) {
	body := struct {
		Query string `json:"query"`
	}{Query: query}

	var resp AgentResponse
	if err := c.doJSON(ctx, http.MethodPost, "/agent/query", body, true, fallbackAgent, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

func (c *HTTPClient) MyFlights(ctx context.Context) ([]models.Flight, error) {
	var flights []models.Flight
	if err := c.doJSON(ctx, http.MethodGet, "/bookings/my-flights", nil, true, fallbackMyFlights, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *HTTPClient) SearchFlights(ctx context.Context, req *SearchRequest) ([]models.Flight, error) {
	var flights []models.Flight
	if err := c.doJSON(ctx, http.MethodPost, "/bookings/search", req, true, fallbackSearch, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *HTTPClient) BookFlight(ctx context.Context, flightID string) (*BookResponse, error) {
	body := struct {
		FlightID string `json:"flightId"`
	}{FlightID: flightID}

	var resp BookResponse
	if err := c.doJSON(ctx, http.MethodPost, "/bookings/book", body, true, fallbackBook, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doJSON performs a single request and decodes the JSON response into out.
// Writes send a JSON body; authenticated calls attach the bearer token, or
// fail before any network I/O when the token source is empty.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, auth bool, fallback string, out any) error {
	var token string
	if auth {
		token = c.tokens.Token()
		if token == "" {
			return &Error{Message: common.ErrMissingToken.Error(), err: common.ErrMissingToken}
		}
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fallback, err: err}
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Message: fallback, err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthHeaderName, "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return &Error{Message: fallback, err: fmt.Errorf("%w: %v", common.ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp, fallback)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Message: fallback, Status: resp.StatusCode, err: fmt.Errorf("%w: %v", common.ErrUnavailable, err)}
		}
	}
	return nil
}

// errorFromResponse extracts the backend's {detail} message when present,
// falling back to the per-operation message otherwise.
func (c *HTTPClient) errorFromResponse(resp *http.Response, fallback string) error {
	msg := fallback

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Detail != "" {
		msg = payload.Detail
	}

	e := &Error{Message: msg, Status: resp.StatusCode}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		e.err = common.ErrorUnauthorized
	}
	return e
}
