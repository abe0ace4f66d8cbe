// Package services contains the application services behind the CLI: the
// auth flow (login, register-then-login) and the flight/agent resource
// services with their fallback policy.
package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/flyzone/flyzone-cli/internal/client/api"
	"github.com/flyzone/flyzone-cli/internal/client/models"
	"github.com/flyzone/flyzone-cli/internal/client/session"
	"github.com/flyzone/flyzone-cli/internal/common"
	"github.com/flyzone/flyzone-cli/internal/logging"
)

// LoginRequest carries login form input. Validation mirrors the form's
// required-field constraints.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterRequest carries registration form input.
type RegisterRequest struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
}

// AuthService turns credentials into session transitions.
//
// Contract:
//   - Login: authenticate and persist the token; the returned user carries
//     partial identity (the login endpoint returns none).
//   - Register: create the account, then chain a login with the same
//     credentials; a failed chained login leaves no persisted token.
//   - Logout: clear the session unconditionally.
//
// Every path, success or failure, leaves the session state machine settled
// (Authenticated or Anonymous, never Authenticating).
type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*models.User, error)
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client   api.Client
	store    *session.Store
	validate *validator.Validate
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{
		client:   client,
		store:    store,
		validate: validator.New(),
		log:      log.With("component", "auth"),
	}
}

func (a *authService) Login(ctx context.Context, req *LoginRequest) (*models.User, error) {
	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	if err := a.store.BeginAuth(); err != nil {
		return nil, err
	}

	resp, err := a.client.Login(ctx, &api.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		a.store.FailAuth()
		a.log.Warn(ctx, "login failed", "reason", err.Error())
		return nil, err
	}
	if resp.AccessToken == "" {
		a.store.FailAuth()
		return nil, fmt.Errorf("%w: no access token in response", common.ErrorUnauthorized)
	}

	user := userFromLogin(req.Email, resp)
	if err := a.store.CompleteAuth(ctx, resp.AccessToken, user); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "login successful", "email", req.Email)
	return user, nil
}

func (a *authService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	if err := a.store.BeginAuth(); err != nil {
		return nil, err
	}

	regResp, err := a.client.Register(ctx, &api.RegisterRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		a.store.FailAuth()
		a.log.Warn(ctx, "registration failed", "reason", err.Error())
		return nil, err
	}

	// The register response carries no usable session token, so a login with
	// the same credentials is chained immediately. If it fails, the account
	// exists on the server but no token may remain on this client.
	loginResp, err := a.client.Login(ctx, &api.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		a.store.FailAuth()
		a.log.Warn(ctx, "post-registration login failed", "reason", err.Error())
		return nil, err
	}
	if loginResp.AccessToken == "" {
		a.store.FailAuth()
		return nil, fmt.Errorf("%w: no access token in response", common.ErrorUnauthorized)
	}

	user := &models.User{
		ID:        userID(regResp, req.Email),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := a.store.CompleteAuth(ctx, loginResp.AccessToken, user); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "registration successful", "email", req.Email)
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	err := a.store.Logout(ctx)
	a.log.Info(ctx, "logged out")
	return err
}

// userFromLogin builds the partial user a login response allows: the login
// endpoint returns no name fields, so the identity stays pending.
func userFromLogin(email string, resp *api.AuthResponse) *models.User {
	return &models.User{
		ID:              userID(resp, email),
		Email:           email,
		IdentityPending: true,
	}
}

// userID prefers the backend-issued uuid; when the response has none (or an
// invalid one), the email serves as a stable local id.
func userID(resp *api.AuthResponse, email string) string {
	if resp.UUID != "" {
		if _, err := uuid.Parse(resp.UUID); err == nil {
			return resp.UUID
		}
	}
	return email
}
