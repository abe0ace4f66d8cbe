// Package session owns the authenticated session: the persisted bearer token,
// the derived user identity, and the top-level state machine that decides
// whether the app renders its anonymous or authenticated surface.
package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flyzone/flyzone-cli/internal/client/models"
	"github.com/flyzone/flyzone-cli/internal/client/repositories/metadata"
	"github.com/flyzone/flyzone-cli/internal/common"
	"github.com/flyzone/flyzone-cli/internal/dbx"
	"github.com/flyzone/flyzone-cli/internal/logging"
)

// State is the top-level render mode.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// Store is the single source of truth for "is there an authenticated user,
// and what is their token". Only the token is persisted; the user identity
// is rebuilt in memory on every start.
//
// Invariant: User() is non-nil exactly when Token() is non-empty, which is
// exactly when State() is StateAuthenticated.
//
// The store is driven from the main interactive loop only, so it carries no
// locking.
type Store struct {
	db  *sql.DB
	log logging.Logger

	state State
	token string
	user  *models.User
}

// NewStore builds a store in the Anonymous state. Call Restore to pick up a
// persisted session.
func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("component", "session"), state: StateAnonymous}
}

func (s *Store) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Token returns the current bearer token, or "" when anonymous. It also
// satisfies api.TokenSource.
func (s *Store) Token() string { return s.token }

// User returns the current user, or nil when anonymous.
func (s *Store) User() *models.User { return s.user }

// State returns the current render mode.
func (s *Store) State() State { return s.state }

// Restore reads the persisted token once at startup. A present token moves
// the store straight to Authenticated with a pending-identity user, except
// when the token is a JWT whose exp has already passed: such tokens are
// discarded and the app starts Anonymous. Tokens that are not JWTs are
// accepted as-is; no backend verification happens here.
func (s *Store) Restore(ctx context.Context) error {
	value, err := s.repo().Get(ctx, common.AccessTokenStorageKey)
	if err != nil {
		return err
	}
	if len(value) == 0 {
		return nil
	}

	token := string(value)
	if tokenExpired(token) {
		s.log.Warn(ctx, "discarding expired session token")
		return s.repo().Delete(ctx, common.AccessTokenStorageKey)
	}

	s.token = token
	s.user = &models.User{IdentityPending: true}
	s.state = StateAuthenticated
	s.log.Info(ctx, "session restored")
	return nil
}

// BeginAuth moves Anonymous -> Authenticating. It doubles as the busy flag:
// while a login or register flow is in flight, further submissions fail with
// common.ErrBusy.
func (s *Store) BeginAuth() error {
	if s.state != StateAnonymous {
		return common.ErrBusy
	}
	s.state = StateAuthenticating
	return nil
}

// CompleteAuth persists the token and moves to Authenticated. The previous
// token (if any) is replaced in the same transaction, so there is never more
// than one persisted token. On a persistence failure the store falls back to
// Anonymous so no half-authenticated state remains.
func (s *Store) CompleteAuth(ctx context.Context, token string, user *models.User) error {
	repo := s.repo()
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		txRepo := metadata.NewSQLiteRepository(tx)
		if err := txRepo.Delete(ctx, common.AccessTokenStorageKey); err != nil {
			return err
		}
		return txRepo.Set(ctx, common.AccessTokenStorageKey, []byte(token))
	})
	if err != nil {
		s.FailAuth()
		_ = repo.Delete(ctx, common.AccessTokenStorageKey)
		return err
	}

	s.token = token
	s.user = user
	s.state = StateAuthenticated
	return nil
}

// FailAuth returns the store to Anonymous after a failed auth attempt.
// Nothing is retained.
func (s *Store) FailAuth() {
	s.token = ""
	s.user = nil
	s.state = StateAnonymous
}

// Logout clears the persisted token and lands in Anonymous regardless of the
// prior state. The in-memory session is cleared even if the delete fails.
func (s *Store) Logout(ctx context.Context) error {
	s.token = ""
	s.user = nil
	s.state = StateAnonymous
	return s.repo().Delete(ctx, common.AccessTokenStorageKey)
}

// tokenExpired reports whether token is a JWT with an elapsed exp claim.
// The signature is deliberately not verified: this is a local staleness
// check, not authentication. Opaque tokens always return false.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
