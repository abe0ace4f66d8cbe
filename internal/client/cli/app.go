package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/flyzone/flyzone-cli/internal/client/api"
	"github.com/flyzone/flyzone-cli/internal/client/config"
	"github.com/flyzone/flyzone-cli/internal/client/services"
	"github.com/flyzone/flyzone-cli/internal/client/session"
	"github.com/flyzone/flyzone-cli/internal/logging"
)

// App wires the CLI together: session store, API client, services, and the
// interactive loop.
type App struct {
	config  *config.Config
	store   *session.Store
	auth    services.AuthService
	flights services.FlightService
	agent   services.AgentService
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr)

	db, err := session.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	store := session.NewStore(db, log)
	if err := store.Restore(ctx); err != nil {
		// a broken local store should not keep the user from logging in fresh
		log.Warn(ctx, "could not restore session", "error", err.Error())
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, store)

	return &App{
		config:  c,
		store:   store,
		auth:    services.NewAuthService(apiClient, store, log),
		flights: services.NewFlightService(apiClient, log),
		agent:   services.NewAgentService(apiClient, log),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.store.State() == session.StateAuthenticated
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to FlyZone (type 'help' for commands)")
	if a.isLoggedIn() {
		printlnFn("Signed in from a previous session as", a.store.User().DisplayName())
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status renders the prompt suffix: the signed-in user, or nothing.
func (a *App) status() string {
	u := a.store.User()
	if u == nil {
		return ""
	}
	if name := u.DisplayName(); name != "" {
		return "(" + name + ")"
	}
	return "(signed in)"
}
