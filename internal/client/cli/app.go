// Package cli is the terminal front end: a small REPL whose commands map to
// the client routes of the account app. It owns the wiring of config, state
// database, store, navigator, and API client.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/authkeeper/authkeeper/internal/client/api"
	"github.com/authkeeper/authkeeper/internal/client/config"
	"github.com/authkeeper/authkeeper/internal/client/navigation"
	"github.com/authkeeper/authkeeper/internal/client/storage"
	"github.com/authkeeper/authkeeper/internal/client/store"
	"github.com/authkeeper/authkeeper/internal/client/token"
	"github.com/authkeeper/authkeeper/internal/logging"
)

type App struct {
	config *config.Config
	db     *sql.DB
	store  *store.Store
	api    *api.Client
	nav    *navigation.History
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.StateDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening state database: %w", err)
	}

	nav := navigation.NewHistory(RouteRoot)
	st, err := store.New(ctx, storage.NewSQLiteStorage(db), nav)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("loading state: %w", err)
	}

	apiClient := api.New(c.APIBaseURL, api.NewHTTPClient(c.RequestTimeout, c.InsecureSkipVerify), st, log)

	app := &App{
		config: c,
		db:     db,
		store:  st,
		api:    apiClient,
		nav:    nav,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	if _, known := st.User(); !known {
		// A stored session survived the restart; find out who it belongs to.
		if err := apiClient.FetchUser(ctx); err != nil {
			log.Warn(ctx, "could not fetch current user", "error", err)
		}
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isSignedIn() bool {
	user, known := a.store.User()
	return known && user != nil
}

// queryToken pulls a one-time token delivered via link from the current
// location's query string. An expired or malformed link token is reported
// and treated as absent.
func (a *App) queryToken() (string, bool) {
	t, present := token.FromQuery(a.store.Location())
	if !present {
		return "", false
	}
	if t == nil {
		fmt.Fprintln(a.out, "The link token is invalid or has expired, request a new one")
		return "", false
	}
	return t.Raw, true
}
