package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophdash/internal/config"
	"github.com/dmitrijs2005/gophdash/internal/logging"
	"github.com/dmitrijs2005/gophdash/internal/mockdata"
	"github.com/dmitrijs2005/gophdash/internal/repositories/kvstore"
	"github.com/dmitrijs2005/gophdash/internal/services"
	"github.com/dmitrijs2005/gophdash/internal/storage"
	"github.com/dmitrijs2005/gophdash/internal/table"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	session services.SessionService
	table   *table.Engine
	reader  *bufio.Reader
	out     io.Writer
	closeFn func() error
}

// NewApp opens the configured store and builds the services on top of it.
// Call Close (or Run, which closes on return) to release the database.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	store, closeFn, err := openStore(ctx, c)
	if err != nil {
		logger.Error(ctx, "error initializing storage", "storage", c.Storage, "error", err)
		return nil, err
	}

	scheme, err := services.PasswordSchemeByName(c.PasswordScheme)
	if err != nil {
		_ = closeFn()
		return nil, err
	}

	session := services.NewSessionService(store, logger,
		services.WithAuthDelay(c.AuthDelay),
		services.WithPasswordScheme(scheme),
	)

	var genOpts []mockdata.Option
	if c.Seed != 0 {
		genOpts = append(genOpts, mockdata.WithSeed(c.Seed))
	}
	records := mockdata.Generate(c.RecordCount, genOpts...)
	logger.Debug(ctx, "records generated", "count", len(records), "seed", c.Seed)

	return &App{
		config:  c,
		logger:  logger,
		session: session,
		table:   table.NewEngine(records, table.WithPageSize(c.PageSize)),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		closeFn: closeFn,
	}, nil
}

func openStore(ctx context.Context, c *config.Config) (kvstore.Store, func() error, error) {
	if c.Storage == config.StorageMemory {
		return kvstore.NewMemoryStore(), func() error { return nil }, nil
	}

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	return kvstore.NewSQLiteStore(db), db.Close, nil
}

// Run restores the previous session, starts the session watcher and serves
// the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.Close(); err != nil {
			a.logger.Warn(ctx, "error closing storage", "error", err)
		}
	}()

	if err := a.session.Init(ctx); err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartSessionWatcher(watchCtx)

	fmt.Fprintln(a.out, "Welcome to the dashboard (type 'help' for commands)")
	if u, ok := a.session.User(); ok {
		fmt.Fprintf(a.out, "Welcome back, %s\n", u.Name)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	fn := a.closeFn
	a.closeFn = nil
	return fn()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u, ok := a.session.User(); ok {
		return u.Email
	}
	return "guest"
}

// StartSessionWatcher logs session transitions until ctx is done.
func (a *App) StartSessionWatcher(ctx context.Context) {
	ch, cancel := a.session.Subscribe()
	defer cancel()

	last := a.session.State()
	for {
		select {
		case st, ok := <-ch:
			if !ok {
				return
			}
			a.logTransition(ctx, last, st)
			last = st

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) logTransition(ctx context.Context, prev, next services.State) {
	switch {
	case !prev.IsAuthenticated() && next.IsAuthenticated():
		a.logger.Debug(ctx, "session started", "email", next.User.Email)
	case prev.IsAuthenticated() && !next.IsAuthenticated():
		a.logger.Debug(ctx, "session ended", "email", prev.User.Email)
	case prev.IsAuthenticated() && next.IsAuthenticated() && prev.User.ID != next.User.ID:
		a.logger.Debug(ctx, "session switched", "from", prev.User.Email, "to", next.User.Email)
	}
	if prev.IsLoading != next.IsLoading {
		a.logger.Debug(ctx, "session loading changed", "loading", next.IsLoading)
	}
}
