package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/byteme/internal/client/config"
	"github.com/dmitrijs2005/byteme/internal/client/services"
	"github.com/dmitrijs2005/byteme/internal/client/storage"
	"github.com/dmitrijs2005/byteme/internal/logging"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    *storage.Lazy
	sessions services.SessionService
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the local database and restores the mirrored session.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	handle := storage.NewLazy(c.DatabasePath)

	st, err := handle.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	logger.Debug(ctx, "database ready", "path", c.DatabasePath)

	ss := services.NewSessionService(ctx, st.Users(), st.LocalStorage(), logger)

	return &App{
		config:   c,
		logger:   logger,
		store:    handle,
		sessions: ss,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Error(ctx, "closing database", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.WatchSession(ctx)

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	_, err := services.RequireUser(a.sessions.Current())
	return err == nil
}

// WatchSession logs every session transition until ctx is done.
func (a *App) WatchSession(ctx context.Context) {
	ch, cancel := a.sessions.Subscribe()
	defer cancel()

	for {
		select {
		case st, ok := <-ch:
			if !ok {
				return
			}
			switch s := st.(type) {
			case services.Authenticated:
				a.logger.Debug(ctx, "session active", "user_id", s.User.ID)
			case services.Anonymous:
				a.logger.Debug(ctx, "session anonymous")
			}
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	if p, err := services.RequireUser(a.sessions.Current()); err == nil {
		return fmt.Sprintf("(%s)", p.Email)
	}
	return "(signed out)"
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to ByteMe (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
