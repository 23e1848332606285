// Package app wires the store, persistence, catalog and engine for one
// profile, and builds the LLM-backed services on demand.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/abhisek/etymquest/internal/catalog"
	"github.com/abhisek/etymquest/internal/config"
	"github.com/abhisek/etymquest/internal/engine"
	"github.com/abhisek/etymquest/internal/llm"
	"github.com/abhisek/etymquest/internal/logging"
	"github.com/abhisek/etymquest/internal/persist"
	"github.com/abhisek/etymquest/internal/store"
	"github.com/abhisek/etymquest/internal/story"
)

// Options configures Open.
type Options struct {
	Config config.Config
	Logger *slog.Logger

	// Rand and Now are passed to the engine. Nil uses the defaults.
	Rand *rand.Rand
	Now  func() time.Time
}

// App holds the open resources for one profile.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Store   *store.Store
	Persist *persist.Adapter
	Catalog *catalog.Catalog
	Engine  *engine.Engine
}

// Open opens the database and builds an engine over the configured profile
// and locale.
func Open(ctx context.Context, opts Options) (*App, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	cat, err := catalog.Load(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	dbPath, err := ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	adapter := persist.New(st.KVRepo(), logger)
	eng, err := engine.New(ctx, engine.Options{
		Catalog:   cat,
		Persister: adapter,
		Events:    st.EventRepo(),
		Key:       cfg.Profile,
		Rand:      opts.Rand,
		Now:       opts.Now,
		Logger:    logger,
	})
	if err != nil {
		adapter.Close()
		st.Close()
		return nil, err
	}

	logger.Debug("app opened",
		slog.String("db", dbPath),
		slog.String("locale", cfg.Locale),
		slog.String("profile", cfg.Profile))

	return &App{
		Config:  cfg,
		Logger:  logger,
		Store:   st,
		Persist: adapter,
		Catalog: cat,
		Engine:  eng,
	}, nil
}

// ResolveDBPath returns path, creating its directory, or the default
// database location when path is empty.
func ResolveDBPath(path string) (string, error) {
	if path != "" {
		return path, store.EnsureDir(path)
	}
	return store.DefaultDBPath()
}

// Provider builds the configured LLM provider. Requests are logged to the
// app's event log.
func (a *App) Provider(ctx context.Context) (llm.Provider, error) {
	return llm.NewProvider(ctx, a.Config.LLMProviderConfig(), a.Store.EventRepo(), a.Logger)
}

// StoryGenerator returns a client for the configured story proxy, or an
// in-process generator over the LLM provider when no proxy is configured.
func (a *App) StoryGenerator(ctx context.Context) (story.Generator, error) {
	if url := a.Config.Story.ProxyURL; url != "" {
		return story.NewProxyClient(url, &http.Client{Timeout: a.Config.Story.Timeout}), nil
	}
	p, err := a.Provider(ctx)
	if err != nil {
		return nil, err
	}
	return story.NewDirectClient(p, a.Config.LLMProviderConfig()), nil
}

// Close stops the engine, writes any pending stats and closes the database.
func (a *App) Close() error {
	a.Engine.Close()
	a.Persist.Close()
	return a.Store.Close()
}
