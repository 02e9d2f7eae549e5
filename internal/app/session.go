// Package app wires the catalog, scoring engine, workflow controller and
// snapshot persistence into one resumable diagnosis session.
package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rare-disease-dx/internal/catalog"
	"github.com/rare-disease-dx/internal/config"
	"github.com/rare-disease-dx/internal/matching"
	"github.com/rare-disease-dx/internal/snapshot"
	"github.com/rare-disease-dx/internal/workflow"
)

// Session is a running diagnosis session.
type Session struct {
	config     *config.Config
	logger     *logrus.Logger
	catalog    *catalog.Store
	engine     *matching.Engine
	controller *workflow.Controller
	snapshots  *snapshot.Session
	writer     *snapshot.Writer
	store      snapshot.Store
	detach     func()
	resumed    bool
}

// Option is a functional option for Open.
type Option func(*Session) error

// WithLogger sets a custom logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Session) error {
		s.logger = logger
		return nil
	}
}

// WithStore sets a custom snapshot store in place of the configured backend.
func WithStore(store snapshot.Store) Option {
	return func(s *Session) error {
		s.store = store
		return nil
	}
}

// WithCatalog sets a custom catalog in place of the bundled one.
func WithCatalog(store *catalog.Store) Option {
	return func(s *Session) error {
		s.catalog = store
		return nil
	}
}

// Open builds a session from cfg and resumes the saved snapshot, if any.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	s := &Session{config: cfg}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if s.logger == nil {
		s.logger = cfg.Logging.NewLogger()
	}

	// Catalog integrity is fatal at startup.
	if s.catalog == nil {
		store, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		s.catalog = store
	}
	s.logger.WithFields(logrus.Fields{
		"symptoms":   len(s.catalog.AllSymptoms()),
		"conditions": len(s.catalog.AllConditions()),
	}).Info("Catalog loaded")

	engine, err := matching.NewEngine(s.catalog, cfg.Scoring.CacheSize, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring engine: %w", err)
	}
	s.engine = engine

	if s.store == nil {
		store, err := openStore(ctx, cfg, s.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot store: %w", err)
		}
		s.store = store
	}
	breaker := snapshot.NewBreakerStore(s.store, snapshot.BreakerConfig{
		MaxFailures: cfg.Snapshot.Breaker.MaxFailures,
		Timeout:     cfg.Snapshot.Breaker.Timeout,
	}, s.logger)

	s.snapshots = snapshot.NewSession(breaker, s.logger)
	s.controller = workflow.NewController(engine, workflow.Options{
		Delay:  cfg.Scoring.Delay,
		Logger: s.logger,
	})
	s.writer = snapshot.NewWriter(s.snapshots, s.logger)
	s.detach = s.writer.Attach(s.controller)

	s.resume(ctx)
	return s, nil
}

// resume restores the saved state. Failures leave a fresh session.
func (s *Session) resume(ctx context.Context) {
	state, ok := s.snapshots.Load(ctx)
	if !ok {
		return
	}
	if err := s.controller.Restore(state); err != nil {
		s.logger.WithError(err).Warn("Could not restore snapshot, starting fresh session")
		return
	}
	s.resumed = true
}

func openStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (snapshot.Store, error) {
	switch cfg.Snapshot.Backend {
	case config.BackendMemory:
		return snapshot.NewMemoryStore(), nil
	case config.BackendFile:
		if err := cfg.EnsureDataDir(); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return snapshot.NewFileStore(cfg.SnapshotFilePath())
	case config.BackendSQLite:
		if err := cfg.EnsureDataDir(); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return snapshot.NewSQLiteStore(ctx, cfg.SnapshotDBPath(), cfg.Snapshot.Slot, logger)
	default:
		return nil, fmt.Errorf("unknown snapshot backend: %s", cfg.Snapshot.Backend)
	}
}

// Controller returns the workflow controller.
func (s *Session) Controller() *workflow.Controller {
	return s.controller
}

// Catalog returns the catalog store.
func (s *Session) Catalog() *catalog.Store {
	return s.catalog
}

// Engine returns the scoring engine.
func (s *Session) Engine() *matching.Engine {
	return s.engine
}

// Snapshots returns the snapshot session.
func (s *Session) Snapshots() *snapshot.Session {
	return s.snapshots
}

// Writer returns the snapshot writer attached to the controller.
func (s *Session) Writer() *snapshot.Writer {
	return s.writer
}

// Logger returns the session logger.
func (s *Session) Logger() *logrus.Logger {
	return s.logger
}

// Resumed reports whether Open restored a saved snapshot.
func (s *Session) Resumed() bool {
	return s.resumed
}

// Close waits for an outstanding computation, detaches the snapshot writer
// and closes the store.
func (s *Session) Close() error {
	s.controller.Close()
	s.detach()
	if err := s.store.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot store: %w", err)
	}
	return nil
}
