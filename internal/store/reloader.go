package store

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/JacobBurge13/sounders-depth-chart/internal/metrics"
)

// Store owns the current snapshot and swaps in fresh ones as the ingestion
// pipeline rewrites the artifacts. Readers always see a complete snapshot;
// the swap is atomic and old snapshots stay valid for requests already
// holding them.
type Store struct {
	dir    string
	logger *logrus.Logger

	current atomic.Pointer[Snapshot]

	mu        sync.Mutex
	cron      *cron.Cron
	isRunning bool
	onReload  []func(*Snapshot)
}

// New creates a store reading artifacts from dir. Call Load before serving.
func New(dir string, logger *logrus.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
		cron:   cron.New(),
	}
}

// Load performs the initial snapshot load.
func (s *Store) Load() error {
	snap, err := Load(s.dir)
	if err != nil {
		return err
	}
	s.current.Store(snap)
	s.logger.WithFields(logrus.Fields{
		"version": snap.Version,
		"players": len(snap.Players),
		"events":  len(snap.Events),
		"matches": len(snap.Matches),
	}).Info("Snapshot loaded")
	return nil
}

// Current returns the active snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Reload loads a fresh snapshot and swaps it in. Percentiles are recomputed
// as part of the load, so a roster change never serves stale ranks. Reload
// callbacks run synchronously with the new snapshot.
func (s *Store) Reload() (*Snapshot, error) {
	snap, err := Load(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reloading snapshot: %w", err)
	}
	s.current.Store(snap)
	metrics.SnapshotReloads.Inc()
	s.logger.WithFields(logrus.Fields{
		"version": snap.Version,
		"players": len(snap.Players),
		"events":  len(snap.Events),
	}).Info("Snapshot reloaded")

	s.mu.Lock()
	callbacks := make([]func(*Snapshot), len(s.onReload))
	copy(callbacks, s.onReload)
	s.mu.Unlock()
	for _, fn := range callbacks {
		fn(snap)
	}

	return snap, nil
}

// OnReload registers a callback invoked after every successful reload.
func (s *Store) OnReload(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReload = append(s.onReload, fn)
}

// StartReloader begins scheduled reloads at the given interval.
func (s *Store) StartReloader(interval time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("reloader is already running")
	}

	schedule := fmt.Sprintf("@every %s", interval.String())
	_, err := s.cron.AddFunc(schedule, func() {
		if _, err := s.Reload(); err != nil {
			s.logger.Errorf("Scheduled reload failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reloader: %w", err)
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Infof("Snapshot reloader started with interval %s", interval)
	return nil
}

// Stop halts scheduled reloads.
func (s *Store) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		return
	}
	s.cron.Stop()
	s.isRunning = false
	s.logger.Info("Snapshot reloader stopped")
}
