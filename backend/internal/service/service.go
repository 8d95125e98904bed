package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"monsterdex/backend/internal/catalog"
	"monsterdex/backend/internal/dex"
	"monsterdex/backend/internal/overrides"
	"monsterdex/backend/pkg/errors"
	"monsterdex/backend/pkg/logger"
)

// GraphMirror publishes a snapshot's evolution graph to an external store.
// A mirror failure never fails the refresh that triggered it.
type GraphMirror interface {
	PublishSnapshot(ctx context.Context, snap *dex.Snapshot) error
}

// Service owns the live snapshot and the rebuild lifecycle. Readers always
// see either the previous complete snapshot or the new one, never a partial
// build; the swap is a single atomic pointer store.
type Service struct {
	loader  *catalog.Loader
	fetcher *overrides.Fetcher
	mirror  GraphMirror
	logger  *zap.Logger

	current    atomic.Pointer[dex.Snapshot]
	refreshing sync.Mutex
}

// New creates the resolution service. mirror may be nil when graph
// mirroring is disabled.
func New(loader *catalog.Loader, fetcher *overrides.Fetcher, mirror GraphMirror) *Service {
	return &Service{
		loader:  loader,
		fetcher: fetcher,
		mirror:  mirror,
		logger:  logger.Named("service"),
	}
}

// Current returns the live snapshot, or an error before the first
// successful refresh.
func (s *Service) Current() (*dex.Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, errors.ErrSnapshotUnavailable
	}
	return snap, nil
}

// Resolve runs one query against the live snapshot
func (s *Service) Resolve(query string, region dex.Region) (*dex.Entity, []string, error) {
	snap, err := s.Current()
	if err != nil {
		return nil, nil, err
	}

	e, trail, err := snap.Resolve(query, region)
	recordResolve(region.String(), err == nil)
	return e, trail, err
}

// Refresh rebuilds the snapshot from the feeds and swaps it in, returning
// the new version. Only one refresh runs at a time; a trigger that arrives
// while one is running is dropped with ErrRefreshInProgress rather than
// queued.
func (s *Service) Refresh(ctx context.Context) (string, error) {
	if !s.refreshing.TryLock() {
		recordRefreshSkipped()
		return "", errors.ErrRefreshInProgress
	}
	defer s.refreshing.Unlock()

	started := time.Now()
	s.logger.Info("Index refresh started")

	var raw *catalog.Raw
	var rows []dex.OverrideRow
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = s.loader.Load(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.fetcher.Fetch(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		recordRefreshFailure()
		s.logger.Error("Index refresh failed fetching feeds", zap.Error(err))
		return "", err
	}

	snap, err := dex.BuildSnapshot(raw, rows)
	if err != nil {
		recordRefreshFailure()
		s.logger.Error("Index refresh failed building snapshot", zap.Error(err))
		return "", err
	}

	s.current.Store(snap)
	recordRefreshSuccess(
		time.Since(started),
		snap.IndexFor(dex.RegionAll).Size(),
		snap.IndexFor(dex.RegionNA).Size(),
	)
	s.logger.Info("Index refresh complete",
		zap.String("version", snap.Version),
		zap.Duration("duration", time.Since(started)),
	)

	if s.mirror != nil {
		if err := s.mirror.PublishSnapshot(ctx, snap); err != nil {
			s.logger.Warn("Failed to mirror evolution graph", zap.Error(err))
		}
	}

	return snap.Version, nil
}
