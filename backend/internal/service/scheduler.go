package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"monsterdex/backend/pkg/errors"
	"monsterdex/backend/pkg/logger"
)

// Scheduler triggers periodic index refreshes. A failed refresh retries on
// a shorter interval; a refresh dropped because one is already running
// waits out the normal interval.
type Scheduler struct {
	service  *Service
	interval time.Duration
	retry    time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	running  bool
}

// NewScheduler creates a refresh scheduler for the service
func NewScheduler(service *Service, interval, retry time.Duration) *Scheduler {
	return &Scheduler{
		service:  service,
		interval: interval,
		retry:    retry,
		logger:   logger.Named("scheduler"),
		stopChan: make(chan struct{}),
		running:  false,
	}
}

// Start begins the refresh loop, running one refresh immediately
func (s *Scheduler) Start() {
	if s.running {
		s.logger.Warn("Refresh scheduler already running")
		return
	}

	s.running = true
	s.stopChan = make(chan struct{})

	go s.runLoop()

	s.logger.Info("Refresh scheduler started",
		zap.Duration("interval", s.interval),
		zap.Duration("retry", s.retry),
	)
}

// Stop stops the refresh loop
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}

	s.running = false
	close(s.stopChan)

	s.logger.Info("Refresh scheduler stopped")
}

// runLoop refreshes, then sleeps until the next attempt is due
func (s *Scheduler) runLoop() {
	for {
		wait := s.interval
		if _, err := s.service.Refresh(context.Background()); err != nil {
			if err == errors.ErrRefreshInProgress {
				// another trigger beat us to it, wait out the normal interval
				s.logger.Debug("Scheduled refresh skipped, one already running")
			} else {
				wait = s.retry
				s.logger.Warn("Scheduled refresh failed, retrying on short interval",
					zap.Duration("retry", s.retry),
					zap.Error(err),
				)
			}
		}

		select {
		case <-s.stopChan:
			return
		case <-time.After(wait):
		}
	}
}
