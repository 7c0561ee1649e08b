// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package scheduler promotes scheduled blog posts to published once
// their scheduled time has passed.
package scheduler

import (
	"log/slog"
	"time"
)

// Promoter is the single store operation the scheduler needs.
// Implemented by store.BlogStore.
type Promoter interface {
	PromoteDue(now time.Time) (int64, error)
}

// Scheduler runs a background ticker that periodically promotes due
// posts. Promotion is idempotent, so overlapping runs after a slow tick
// are harmless.
type Scheduler struct {
	blogs    Promoter
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New creates a scheduler ticking at the given interval. Intervals below
// one second are clamped to one minute.
func New(blogs Promoter, interval time.Duration) *Scheduler {
	if interval < time.Second {
		interval = time.Minute
	}
	return &Scheduler{
		blogs:    blogs,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background loop. An immediate promotion pass runs
// at startup so posts overdue during downtime publish right away.
func (s *Scheduler) Start() {
	go func() {
		defer close(s.doneCh)

		s.promote()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.promote()
			case <-s.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the background loop and waits for it to exit.
func (s *Scheduler) Stop() {
	close(s.stopCh)
	<-s.doneCh
}

func (s *Scheduler) promote() {
	n, err := s.blogs.PromoteDue(time.Now())
	if err != nil {
		slog.Error("scheduled post promotion failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("scheduled posts published", "count", n)
	}
}
