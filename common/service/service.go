//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

// Package service runs a long-lived process: a background function,
// periodic tasks on a ticker, and a stop function on shutdown.
package service

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

type Service struct {
	logger         interfaces.Logger
	clock          clockwork.Clock
	ServiceName    string
	ServiceVersion string
	ServiceBuild   int
	TaskTicker     time.Duration
	BackgroundFunc func(context.Context, interfaces.Logger)
	TasksFunc      func(interfaces.Logger)
	StopFunc       func(interfaces.Logger)
	SEid           uint32
	tickerUpdate   chan time.Duration
}

// New returns a default Service
func New(options ...func(*Service) error) (*Service, error) {

	// Initialize the Service with default values
	s := &Service{
		clock:          clockwork.NewRealClock(),
		ServiceName:    "DLW",
		ServiceVersion: "unknown",
		TaskTicker:     60 * time.Second,
		tickerUpdate:   make(chan time.Duration, 1),
	}

	// Apply the options
	for _, op := range options {
		err := op(s)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Start runs the service until SIGINT or SIGTERM is received
func (s *Service) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run the service until ctx is cancelled
func (s *Service) Run(ctx context.Context) error {
	if s.logger == nil {
		return errors.New("refusing to start service with nil logger")
	}

	s.logger.Infof(s.SEid+1, "%s %s (build %d) service started", s.ServiceName, s.ServiceVersion, s.ServiceBuild)
	s.logger.Debugf(s.SEid+1, "Debug logging enabled")

	if s.BackgroundFunc != nil {
		go s.BackgroundFunc(ctx, s.logger)
	}

	ticker := s.clock.NewTicker(s.TaskTicker)
	defer ticker.Stop()

	// Loop, call the TasksFunc, and wait for an exit request
	for {
		select {
		case <-ticker.Chan():
			if s.TasksFunc != nil {
				s.TasksFunc(s.logger)
			}
		case d := <-s.tickerUpdate:
			ticker.Reset(d)
		case <-ctx.Done():
			s.logger.Infof(s.SEid+2, "%s %s (build %d) service stopping", s.ServiceName, s.ServiceVersion, s.ServiceBuild)
			if s.StopFunc != nil {
				s.StopFunc(s.logger)
			}
			s.logger.Infof(s.SEid+3, "%s %s (build %d) service stopped", s.ServiceName, s.ServiceVersion, s.ServiceBuild)
			return nil
		}
	}
}

// UpdateTaskTicker changes the task interval of a running service
func (s *Service) UpdateTaskTicker(d time.Duration) {
	if d <= 0 {
		return
	}
	s.TaskTicker = d
	select {
	case s.tickerUpdate <- d:
	default:
	}
}

func WithServiceName(name string) func(*Service) error {
	return func(s *Service) error {
		s.ServiceName = name
		return nil
	}
}

func WithServiceVersion(version string) func(*Service) error {
	return func(s *Service) error {
		s.ServiceVersion = version
		return nil
	}
}

func WithServiceBuild(build int) func(*Service) error {
	return func(s *Service) error {
		s.ServiceBuild = build
		return nil
	}
}

func WithLogger(logger interfaces.Logger) func(*Service) error {
	return func(s *Service) error {
		s.logger = logger
		return nil
	}
}

func WithClock(clock clockwork.Clock) func(*Service) error {
	return func(s *Service) error {
		if clock == nil {
			return errors.New("clock is nil")
		}
		s.clock = clock
		return nil
	}
}

func WithTaskTicker(ticker time.Duration) func(*Service) error {
	return func(s *Service) error {
		if ticker <= 0 {
			return errors.New("task ticker must be positive")
		}
		s.TaskTicker = ticker
		return nil
	}
}

func WithBackgroundFunc(f func(context.Context, interfaces.Logger)) func(*Service) error {
	return func(s *Service) error {
		s.BackgroundFunc = f
		return nil
	}
}

func WithTasksFunc(f func(interfaces.Logger)) func(*Service) error {
	return func(s *Service) error {
		s.TasksFunc = f
		return nil
	}
}

func WithStopFunc(f func(interfaces.Logger)) func(*Service) error {
	return func(s *Service) error {
		s.StopFunc = f
		return nil
	}
}

func WithSEid(seid uint32) func(*Service) error {
	return func(s *Service) error {
		s.SEid = seid
		return nil
	}
}
