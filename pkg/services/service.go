package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

type Logger interface {
	Error(msg string, v ...interface{})
	Warn(msg string, v ...interface{})
	Info(msg string, v ...interface{})
	Debug(msg string, v ...interface{})
}

type (
	Service interface {
		Name() string
		Init() error
		Run(ctx context.Context)
		Stop()
	}
	Services interface {
		AddService(service ...Service)
		Run(ctx context.Context) error
	}
	Manager struct {
		log      Logger
		services []Service
	}
)

func NewManager(log Logger) Services {
	return &Manager{log: log}
}

func (s *Manager) AddService(service ...Service) {
	s.services = append(s.services, service...)
}

// Run initialises every service in order, starts them, and blocks until an
// interrupt arrives or ctx is cancelled. If a service fails to initialise the
// ones already started are stopped.
func (s *Manager) Run(ctx context.Context) error {
	s.log.Info("going to start services", "count", len(s.services))
	for count, service := range s.services {
		if err := service.Init(); err != nil {
			for _, started := range s.services[:count] {
				started.Stop()
			}
			return fmt.Errorf("init %s: %w", service.Name(), err)
		}
		s.log.Info("service started", "service", service.Name())
		go service.Run(ctx)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case <-c:
		s.stop()
	case <-ctx.Done():
		s.stop()
	}

	return nil
}

func (s *Manager) stop() {
	s.log.Info("going to stop")
	for _, service := range s.services {
		service.Stop()
	}
}
