// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     server
// Description: gRPC validation service with metrics and health endpoints
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package server exposes record validation over gRPC. Reports of batch
// runs are kept in a report.Store, and Prometheus metrics and a JSON health
// report are served over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	mdwerror "github.com/msto63/sro/foundation/core/error"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/internal/intake"
	"github.com/msto63/sro/internal/metrics"
	"github.com/msto63/sro/internal/report"
	"github.com/msto63/sro/pkg/core/cache"
	"github.com/msto63/sro/pkg/core/config"
	coreGrpc "github.com/msto63/sro/pkg/core/grpc"
	"github.com/msto63/sro/pkg/core/health"
	"github.com/msto63/sro/pkg/core/logging"
	"github.com/msto63/sro/pkg/core/version"
)

// healthInterval is how often the gRPC serving status is refreshed
const healthInterval = 15 * time.Second

// Options holds the dependencies of a Server. Store may be nil, in which
// case batch reports are not kept.
type Options struct {
	Store   report.Store
	Metrics *metrics.Metrics
	Logger  *logging.Logger
}

// Server is the SRO validation server
type Server struct {
	config  *config.Config
	grpc    *coreGrpc.Server
	http    *http.Server
	health  *health.Registry
	store   report.Store
	reports *cache.Cache[*report.Report]
	metrics *metrics.Metrics
	logger  *logging.Logger

	// mu guards config.Validation, which Reload replaces at runtime
	mu sync.RWMutex

	stop chan struct{}
	wg   sync.WaitGroup
}

// New creates a server for cfg
func New(cfg *config.Config, opts Options) (*Server, error) {
	if cfg == nil {
		return nil, mdwerror.New("configuration is required").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("server.New")
	}
	if err := cfg.Validate(); err != nil {
		return nil, mdwerror.Wrap(err, "invalid server configuration").
			WithCode(mdwerror.CodeServiceInitialization).
			WithOperation("server.New")
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.New("sro-server")
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	grpcCfg := coreGrpc.DefaultServerConfig()
	grpcCfg.Host = cfg.Server.Host
	grpcCfg.Port = cfg.Server.Port
	grpcCfg.EnableReflection = cfg.Server.Reflection
	grpcCfg.Logger = logger

	s := &Server{
		config:  cfg,
		grpc:    coreGrpc.NewServer(grpcCfg),
		health:  health.NewRegistry(version.Service, version.Release),
		store:   opts.Store,
		metrics: m,
		logger:  logger,
		stop:    make(chan struct{}),
	}

	s.health.Register(health.AlwaysHealthy("validator"))
	if opts.Store != nil {
		s.reports = cache.New[*report.Report](cache.DefaultConfig())
	}
	if p, ok := opts.Store.(health.Pinger); ok {
		s.health.Register(health.PingCheck("store", p))
	}

	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		mux.HandleFunc("/healthz", s.handleHealth)
		s.http = &http.Server{
			Addr:              cfg.MetricsAddress(),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		s.health.Register(health.TCPCheck("metrics", cfg.MetricsAddress(), time.Second))
	}

	RegisterValidationServiceServer(s.grpc.GRPCServer(), s)

	return s, nil
}

// StartAsync starts the gRPC listener, the metrics endpoint and the health
// refresh loop
func (s *Server) StartAsync() error {
	s.logger.Info("Starting SRO server", "address", s.config.ServerAddress(), "version", version.Release)
	if err := s.grpc.StartAsync(); err != nil {
		return err
	}

	if s.http != nil {
		lis, err := net.Listen("tcp", s.http.Addr)
		if err != nil {
			s.grpc.Stop()
			return mdwerror.Wrap(err, "failed to listen for metrics").
				WithCode(mdwerror.CodeServiceUnavailable).
				WithOperation("server.StartAsync")
		}
		go func() {
			if err := s.http.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server error", "error", err)
			}
		}()
		s.logger.Info("Metrics endpoint listening", "address", s.http.Addr)
	}

	s.wg.Add(1)
	go s.watchHealth()
	return nil
}

// Serve serves gRPC on lis until stopped. The metrics endpoint is not
// started.
func (s *Server) Serve(lis net.Listener) error {
	s.syncHealth()
	return s.grpc.Serve(lis)
}

// Stop shuts the server down. Requests still running when ctx expires are
// cancelled.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping SRO server")
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	s.wg.Wait()

	s.grpc.StopWithTimeout(ctx)
	if s.reports != nil {
		s.reports.Close()
	}
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			return mdwerror.Wrap(err, "failed to stop metrics endpoint").
				WithCode(mdwerror.CodeInternal).
				WithOperation("server.Stop")
		}
	}
	return nil
}

// Address returns the gRPC listen address
func (s *Server) Address() string {
	return s.grpc.Address()
}

// Reload applies the validation settings of cfg to subsequent requests.
// Listener, store and metrics settings need a restart and are ignored.
func (s *Server) Reload(cfg *config.Config) {
	s.mu.Lock()
	old := s.config.Validation
	s.config.Validation = cfg.Validation
	s.mu.Unlock()

	if old != cfg.Validation {
		s.logger.Info("Validation settings reloaded",
			"concurrency", cfg.Validation.Concurrency,
			"today", cfg.Validation.Today)
	}
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

func (s *Server) watchHealth() {
	defer s.wg.Done()

	s.syncHealth()
	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.syncHealth()
		}
	}
}

func (s *Server) syncHealth() {
	rep := s.health.CheckWithTimeout(5 * time.Second)
	s.grpc.SetServing(ServiceName, rep.Serving())
	if !rep.Serving() {
		s.logger.Warn("Health check failed", "status", string(rep.Status), "failing", rep.Failing())
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	rep := s.health.Check(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if !rep.Serving() {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(rep)
}

// validator returns a validator for the request's reference date. An
// empty today uses the configured date.
func (s *Server) validator(today string) (*intake.Validator, error) {
	s.mu.RLock()
	date := s.config.ReferenceDate()
	concurrency := s.config.Validation.Concurrency
	s.mu.RUnlock()

	if today != "" {
		d, err := timex.ParseDate(today)
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid reference date").
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("today", today)
		}
		date = d
	}
	return intake.NewValidator(intake.NewBuilder(date),
		intake.WithMetrics(s.metrics),
		intake.WithLogger(s.logger),
		intake.WithConcurrency(concurrency),
	), nil
}
