package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/enterpriseland/assessment-service/internal/application/usecase"
	"github.com/enterpriseland/assessment-service/internal/domain/service"
	"github.com/enterpriseland/assessment-service/internal/infrastructure/config"
	"github.com/enterpriseland/assessment-service/internal/infrastructure/kafka"
	pgRepo "github.com/enterpriseland/assessment-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/enterpriseland/assessment-service/internal/presentation/grpc"
	"github.com/enterpriseland/assessment-service/internal/presentation/rest"
	"github.com/enterpriseland/assessment-service/pkg/auth"
	pkgkafka "github.com/enterpriseland/assessment-service/pkg/kafka"
	"github.com/enterpriseland/assessment-service/pkg/observability"
	pkgpostgres "github.com/enterpriseland/assessment-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
	})
	slog.SetDefault(logger)

	logger.Info("starting assessment-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Prometheus metrics exporter.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
		Port:        cfg.HTTPPort,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pgCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	assessmentRepo := pgRepo.NewAssessmentRepo(pool)
	caseRepo := pgRepo.NewCaseRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewEventPublisher(kafkaProducer, kafka.DefaultTopics(), logger)

	engine := service.NewScoringEngine(service.Thresholds{
		Premium:    decimal.NewFromInt(int64(cfg.Scoring.PremiumThreshold)),
		Acceptable: decimal.NewFromInt(int64(cfg.Scoring.AcceptableThreshold)),
	})

	// Wire use cases.
	createUC := usecase.NewCreateAssessmentUseCase(assessmentRepo, publisher)
	addMetricUC := usecase.NewAddMetricUseCase(assessmentRepo, publisher, engine)
	getAssessmentUC := usecase.NewGetAssessmentUseCase(assessmentRepo, engine)
	submitUC := usecase.NewSubmitForReviewUseCase(assessmentRepo, publisher, engine)
	approveUC := usecase.NewApproveAssessmentUseCase(assessmentRepo, publisher)
	rejectUC := usecase.NewRejectAssessmentUseCase(assessmentRepo, publisher)
	requestInfoUC := usecase.NewRequestInfoUseCase(assessmentRepo, publisher)
	archiveUC := usecase.NewArchiveAssessmentUseCase(assessmentRepo, publisher)
	recomputeUC := usecase.NewRecomputeStaleUseCase(assessmentRepo, publisher, engine, logger)
	openCaseUC := usecase.NewOpenCaseUseCase(caseRepo, publisher)
	transitionCaseUC := usecase.NewTransitionCaseUseCase(caseRepo, publisher)
	decideCaseUC := usecase.NewDecideCaseUseCase(caseRepo, publisher)
	getCaseUC := usecase.NewGetCaseUseCase(caseRepo)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: "enterpriseland-gateway",
	}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case os.Getenv("JWT_PUBLIC_KEY_FILE") != "":
		keyData, loadErr := auth.LoadKeyFromFile(os.Getenv("JWT_PUBLIC_KEY_FILE"))
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			jwtSecret = "test-e2e-secret" // Match gateway default for E2E tests
		}
		jwtCfg.Secret = jwtSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewAssessmentHandler(
		createUC, addMetricUC, getAssessmentUC, submitUC,
		approveUC, rejectUC, requestInfoUC, archiveUC, recomputeUC,
		openCaseUC, transitionCaseUC, decideCaseUC, getCaseUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Periodic stale-score recompute.
	if cfg.RecomputeInterval > 0 {
		go runRecomputeLoop(ctx, recomputeUC, time.Duration(cfg.RecomputeInterval)*time.Minute, logger)
	} else {
		logger.Info("stale-score recompute disabled")
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("assessment-service stopped")
}

// runRecomputeLoop re-derives cached scores for drifted assessments on a
// fixed interval until the context is cancelled.
func runRecomputeLoop(ctx context.Context, uc *usecase.RecomputeStaleUseCase, interval time.Duration, logger *slog.Logger) {
	logger.Info("stale-score recompute scheduled", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.Execute(ctx); err != nil {
				logger.Error("stale-score recompute failed", "error", err)
			}
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
