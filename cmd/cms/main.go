package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/skinpoint/cms/pkg/api"
	"github.com/skinpoint/cms/pkg/auth"
	"github.com/skinpoint/cms/pkg/config"
	"github.com/skinpoint/cms/pkg/observability"
	"github.com/skinpoint/cms/pkg/revalidate"
	"github.com/skinpoint/cms/pkg/schema"
	"github.com/skinpoint/cms/pkg/storage/mongo"
	"github.com/skinpoint/cms/pkg/storage/s3"
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		observability.NewLogger(observability.ErrorLevel, nil).WithError(err).Error("failed to load configuration")
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Observability.LogLevel, nil)
	metrics := observability.NewMetrics(nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	documents, err := mongo.Connect(ctx, cfg.Storage.MongoURI, cfg.Storage.MongoDB, cfg.Storage.MongoTimeout)
	if err != nil {
		logger.WithError(err).Error("failed to connect to mongodb")
		os.Exit(1)
	}
	defer func() {
		if err := documents.Close(context.Background()); err != nil {
			logger.WithError(err).Warn("mongodb disconnect failed")
		}
	}()
	logger.WithField("database", cfg.Storage.MongoDB).Info("connected to mongodb")

	objects, err := s3.NewClient(ctx, cfg.Storage)
	if err != nil {
		logger.WithError(err).Error("failed to initialize object storage")
		os.Exit(1)
	}
	logger.WithField("bucket", cfg.Storage.S3Bucket).Info("object storage ready")

	verifier, err := auth.NewOIDCVerifier(ctx, cfg.Auth.OIDCIssuerURL, cfg.Auth.OIDCClientID)
	if err != nil {
		logger.WithError(err).Error("failed to initialize token verifier")
		os.Exit(1)
	}

	trigger := revalidate.NewHTTPTrigger(cfg.Revalidate.Endpoint, cfg.Revalidate.Paths, logger, metrics)

	server := api.NewServer(api.Dependencies{
		Registry:  schema.NewRegistry(),
		Documents: documents,
		Objects:   objects,
		Verifier:  verifier,
		Trigger:   trigger,
		Logger:    logger,
		Metrics:   metrics,
	})

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("starting cms server")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("server failed")
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}

	// Let queued revalidation requests drain before exit.
	if t, ok := trigger.(*revalidate.HTTPTrigger); ok {
		t.Wait()
	}

	logger.Info("server stopped")
}
