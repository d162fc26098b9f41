package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/tournevent/seventeentrack/internal/config"
	"github.com/tournevent/seventeentrack/internal/telemetry"
	"github.com/tournevent/seventeentrack/pkg/seventeentrack"
	"github.com/tournevent/seventeentrack/pkg/track"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// app bundles everything a command handler needs.
type app struct {
	cfg      *config.Config
	logger   *otelzap.Logger
	profile  track.Profile
	shutdown func(context.Context)
}

// bootstrap loads configuration, wires telemetry, constructs the client for
// the configured API generation and logs the profile in.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := telemetry.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	shutdown := func(ctx context.Context) { _ = logger.Sync() }

	opts := []seventeentrack.Option{
		seventeentrack.WithVersion(parseVersion(cfg.APIVersion)),
		seventeentrack.WithLogger(logger),
		seventeentrack.WithMetrics(telemetry.NewMetrics()),
		seventeentrack.WithMock(cfg.UseMock),
	}

	if cfg.OTELEnabled {
		tracer, stopTracer, err := telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
		if err != nil {
			logger.Warn("Failed to initialize tracer", zap.Error(err))
		} else {
			opts = append(opts, seventeentrack.WithTracer(tracer))
			shutdown = func(ctx context.Context) {
				_ = stopTracer(ctx)
				_ = logger.Sync()
			}
		}
	}

	client := seventeentrack.New(opts...)
	profile := client.Profile()

	ok, err := profile.Login(ctx, track.Credentials{
		Email:    cfg.Email,
		Password: cfg.Password,
		APIToken: cfg.APIToken,
	})
	if err != nil {
		shutdown(ctx)
		return nil, fmt.Errorf("login: %w", err)
	}
	if !ok {
		shutdown(ctx)
		return nil, errors.New("login rejected: check SEVENTEENTRACK_EMAIL and SEVENTEENTRACK_PASSWORD")
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		profile:  profile,
		shutdown: shutdown,
	}, nil
}

func parseVersion(name string) seventeentrack.Version {
	if name == "v1" || name == "V1" {
		return seventeentrack.VersionV1
	}
	return seventeentrack.VersionLegacy
}
