package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/library-lending-go/console"
	"github.com/AntonStoeckl/library-lending-go/library"
	"github.com/AntonStoeckl/library-lending-go/shell"
	"github.com/AntonStoeckl/library-lending-go/shell/config"
	"github.com/AntonStoeckl/library-lending-go/shell/logging"
	"github.com/AntonStoeckl/library-lending-go/shell/oteladapters"
	"github.com/AntonStoeckl/library-lending-go/shell/postgrespublisher"
)

const (
	logMsgSessionStarted  = "library session started"
	logMsgSessionFinished = "library session finished"
	logMsgSeedIncomplete  = "sample data partially registered"
	logAttrSessionID      = "session_id"
	logAttrBooks          = "books"
	logAttrPatrons        = "patrons"
	logAttrEvents         = "events"
	logAttrSink           = "event_sink"
	logAttrObservability  = "observability"
)

// Run builds the library from cfg and runs one console session until exit or end of input.
func Run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, version string) (err error) {
	sink, closeSink, err := logging.OpenSink(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closeSink()) }()

	handler, err := logging.NewHandler(sink, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	logger := slog.New(handler)

	lib, err := library.New(library.WithLogger(logger))
	if err != nil {
		return err
	}

	if cfg.Library.Seed {
		if seedErr := library.Seed(lib); seedErr != nil {
			logger.Warn(logMsgSeedIncomplete, "error", seedErr.Error())
		}
	}

	publisher, closePublisher, err := eventPublisher(ctx, cfg.Events, sink, logger)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closePublisher()) }()

	obs := observability{logger: logger}
	if cfg.Observability.Enabled {
		providers, provErr := config.NewObservabilityProviders(ctx, cfg.Observability, version)
		if provErr != nil {
			return fmt.Errorf("failed to set up observability: %w", provErr)
		}
		defer func() { err = errors.Join(err, providers.Shutdown(context.Background())) }()

		obs = observability{
			metrics:          oteladapters.NewMetricsCollector(otel.Meter(cfg.Observability.ServiceName)),
			tracing:          oteladapters.NewTracingCollector(otel.Tracer(cfg.Observability.ServiceName)),
			contextualLogger: oteladapters.NewSlogBridgeLoggerWithHandler(handler),
		}
	}

	handlers, err := instrument(console.HandlersFor(lib, publisher), obs)
	if err != nil {
		return err
	}

	c, err := console.New(in, out, handlers, console.WithColor(cfg.Console.Color))
	if err != nil {
		return err
	}

	sessionID := uuid.New()
	ctx = shell.WithCorrelationID(ctx, sessionID)

	logger.Info(logMsgSessionStarted,
		logAttrSessionID, sessionID.String(),
		logAttrBooks, lib.BookCount(),
		logAttrPatrons, lib.PatronCount(),
		logAttrEvents, cfg.Events.Enabled,
		logAttrSink, cfg.Events.Sink,
		logAttrObservability, cfg.Observability.Enabled,
	)

	err = c.Run(ctx)

	logger.Info(logMsgSessionFinished, logAttrSessionID, sessionID.String())

	return err
}

// eventPublisher returns nil when events are disabled. The close function is never nil.
func eventPublisher(
	ctx context.Context,
	cfg config.EventsConfig,
	sink io.Writer,
	logger *slog.Logger,
) (shell.EventPublisher, func() error, error) {
	noop := func() error { return nil }

	if !cfg.Enabled {
		return nil, noop, nil
	}

	if cfg.Sink != config.SinkPostgres {
		return shell.NewJSONLinesPublisher(sink), noop, nil
	}

	publisher, err := postgrespublisher.Open(
		ctx,
		cfg.Postgres.Adapter,
		cfg.Postgres.DSN,
		postgrespublisher.WithTableName(cfg.Postgres.Table),
		postgrespublisher.WithLogger(logger),
	)
	if err != nil {
		return nil, noop, err
	}

	return publisher, publisher.Close, nil
}
