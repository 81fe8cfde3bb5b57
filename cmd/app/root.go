package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ordering/cmd"
	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/pkg/observability"

	"github.com/spf13/cobra"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "ordering",
		Short:         "Order intake and delivery-date negotiation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")

	root.AddCommand(
		newServeCmd(&envFile),
		newMigrateCmd(&envFile),
		newRelayCmd(&envFile),
	)
	return root
}

func newServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations, then run the HTTP API and the background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, *envFile)
		},
	}
}

func newMigrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(*envFile)
			if err != nil {
				return err
			}
			return postgres.Migrate(c.Context(), config.DSN())
		},
	}
}

func newRelayCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "relay",
		Short: "Publish undelivered notifications once and exit",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(*envFile)
			if err != nil {
				return err
			}
			logger := newLogger(config)

			root, db, err := open(config, logger)
			if err != nil {
				return err
			}
			defer closeAll(root, db, logger)

			delivered, err := root.CreateNotificationRelayJob().RunOnce(c.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "delivered %d notification(s)\n", delivered)
			return nil
		},
	}
}

func serve(ctx context.Context, envFile string) error {
	config, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}
	logger := newLogger(config)

	shutdownTracing, err := observability.Init(ctx, observability.TracingConfig{
		ServiceName: "ordering",
		Environment: config.Environment,
		Exporter:    config.OTelExporter,
		Endpoint:    config.OTelEndpoint,
		Insecure:    config.OTelInsecure,
	}, logger)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if flushErr := shutdownTracing(flushCtx); flushErr != nil {
			logger.Error("failed to flush traces", "error", flushErr)
		}
	}()

	if err = postgres.Migrate(ctx, config.DSN()); err != nil {
		return err
	}

	root, db, err := open(config, logger)
	if err != nil {
		return err
	}
	defer closeAll(root, db, logger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := httpin.NewRouter(root.CreateHTTPServer(), httpin.RouterOptions{RateLimit: config.RateLimit}, logger)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "port", config.HTTPPort)
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func open(config cmd.Config, logger *slog.Logger) (*cmd.CompositionRoot, *gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	root, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		closeDB(db, logger)
		return nil, nil, err
	}
	return root, db, nil
}

func closeAll(root *cmd.CompositionRoot, db *gorm.DB, logger *slog.Logger) {
	if err := root.Close(); err != nil {
		logger.Error("failed to close publishers", "error", err)
	}
	closeDB(db, logger)
}

func closeDB(db *gorm.DB, logger *slog.Logger) {
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if err != nil {
		logger.Error("failed to close database", "error", err)
	}
}

func newLogger(config cmd.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(config.LogLevel))); err != nil {
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
