package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/foundanand/trackmygov/config"
	"github.com/foundanand/trackmygov/metrics"
	"github.com/foundanand/trackmygov/routes"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const programName = "trackmygov"

var globalFlags = struct {
	debug bool
}{}

// commonRun loads config and sets up logging for every subcommand.
func commonRun() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("failed to load config")
		os.Exit(1)
	}
	config.SetupLogger(cfg, globalFlags.debug)
	return cfg
}

func serveRun(_ *cobra.Command, _ []string) {
	cfg := commonRun()
	gin.SetMode(cfg.GinMode)
	metrics.Register()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.WithError(err).Warn("failed to close database")
		}
	}()
	log.WithField("driver", cfg.DBDriver).Info("database ready")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(db, cfg.CORSOrigins()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

func migrateRun(_ *cobra.Command, _ []string) {
	cfg := commonRun()
	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	if err := config.CloseDB(db); err != nil {
		log.WithError(err).Warn("failed to close database")
	}
	log.WithField("driver", cfg.DBDriver).Info("migration complete")
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Run:   serveRun,
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Run:   migrateRun,
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "Civic issue reporting API",
		Run:   serveRun,
	}
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.AddCommand(serveCommand(), migrateCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
