package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/config"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/db"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/logger"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/routes"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/seed"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nicaexpressway",
	Short: "NicaExpressway package tracking backend",
	Long: `Serves the NicaExpressway package tracking API: package intake,
status history, client requests, reminders, prices and dashboard stats.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		log, err = logger.New(cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and start the HTTP server",
	RunE:  serve,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := connect()
		if err != nil {
			return err
		}
		log.Info("Migration completed")
		return closeDB(database)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default price and password rows, hashing plain-text passwords",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := connect()
		if err != nil {
			return err
		}
		if err := seed.Seed(database, cfg, log); err != nil {
			return err
		}
		return closeDB(database)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// connect opens the database and migrates every model
func connect() (*gorm.DB, error) {
	database, err := db.Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(database); err != nil {
		log.Error("Error during auto-migration", zap.Error(err))
		return nil, err
	}
	return database, nil
}

func closeDB(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func serve(cmd *cobra.Command, args []string) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	database, err := connect()
	if err != nil {
		return err
	}
	defer closeDB(database)

	if cfg.ServerAPIKey == "" {
		log.Warn("SERVER_API_KEY is not set, keyed endpoints only check the host")
	}

	server := &http.Server{
		Addr:    cfg.ServerHost,
		Handler: routes.SetupRouter(cfg, database, log),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		log.Info("Server is running", zap.String("host", cfg.ServerHost))
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("Error starting server", zap.String("host", cfg.ServerHost), zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("Shutting down server")
	return server.Shutdown(shutdownCtx)
}
