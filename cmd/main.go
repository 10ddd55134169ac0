package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/0xElectro/tournament-manager/config"
	"github.com/0xElectro/tournament-manager/console"
	"github.com/0xElectro/tournament-manager/db"
	"github.com/0xElectro/tournament-manager/handlers"
	"github.com/0xElectro/tournament-manager/live"
	"github.com/0xElectro/tournament-manager/repositories"
	"github.com/0xElectro/tournament-manager/routes"
	"github.com/0xElectro/tournament-manager/services"
	"github.com/0xElectro/tournament-manager/storage"
)

func main() {
	// Logs go to stderr so the console menus own stdout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.String("store", cfg.StoreDriver),
		slog.Int("viewer_port", cfg.ViewerPort))

	ctx := context.Background()

	var (
		repo     repositories.TournamentRepository
		fileRepo *repositories.FileTournamentRepository
	)
	switch cfg.StoreDriver {
	case config.StoreDriverFile:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			logger.Error("failed to create data directory", slog.Any("error", err))
			os.Exit(1)
		}
		fileRepo = repositories.NewFileTournamentRepository(cfg.DataDir)
		repo = fileRepo
	case config.StoreDriverPostgres:
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			}
		}()

		pgRepo := repositories.NewPostgresTournamentRepository(dbConn)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			logger.Error("failed to ensure database schema", slog.Any("error", err))
			os.Exit(1)
		}
		repo = pgRepo
		logger.Info("database connection established")
	}

	state := services.NewTournamentService(repo, logger)
	if err := state.LoadAll(ctx); err != nil {
		logger.Error("failed to load tournaments", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("tournaments loaded")

	var hub *live.Hub
	if cfg.ViewerPort > 0 {
		hub = live.NewHub(logger)
		go hub.Run()
	}

	rosterService := services.NewRosterService(state)
	matchService := services.NewMatchService(state, hub)
	standingsService := services.NewStandingsService(state)

	var backupService *services.BackupService
	if fileRepo != nil && cfg.Backup.Enabled() {
		uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.Backup.AccountID,
			AccessKeyID:     cfg.Backup.AccessKeyID,
			SecretAccessKey: cfg.Backup.SecretAccessKey,
			BucketName:      cfg.Backup.BucketName,
		})
		if err != nil {
			logger.Error("failed to initialize backup uploader", slog.Any("error", err))
			os.Exit(1)
		}
		backupService = services.NewBackupService(fileRepo, uploader, logger)
		logger.Info("backup uploader initialized", slog.String("bucket", cfg.Backup.BucketName))
	}

	var server *http.Server
	serverErrors := make(chan error, 1)
	if cfg.ViewerPort > 0 {
		viewerHandler := handlers.NewViewerHandler(rosterService, matchService, standingsService)
		wsHandler := handlers.NewWebSocketHandler(hub, logger)

		server = &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.ViewerPort),
			Handler:      routes.SetupRoutes(viewerHandler, wsHandler),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		}
		go func() {
			logger.Info("starting viewer server", slog.String("address", server.Addr))
			serverErrors <- server.ListenAndServe()
		}()
	}

	ui := console.NewConsole(state, rosterService, matchService, standingsService,
		os.Stdin, os.Stdout, cfg.AdminPasscodeHash, logger)

	consoleDone := make(chan struct{})
	go func() {
		ui.Run(ctx)
		close(consoleDone)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-consoleDone:
		logger.Info("console session ended")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("viewer server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := state.SaveAll(shutdownCtx); err != nil {
		logger.Error("failed to save tournaments", slog.Any("error", err))
	} else {
		logger.Info("tournaments saved")
		if backupService != nil {
			if err := backupService.BackupAll(shutdownCtx); err != nil {
				logger.Error("backup failed", slog.Any("error", err))
			}
		}
	}

	if server != nil {
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		} else {
			logger.Info("viewer server shutdown complete")
		}
	}

	logger.Info("application exited")
}
