// Command aerosys serves the bookings administration API.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aerosys-mx/bookings-admin/internal/config"
	"github.com/aerosys-mx/bookings-admin/internal/database"
	"github.com/aerosys-mx/bookings-admin/internal/export"
	"github.com/aerosys-mx/bookings-admin/internal/filestore"
	"github.com/aerosys-mx/bookings-admin/internal/filestore/minio"
	"github.com/aerosys-mx/bookings-admin/internal/logger"
	"github.com/aerosys-mx/bookings-admin/internal/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootstrap := logger.New(nil)
		bootstrap.Fatalf("invalid configuration: %v", err)
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pools, err := database.NewPools(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pools.Close()
	log.Info("database pools ready")

	store := database.NewExecutor(pools, log)

	var archiver *export.Archiver
	if cfg.Archive.Enabled {
		objects, err := minio.New(ctx, &filestore.Config{
			Provider:  filestore.ProviderMinIO,
			Endpoint:  cfg.Archive.Endpoint,
			AccessKey: cfg.Archive.AccessKey,
			SecretKey: cfg.Archive.SecretKey,
			UseSSL:    cfg.Archive.UseSSL,
		})
		if err != nil {
			log.Fatalf("object storage connection failed: %v", err)
		}
		archiver = export.New(objects, cfg.Archive.Bucket, log)
		log.With().Str("bucket", cfg.Archive.Bucket).Logger().Info("report archive enabled")
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(store, log, archiver).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.ErrorWith("shutdown failed", err, nil)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}
}
