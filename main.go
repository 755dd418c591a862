package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/20Magus03/back-express/internal/config"
	"github.com/20Magus03/back-express/internal/db"
	"github.com/20Magus03/back-express/internal/logger"
	"github.com/20Magus03/back-express/internal/router"
	"github.com/20Magus03/back-express/internal/store"
	"github.com/20Magus03/back-express/internal/supabase"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n\n%s\n", err, config.Usage())
		os.Exit(2)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "back-express")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	exitCode := 0
	// Runs last so the deferred cleanup below happens first.
	defer func() { os.Exit(exitCode) }()
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rooms, closeRooms, err := openRooms(ctx, cfg, log)
	if err != nil {
		log.Fatal("rooms store", zap.String("backend", cfg.RoomsBackend), zap.Error(err))
	}
	defer closeRooms()

	gin.SetMode(gin.ReleaseMode)
	r := router.New(rooms, store.NewMemoryReservations(), log)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	serveErr := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("rooms_backend", cfg.RoomsBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		log.Error("http server", zap.Error(err))
		exitCode = 1
		return
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, done := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

// openRooms returns the configured room store and a func releasing it.
func openRooms(ctx context.Context, cfg config.Config, log *zap.Logger) (store.RoomStore, func(), error) {
	switch cfg.RoomsBackend {
	case config.BackendMySQL:
		d, err := db.Open(ctx, cfg.DSN(), cfg.DB.ConnectTimeout, log.Named("mysql"))
		if err != nil {
			return nil, nil, err
		}
		return d, func() { _ = d.Close() }, nil
	case config.BackendMemory:
		log.Warn("rooms are kept in memory and lost on restart")
		return store.NewMemoryRooms(), func() {}, nil
	default:
		c := supabase.New(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Supabase.Timeout, log.Named("supabase"))
		return c, func() {}, nil
	}
}
