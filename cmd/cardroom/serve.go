package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"cardroom/internal/config"
	"cardroom/internal/server"
	"cardroom/internal/store"
)

// ServeCmd runs the websocket cardroom server.
type ServeCmd struct {
	Config string `kong:"short='c',default='cardroom.hcl',help='Path to HCL configuration file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var db store.Store = store.Nop{}
	if cfg.Server.DataDir != "" {
		file, err := store.NewFile(cfg.Server.DataDir)
		if err != nil {
			return err
		}
		defer file.Close()
		db = file
	}

	srv := server.NewServer(cfg, db, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var group errgroup.Group
	group.Go(srv.Start)
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})
	return group.Wait()
}
