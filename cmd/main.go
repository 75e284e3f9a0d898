package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goserg/cricketscore/internal/config"
	"github.com/goserg/cricketscore/internal/logger"
	"github.com/goserg/cricketscore/internal/service"
	"github.com/goserg/cricketscore/internal/storage"
	"github.com/goserg/cricketscore/internal/storage/file"
	"github.com/goserg/cricketscore/internal/storage/mem"
	"github.com/goserg/cricketscore/internal/storage/sqlite"
	"github.com/goserg/cricketscore/internal/web"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML config file")
	flag.Parse()

	cfg, err := config.New(*configPath)
	if err != nil {
		return err
	}
	l, err := logger.New(cfg.Server.LogLevel)
	if err != nil {
		return err
	}

	st, err := newStorage(l, cfg.Storage)
	if err != nil {
		return err
	}
	defer st.Close()

	svc, err := service.New(l, st, cfg.Match)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := svc.Load(ctx); err != nil {
		return err
	}

	server := web.New(l, svc, cfg)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		l.Info("shutting down")
		return server.Shutdown()
	}
}

func newStorage(l *logrus.Logger, cfg config.Storage) (storage.SnapshotStorage, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.New(l, cfg.SqliteFile)
	case config.DriverFile:
		return file.New(l, cfg.SnapshotFile), nil
	case config.DriverMemory:
		l.Warn("memory storage: nothing survives a restart")
		return mem.New(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
