package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-demo/internal/config"
	"github.com/carson-networks/bank-demo/internal/logging"
	"github.com/carson-networks/bank-demo/internal/operator"
	"github.com/carson-networks/bank-demo/internal/service"
	"github.com/carson-networks/bank-demo/internal/storage"
)

// app is everything a command needs once configuration has been loaded.
type app struct {
	config   *config.Config
	logger   *logrus.Logger
	storage  *storage.Storage
	operator *operator.OperatorDelegator
	service  *service.Service
}

func newApp(migrate bool) (*app, error) {
	cfg, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.SetupLoggingWithLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logger.WithError(err).Error("storage.NewStorage")
		return nil, err
	}

	if migrate {
		if err := storage.RunMigrations(store.DB, cfg.MigrationsPath); err != nil {
			logger.WithError(err).Error("storage.RunMigrations")
			_ = store.Close()
			return nil, err
		}
	}

	op := operator.NewOperatorDelegator(store, cfg.OperatorWorkers)
	op.Start()

	return &app{
		config:   cfg,
		logger:   logger,
		storage:  store,
		operator: op,
		service:  service.NewService(store, op, logger),
	}, nil
}

// close drains the operator before releasing the connection pool.
func (a *app) close() {
	a.operator.Stop()
	if err := a.storage.Close(); err != nil {
		a.logger.WithError(err).Error("storage.Close")
	}
}
