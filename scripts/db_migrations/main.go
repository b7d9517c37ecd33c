package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/bank-demo/internal/config"
	"github.com/carson-networks/bank-demo/internal/storage"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("db_migrations")
	}
}

func run() error {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return err
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer store.Close()

	return storage.RunMigrations(store.DB, env.MigrationsPath)
}
