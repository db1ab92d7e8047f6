// Package config loads the service configuration from the environment.
// A .env file is read first when APP_ENV=local.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "oficina_mecanica/internal/config/env"
)

var cfg *config

type config struct {
	http     HTTP
	logger   Logger
	storage  Storage
	dynamoDB DynamoDB
	payments Payments
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	httpCfg, err := envconfig.NewHTTPConfig()
	if err != nil {
		return fmt.Errorf("%s HTTP: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	storageCfg, err := envconfig.NewStorageConfig()
	if err != nil {
		return fmt.Errorf("%s Storage: %w", op, err)
	}

	dynamoCfg, err := envconfig.NewDynamoDBConfig()
	if err != nil {
		return fmt.Errorf("%s DynamoDB: %w", op, err)
	}

	paymentsCfg, err := envconfig.NewPaymentsConfig()
	if err != nil {
		return fmt.Errorf("%s Payments: %w", op, err)
	}

	cfg = &config{
		http:     httpCfg,
		logger:   loggerCfg,
		storage:  storageCfg,
		dynamoDB: dynamoCfg,
		payments: paymentsCfg,
	}

	return nil
}

func C() *config { return cfg }

func (c *config) HTTP() HTTP         { return c.http }
func (c *config) Logger() Logger     { return c.logger }
func (c *config) Storage() Storage   { return c.storage }
func (c *config) DynamoDB() DynamoDB { return c.dynamoDB }
func (c *config) Payments() Payments { return c.payments }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
