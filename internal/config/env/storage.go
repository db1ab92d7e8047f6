package envconfig

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

type storageEnv struct {
	Driver           string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`
	AutoCreateTables bool   `env:"DYNAMODB_AUTO_CREATE_TABLES" envDefault:"false"`
}

type storage struct {
	raw storageEnv
}

func NewStorageConfig() (*storage, error) {
	var raw storageEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	raw.Driver = strings.ToLower(strings.TrimSpace(raw.Driver))
	switch raw.Driver {
	case DriverDynamoDB, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", raw.Driver)
	}
	return &storage{raw: raw}, nil
}

func (cfg *storage) Driver() string         { return cfg.raw.Driver }
func (cfg *storage) UseMemory() bool        { return cfg.raw.Driver == DriverMemory }
func (cfg *storage) AutoCreateTables() bool { return cfg.raw.AutoCreateTables }
