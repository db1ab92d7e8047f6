package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type httpEnv struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
}

type httpServer struct {
	raw httpEnv
}

func NewHTTPConfig() (*httpServer, error) {
	var raw httpEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.Port <= 0 || raw.Port > 65535 {
		return nil, fmt.Errorf("HTTP_PORT out of range: %d", raw.Port)
	}
	return &httpServer{raw: raw}, nil
}

func (cfg *httpServer) Host() string { return cfg.raw.Host }
func (cfg *httpServer) Port() int    { return cfg.raw.Port }
func (cfg *httpServer) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Host(), cfg.Port())
}

func (cfg *httpServer) ReadTimeout() time.Duration     { return cfg.raw.ReadTimeout }
func (cfg *httpServer) ShutdownTimeout() time.Duration { return cfg.raw.ShutdownTimeout }
func (cfg *httpServer) GinMode() string                { return cfg.raw.GinMode }
