package envconfig

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

type paymentsEnv struct {
	Mock            string `env:"PAYMENT_GATEWAY_MOCK"`
	LegacyMock      string `env:"MERCADOPAGO_MOCK"`
	AccessToken     string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	TestPayerEmail  string `env:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	TestPayerUserID string `env:"MERCADOPAGO_TEST_PAYER_USER_ID"`
}

type payments struct {
	raw paymentsEnv
}

func NewPaymentsConfig() (*payments, error) {
	var raw paymentsEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &payments{raw: raw}, nil
}

func (cfg *payments) MockMode() bool {
	return isTruthy(cfg.raw.Mock) || isTruthy(cfg.raw.LegacyMock)
}

func (cfg *payments) AccessToken() string     { return strings.TrimSpace(cfg.raw.AccessToken) }
func (cfg *payments) TestPayerEmail() string  { return strings.TrimSpace(cfg.raw.TestPayerEmail) }
func (cfg *payments) TestPayerUserID() string { return strings.TrimSpace(cfg.raw.TestPayerUserID) }

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
