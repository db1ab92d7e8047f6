package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	logger   *zap.Logger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway returns a gateway backed by the Mercado Pago SDK, or a
// local fake that approves every payment when mockMode is set.
func NewMercadoPagoGateway(accessToken string, mockMode bool, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "payment_gateway"))

	if mockMode {
		logger.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, logger: logger, now: time.Now}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	logger.Info("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: logger, now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.logger.Debug("create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Warn("sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.logger.Info("create success",
		zap.Any("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
	)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockCreate echoes the request back as an approved, accredited payment.
func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	g.logger.Info("mock create success", zap.String("provider_payment_id", id))
	return id, "approved", b, nil
}
