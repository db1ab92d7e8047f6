package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The payment use case sends the provider request built from a completed work order
// and keeps the provider response for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
