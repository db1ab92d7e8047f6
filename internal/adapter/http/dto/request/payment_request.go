package request

import "encoding/json"

// PaymentCreateRequest is the payload for paying a completed work order.
//
// `mp_payload` is forwarded to Mercado Pago as-is to support its varying schemas.
// The amount always comes from the work order's final value.
type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
