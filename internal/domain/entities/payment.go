package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment settles the final value of a completed work order.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI (work_order_id-index): work_order_id
//
// ProviderPayloadRaw keeps the provider response body for audit; ProviderPayload is
// the parsed form used for lookups and debugging.
type Payment struct {
	ID          string          `json:"id"`
	WorkOrderID string          `json:"work_order_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Status      PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
