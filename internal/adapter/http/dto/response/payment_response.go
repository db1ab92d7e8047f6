package response

import (
	"time"

	"oficina_mecanica/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	Amount      string    `json:"amount" example:"159.80"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		WorkOrderID:  p.WorkOrderID,
		Amount:       money(p.Amount),
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}
