package response

import (
	"encoding/json"
	"testing"
	"time"

	"oficina_mecanica/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.Payment{
		ID:                 "pay-1",
		WorkOrderID:        "wo-1",
		Amount:             decimal.RequireFromString("159.8"),
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: raw,
		ProviderPayload:    payload,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.WorkOrderID != "wo-1" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != "159.80" {
		t.Fatalf("expected amount 159.80, got %s", res.Amount)
	}
	if !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}
