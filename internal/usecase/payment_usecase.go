package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/infrastructure/logging"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentID               = entities.NewValidation("payment_id", "required")
	ErrInvalidMPPayload               = entities.NewValidation("payload", "invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions tunes how provider requests are built.
//
// In MockMode the gateway fabricates approved responses, so the payload checks
// that only make sense against Mercado Pago are skipped.
type PaymentOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IPaymentUseCase charges the final value of completed work orders.
type IPaymentUseCase interface {
	Pay(ctx context.Context, workOrderID string, mpPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByWorkOrder(ctx context.Context, workOrderID string) ([]entities.Payment, error)
	LatestByWorkOrder(ctx context.Context, workOrderID string) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo       interfaces.IPaymentRepository
	workOrders interfaces.IWorkOrderRepository
	gateway    interfaces.IPaymentGateway
	opts       PaymentOptions
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, workOrders interfaces.IWorkOrderRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, workOrders: workOrders, gateway: gateway, opts: opts}
}

func (u *PaymentUseCase) Pay(ctx context.Context, workOrderID string, mpPayload json.RawMessage) (entities.Payment, error) {
	logger := logging.FromContext(ctx).With(zap.String("component", "payment"))
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Payment{}, ErrInvalidWorkOrderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			return entities.Payment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	wo, err := u.workOrders.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if wo.ID == "" || !wo.Visible() {
		return entities.Payment{}, entities.NewNotFound("work order", workOrderID)
	}
	if wo.Status != entities.WorkOrderStatusCompleted {
		return entities.Payment{}, entities.ErrOrderNotPayable
	}
	if wo.FinalValue == nil {
		return entities.Payment{}, entities.ErrFinalValueRequired
	}
	amount := *wo.FinalValue

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		if !u.opts.MockMode {
			return entities.Payment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.Payment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			return entities.Payment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = workOrderID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Work order %s", workOrderID)
	}
	// The work order is the source of truth for the amount.
	reqMap["transaction_amount"] = amount.InexactFloat64()
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, err
	}

	logger.Debug("calling payment gateway", zap.String("work_order_id", workOrderID), zap.Int("payload_len", len(payload)))
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		logger.Warn("payment gateway failed", zap.String("work_order_id", workOrderID), zap.Error(err))
		return entities.Payment{}, mapGatewayError(err)
	}
	logger.Info("payment gateway success",
		zap.String("work_order_id", workOrderID),
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		logger.Warn("provider response unmarshal failed", zap.String("work_order_id", workOrderID), zap.Error(err))
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		WorkOrderID:        workOrderID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	return u.repo.Create(ctx, p)
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, entities.NewNotFound("payment", id)
	}
	return p, nil
}

func (u *PaymentUseCase) ListByWorkOrder(ctx context.Context, workOrderID string) ([]entities.Payment, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, ErrInvalidWorkOrderID
	}
	return u.repo.ListByWorkOrderID(ctx, workOrderID)
}

func (u *PaymentUseCase) LatestByWorkOrder(ctx context.Context, workOrderID string) (entities.Payment, error) {
	payments, err := u.ListByWorkOrder(ctx, workOrderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(payments) == 0 {
		return entities.Payment{}, entities.NewNotFound("payment", strings.TrimSpace(workOrderID))
	}
	return lo.MaxBy(payments, func(a, b entities.Payment) bool {
		return a.Date.After(b.Date)
	}), nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; fill the email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.sandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

// normalizeSandboxPayerFromUserID swaps the configured sandbox test user id for
// its email, which is what the sandbox expects.
func (u *PaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}

	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
