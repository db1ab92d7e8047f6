package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/infrastructure/logging"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/pkg"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// PaymentHandler charges completed work orders through Mercado Pago.
type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	mockMode bool
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, mockMode bool) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode}
}

// PayWorkOrder godoc
// @Summary  Pay a completed work order
// @Description The body is the Mercado Pago payment payload, bare or wrapped in "mp_payload". The amount is always the order's final value.
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    id   path string true "work order id"
// @Param    body body request.PaymentCreateRequest false "Mercado Pago payload"
// @Success  200 {object} response.PaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /v1/work-orders/{id}/payments [post]
func (h *PaymentHandler) PayWorkOrder(c *gin.Context) {
	workOrderID := c.Param("id")
	logger := logging.FromContext(c.Request.Context()).With(zap.String("work_order_id", workOrderID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			logger.Info("invalid payment payload", zap.Error(err))
			writeError(c, errInvalidRequest)
			return
		}
		logger.Debug("invalid payload in mock mode, using an empty one", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.Pay(c.Request.Context(), workOrderID, mpPayload)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	logger.Info("payment registered", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	c.JSON(http.StatusOK, response.FromPayment(created))
}

// ListWorkOrderPayments godoc
// @Summary  List the payments of a work order
// @Tags     payments
// @Produce  json
// @Param    id path string true "work order id"
// @Success  200 {array} response.PaymentResponse
// @Router   /v1/work-orders/{id}/payments [get]
func (h *PaymentHandler) ListWorkOrderPayments(c *gin.Context) {
	payments, err := h.usecase.ListByWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, lo.Map(payments, func(p entities.Payment, _ int) response.PaymentResponse {
		return response.FromPayment(p)
	}))
}

// GetLatestPayment godoc
// @Summary  Get the latest payment of a work order
// @Tags     payments
// @Produce  json
// @Param    id path string true "work order id"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /v1/work-orders/{id}/payments/latest [get]
func (h *PaymentHandler) GetLatestPayment(c *gin.Context) {
	latest, err := h.usecase.LatestByWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(latest))
}

// GetPayment godoc
// @Summary  Get a payment
// @Tags     payments
// @Produce  json
// @Param    id path string true "payment id"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /v1/payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// readMPPayload accepts the provider payload bare or inside an "mp_payload"
// envelope. An empty body becomes {}.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Payment provider rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainError("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	default:
		return mapDomainError(err)
	}
}
