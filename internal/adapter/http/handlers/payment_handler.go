package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "techassist/internal/adapter/http/dto/request"
	response "techassist/internal/adapter/http/dto/response"
	"techassist/internal/usecase"
	"techassist/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles invoice payments against submitted estimates.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment charges the estimate total (subtotal plus tax) through the
// payment gateway and records the outcome. The amount is computed
// server-side; any amount in the payload is ignored.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	estimateID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	gatewayPayload, err := readGatewayPayload(c)
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.ChargeEstimate(c.Request.Context(), estimateID, gatewayPayload)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	estimateID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payments, err := h.usecase.ListByEstimate(c.Request.Context(), estimateID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// readGatewayPayload accepts either a bare gateway payload object, an
// envelope {"gateway_payload": {...}}, or an empty body (mock-friendly).
func readGatewayPayload(c *gin.Context) (json.RawMessage, error) {
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

	var envelope request.PaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.GatewayPayload) > 0 {
		if strings.TrimSpace(string(envelope.GatewayPayload)) != "null" {
			return envelope.GatewayPayload, nil
		}
	}
	return raw, nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotPayable):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_PAYABLE", "Estimate must be submitted before payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPaymentGateway), errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment processing failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
