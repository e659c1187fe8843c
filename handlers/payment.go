package handlers

import (
	"context"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentRecorder records a payment against a booking.
type PaymentRecorder interface {
	Record(ctx context.Context, bookingID string, payment models.Payment) (*models.PaymentReceipt, error)
}

type PaymentHandler struct {
	Recorder PaymentRecorder
	Gateway  payment.Gateway
}

func NewPaymentHandler(recorder PaymentRecorder, gateway payment.Gateway) *PaymentHandler {
	return &PaymentHandler{Recorder: recorder, Gateway: gateway}
}

// RecordPayment handles PATCH /booking/:id. A payment whose booking update
// was queued for retry is answered with 202.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		respondBindError(c, "record payment", err)
		return
	}
	receipt, err := h.Recorder.Record(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		respondError(c, "record payment", err)
		return
	}
	if !receipt.Settled {
		getLogger(c).Warn("Payment accepted, settlement pending", zap.String("paymentID", receipt.PaymentID))
		c.JSON(http.StatusAccepted, receipt)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "create payment intent", err)
		return
	}
	secret, err := h.Gateway.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		respondError(c, "create payment intent", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
