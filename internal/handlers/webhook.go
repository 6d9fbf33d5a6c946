package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/messages"
	"github.com/Tusharxhub/GitHubWrapped/internal/utils"
	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

const (
	eventPaymentSucceeded = "payment.succeeded"
	maxWebhookBodyBytes   = 1 << 20
)

type webhookAck struct {
	Received bool                  `json:"received"`
	Status   domain.PaymentOutcome `json:"status"`
}

func (h Handler) WebhookStatus(w http.ResponseWriter, r *http.Request) {
	code, res := h.response(http.StatusOK, ResponseFormat{Message: messages.WebhookActive})
	utils.SendResponse(w, code, res)
}

// PaymentWebhook ingests payment events. Only successful payments reach the supporter
// ledger, everything else is acknowledged so the provider stops retrying.
func (h Handler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	logr := h.logger.With(zap.String("method", "PaymentWebhook"))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
	if err != nil {
		code, res := h.response(http.StatusBadRequest, ResponseFormat{Message: messages.InvalidRequest})
		utils.SendResponse(w, code, res)
		return
	}

	if h.webhookVerifier != nil {
		if err := h.webhookVerifier.Verify(body, r.Header); err != nil {
			logr.Warn("webhook verification error", zap.Error(err))
			code, res := h.response(http.StatusUnauthorized, ResponseFormat{Message: messages.WebhookVerificationFailed})
			utils.SendResponse(w, code, res)
			return
		}
	} else {
		logr.Warn("webhook secret not configured, accepting unverified payload")
	}

	var event webhookPayload
	if err := sonic.Unmarshal(body, &event); err != nil {
		logr.Warn("malformed webhook payload", zap.Error(err))
		code, res := h.response(http.StatusBadRequest, ResponseFormat{Message: messages.InvalidRequest})
		utils.SendResponse(w, code, res)
		return
	}
	if event.Type != eventPaymentSucceeded {
		logr.Info("ignoring event type", zap.String("type", event.Type))
		h.acknowledge(w, domain.PaymentEventIgnored)
		return
	}

	if err := event.Validate(); err != nil {
		code, res := h.response(http.StatusBadRequest, ResponseFormat{Error: []string{err.Error()}, Message: messages.InvalidRequest})
		utils.SendResponse(w, code, res)
		return
	}

	outcome, err := h.supporterService.RecordPayment(r.Context(), event.toPayment())
	if err != nil {
		if errors.Is(err, apperror.ErrValidation) {
			code, res := h.response(http.StatusBadRequest, ResponseFormat{Error: []string{err.Error()}, Message: messages.InvalidRequest})
			utils.SendResponse(w, code, res)
			return
		}
		logr.Error("error in RecordPayment", zap.String("payment_id", event.Data.PaymentID), zap.Error(err))
		code, res := h.response(http.StatusInternalServerError, ResponseFormat{Message: messages.WebhookProcessingFailed})
		utils.SendResponse(w, code, res)
		return
	}

	h.acknowledge(w, outcome)
}

func (h Handler) acknowledge(w http.ResponseWriter, outcome domain.PaymentOutcome) {
	code, res := h.response(http.StatusOK, ResponseFormat{Data: webhookAck{Received: true, Status: outcome}})
	utils.SendResponse(w, code, res)
}

func (e webhookPayload) toPayment() domain.Payment {
	p := domain.Payment{
		PaymentID:        e.Data.PaymentID,
		AmountMinorUnits: e.Data.TotalAmount,
		Currency:         e.Data.Currency,
		ProductIDs:       make([]string, 0, len(e.Data.ProductCart)),
	}
	if e.Data.Customer != nil {
		p.Name = e.Data.Customer.Name
		p.Email = e.Data.Customer.Email
	}
	for _, item := range e.Data.ProductCart {
		p.ProductIDs = append(p.ProductIDs, item.ProductID)
	}
	return p
}
