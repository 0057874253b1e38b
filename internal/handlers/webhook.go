package handlers

import (
	"errors"
	"io"

	"github.com/dimitrije/intervue-api/internal/metrics"
	"github.com/dimitrije/intervue-api/internal/webhook"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

// Deliveries are small JSON documents; anything larger fails verification.
const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	verifier   WebhookVerifier
	dispatcher EventDispatcher
	metrics    metrics.Recorder
	logger     *zap.Logger
}

func NewWebhookHandler(verifier WebhookVerifier, dispatcher EventDispatcher, recorder metrics.Recorder, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		verifier:   verifier,
		dispatcher: dispatcher,
		metrics:    recorder,
		logger:     logger,
	}
}

// HandleClerk must be mounted outside the body parser; the signature covers
// the exact bytes on the wire.
func (h *WebhookHandler) HandleClerk(c *drift.Context) {
	log := h.logger.With(zap.String("svix_id", c.Request.Header.Get(webhook.HeaderID)))

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		log.Warn("failed to read webhook body", zap.Error(err))
		c.BadRequest("failed to read body")
		return
	}

	env, err := h.verifier.Verify(body, c.Request.Header)
	if err != nil {
		h.reject(c, log, err)
		return
	}

	evt, err := webhook.Decode(env)
	if err != nil {
		h.reject(c, log, err)
		return
	}

	if err := h.dispatcher.Dispatch(c.Request.Context(), evt); err != nil {
		h.reject(c, log, err)
		return
	}

	switch evt.(type) {
	case webhook.Unknown:
		h.metrics.RecordWebhook(metrics.OutcomeIgnored)
		log.Info("webhook event ignored", zap.String("type", evt.EventType()))
	default:
		h.metrics.RecordWebhook(metrics.OutcomeProcessed)
		h.metrics.RecordUserSynced()
		log.Info("webhook event processed", zap.String("type", evt.EventType()))
	}

	_ = c.JSON(200, map[string]string{"message": "ok"})
}

func (h *WebhookHandler) reject(c *drift.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, webhook.ErrConfiguration):
		h.metrics.RecordWebhook(metrics.OutcomeMisconfigured)
		log.Error("webhook secret not configured", zap.Error(err))
		c.InternalServerError("webhook not configured")
	case errors.Is(err, webhook.ErrMissingHeaders):
		h.metrics.RecordWebhook(metrics.OutcomeMissingHeaders)
		log.Warn("webhook rejected", zap.Error(err))
		c.BadRequest("missing signature headers")
	case errors.Is(err, webhook.ErrInvalidSignature):
		h.metrics.RecordWebhook(metrics.OutcomeInvalidSig)
		log.Warn("webhook rejected", zap.Error(err))
		c.BadRequest("invalid signature")
	case errors.Is(err, webhook.ErrMalformedPayload):
		h.metrics.RecordWebhook(metrics.OutcomeMalformed)
		log.Warn("webhook rejected", zap.Error(err))
		c.BadRequest("malformed payload")
	default:
		h.metrics.RecordWebhook(metrics.OutcomeSyncFailed)
		log.Error("webhook processing failed", zap.Error(err))
		c.InternalServerError("failed to process event")
	}
}
