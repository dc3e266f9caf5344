// Package webhook is the inbound protocol boundary: it authenticates GitHub
// webhook deliveries against the shared secret and hands authenticated events
// to the assigner.
package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ashphy/reviewer-auto-assign/internal/assigner"
	"github.com/ashphy/reviewer-auto-assign/internal/models"
)

// EventProcessor routes an authenticated event. Implemented by
// assigner.Service.
type EventProcessor interface {
	Route(ctx context.Context, eventType string, payload models.WebhookPayload) assigner.Outcome
}

type Handler struct {
	secret    string
	processor EventProcessor
	log       *zap.Logger
}

func NewHandler(secret string, processor EventProcessor, log *zap.Logger) *Handler {
	return &Handler{
		secret:    secret,
		processor: processor,
		log:       log,
	}
}

// Handle serves POST /. Authentication failure is the only condition that
// changes the response; every authenticated path answers 200 "ok", even when
// downstream assignment fails.
func (h *Handler) Handle(c echo.Context) error {
	req := c.Request()

	// A torn read cannot be authenticated; the signature check below runs
	// against whatever bytes arrived and rejects the request. Only
	// authentication ever changes the response status.
	body, _ := io.ReadAll(req.Body)

	eventType := req.Header.Get("X-GitHub-Event")
	delivery := req.Header.Get("X-GitHub-Delivery")

	sig := req.Header.Get("X-Hub-Signature-256")
	if sig == "" {
		sig = req.Header.Get("X-Hub-Signature")
	}

	if !VerifySignature(body, sig, h.secret) {
		// Neither the secret nor any digest is logged.
		h.log.Warn("webhook signature verification failed",
			zap.String("event", eventType),
			zap.String("delivery", delivery),
		)
		return c.String(http.StatusUnauthorized, "invalid signature")
	}

	// A body that is not valid JSON still gets routed: the zero payload
	// takes the ignored path instead of failing the request.
	var payload models.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		payload = models.WebhookPayload{}
	}

	outcome := h.processor.Route(req.Context(), eventType, payload)

	h.log.Info("webhook processed",
		zap.String("event", eventType),
		zap.String("action", payload.Action),
		zap.String("delivery", delivery),
		zap.String("outcome", string(outcome)),
	)

	return c.String(http.StatusOK, "ok")
}
