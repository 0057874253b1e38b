package handlers

import (
	"fmt"

	"github.com/dimitrije/intervue-api/internal/middleware"
	"github.com/dimitrije/intervue-api/internal/sse"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

type SSEHandler struct {
	hub    SSEHubInterface
	logger *zap.Logger
}

func NewSSEHandler(hub SSEHubInterface, logger *zap.Logger) *SSEHandler {
	return &SSEHandler{hub: hub, logger: logger}
}

// Connect streams comment events for one interview. Comments are publicly
// readable, so the stream is too. Mount behind OptionalAuth to record the
// caller on the client.
func (h *SSEHandler) Connect(c *drift.Context) {
	interviewID := c.Param("interviewId")
	if interviewID == "" {
		c.BadRequest("interview id is required")
		return
	}

	var subject string
	if caller := middleware.GetCaller(c); caller.Present() {
		subject = caller.Subject
	}

	sseCtx := c.SSE()

	clientID := uuid.New().String()
	client := &sse.Client{
		ID:         clientID,
		Subject:    subject,
		Interviews: map[string]bool{interviewID: true},
		Send:       make(chan []byte, 256),
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	h.logger.Debug("stream opened",
		zap.String("client_id", clientID),
		zap.String("interview_id", interviewID),
		zap.String("subject", subject),
	)

	if err := sseCtx.SendJSON(map[string]string{
		"type":      "connected",
		"client_id": clientID,
	}, "system", ""); err != nil {
		return
	}

	done := c.Request.Context().Done()
	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := sseCtx.Send(string(msg), "message", ""); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *SSEHandler) Subscribe(c *drift.Context) {
	if !middleware.GetCaller(c).Present() {
		c.Unauthorized("not authenticated")
		return
	}

	clientID := c.Param("clientId")
	interviewID := c.Param("interviewId")
	if clientID == "" || interviewID == "" {
		c.BadRequest("client_id and interview_id are required")
		return
	}

	if !h.hub.SubscribeToInterview(clientID, interviewID) {
		c.NotFound("client not connected")
		return
	}

	_ = c.JSON(200, map[string]string{
		"message": fmt.Sprintf("subscribed to interview %s", interviewID),
	})
}

func (h *SSEHandler) Unsubscribe(c *drift.Context) {
	if !middleware.GetCaller(c).Present() {
		c.Unauthorized("not authenticated")
		return
	}

	clientID := c.Param("clientId")
	interviewID := c.Param("interviewId")
	if clientID == "" || interviewID == "" {
		c.BadRequest("client_id and interview_id are required")
		return
	}

	h.hub.UnsubscribeFromInterview(clientID, interviewID)

	_ = c.JSON(200, map[string]string{
		"message": fmt.Sprintf("unsubscribed from interview %s", interviewID),
	})
}
