package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"travel-gateway/helper"
	"travel-gateway/pubsub"
	"travel-gateway/services"

	"github.com/gin-gonic/gin"
)

const keepAliveInterval = 25 * time.Second

type NotificationHandler struct {
	notifier services.Notifier
	Helper   *helper.HTTPHelper
}

func NewNotificationHandler(notifier services.Notifier, h *helper.HTTPHelper) *NotificationHandler {
	return &NotificationHandler{notifier: notifier, Helper: h}
}

// Stream relays notification events as server-sent events until the client
// disconnects or the broker closes.
func (h *NotificationHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	events, err := h.notifier.Subscribe(ctx)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Header("Content-Type", "text/event-stream")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	slog.Debug("notification stream opened", "client_ip", c.ClientIP())
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case raw, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(pubsub.TopicNotification, string(raw))
			return true
		case <-ticker.C:
			c.SSEvent("ping", "")
			return true
		}
	})
	slog.Debug("notification stream closed", "client_ip", c.ClientIP())
}
