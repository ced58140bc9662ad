package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/middleware"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/response"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/sse"
)

const streamKeepalive = 30 * time.Second

// Subscriber is the part of the hub the stream handler needs.
type Subscriber interface {
	Subscribe(userID string) (<-chan sse.Event, func())
}

type EventHandler interface {
	StreamToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	jwtService jwt.Service
	hub        Subscriber
}

func NewEventHandler(jwtService jwt.Service, hub Subscriber) EventHandler {
	return &eventHandlerImpl{jwtService: jwtService, hub: hub}
}

type StreamTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// StreamToken issues a short-lived token for opening the event stream.
func (h *eventHandlerImpl) StreamToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	token, expiresIn, err := h.jwtService.GenerateStreamToken(userID)
	if err != nil {
		slog.Error("GenerateStreamToken error", "error", err)
		response.InternalServerError(w, "Failed to generate stream token")
		return
	}

	response.Success(w, StreamTokenResponse{Token: token, ExpiresIn: expiresIn})
}

// Stream pushes table invalidation events until the client disconnects.
func (h *eventHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		response.Unauthorized(w, "Missing token")
		return
	}

	userID, err := h.jwtService.ValidateStreamToken(tokenStr)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(userID)
	defer cleanup()

	fmt.Fprint(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(streamKeepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: invalidate\ndata: %s\n\n", data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
