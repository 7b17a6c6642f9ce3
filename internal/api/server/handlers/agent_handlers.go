package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/advisorkit/relay/internal/api/server/client"
	"github.com/advisorkit/relay/internal/format"
	"github.com/advisorkit/relay/internal/logger"
)

// fallbackReply is returned when the backend produced events with no text at
// all; the relay never answers with an empty string.
const fallbackReply = "I received your message but couldn't generate a response. Please try again."

func (h *Handler) aggregateChat(w http.ResponseWriter, r *http.Request, chatReq client.ChatRequest) {
	localLogger := logger.NewLogger("agent handler")

	ctx, cancel := context.WithTimeout(r.Context(), client.RequestTimeout)
	defer cancel()

	session, err := h.backendClient.CreateSession(ctx)
	if err != nil {
		writeBackendError(w, localLogger, err)
		return
	}

	runReq := client.NewRunRequest(session.ID, chatReq.Message, false)
	reply, err := h.backendClient.Run(ctx, runReq)
	if err != nil {
		writeBackendError(w, localLogger, err)
		return
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		localLogger.Warn("Backend returned no text for session ", session.ID)
		writeJSON(w, client.ChatResponse{Reply: fallbackReply})
		return
	}
	writeJSON(w, client.ChatResponse{Reply: format.Reply(reply)})
}

func (h *Handler) streamChat(w http.ResponseWriter, r *http.Request, chatReq client.ChatRequest) {
	localLogger := logger.NewLogger("agent stream handler")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// The done frame is the consumer's only signal to stop reading; it is
	// sent last no matter how the stream went.
	defer func() {
		writeFrame(w, client.StreamDone{Done: true})
		flusher.Flush()
	}()

	ctx, cancel := context.WithTimeout(r.Context(), client.RequestTimeout)
	defer cancel()

	session, err := h.backendClient.CreateSession(ctx)
	if err != nil {
		localLogger.Error("Session creation failed: ", err)
		writeFrame(w, client.StreamError{Error: streamErrorMessage(err)})
		return
	}

	runReq := client.NewRunRequest(session.ID, chatReq.Message, true)
	err = h.backendClient.RunStream(ctx, runReq, func(token string) error {
		if err := writeFrame(w, client.StreamToken{Token: token}); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		localLogger.Error("Streaming failed: ", err)
		writeFrame(w, client.StreamError{Error: streamErrorMessage(err)})
	}
}

// writeBackendError maps the failure taxonomy onto the non-streaming HTTP
// surface. Timeouts are distinguishable from generic backend failures.
func writeBackendError(w http.ResponseWriter, localLogger *logger.Logger, err error) {
	var sessionErr *client.SessionError
	var statusErr *client.StatusError

	switch {
	case client.IsTimeout(err):
		localLogger.Error("Backend call timed out: ", err)
		http.Error(w, "Request timeout - the AI is processing your request", http.StatusGatewayTimeout)
	case errors.As(err, &sessionErr):
		localLogger.Error("Session creation failed: ", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
	case errors.As(err, &statusErr):
		localLogger.Error("Backend returned error status: ", err)
		http.Error(w, fmt.Sprintf("Backend error: %d", statusErr.Status), http.StatusInternalServerError)
	default:
		localLogger.Error("Proxy error: ", err)
		http.Error(w, "Proxy error: "+err.Error(), http.StatusInternalServerError)
	}
}

// streamErrorMessage is the in-band counterpart of writeBackendError: once
// streaming has started, failures ride inside the stream instead of the
// status line.
func streamErrorMessage(err error) string {
	var sessionErr *client.SessionError
	var statusErr *client.StatusError

	switch {
	case client.IsTimeout(err):
		return "Request timeout - the AI is processing your request"
	case errors.As(err, &sessionErr):
		return "Failed to create session"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Backend error: %d", statusErr.Status)
	default:
		return "Streaming error: " + err.Error()
	}
}

func writeFrame(w io.Writer, frame interface{}) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}
