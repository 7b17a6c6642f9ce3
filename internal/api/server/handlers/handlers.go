package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/advisorkit/relay/internal/api/server/client"
	"github.com/advisorkit/relay/internal/logger"
)

type Handler struct {
	backendClient client.BackendClientInterface
}

// NewHandler wires the backend client into the HTTP surface. The client is
// constructed once at startup and injected here; handlers hold no other
// state, so concurrent requests are fully independent.
func NewHandler(backendClient client.BackendClientInterface) *Handler {
	return &Handler{backendClient: backendClient}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "healthy", "service": "Agent Relay"})
}

func (h *Handler) APIHealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok", "relay": "agent_relay"})
}

// AgentHandler accepts a chat message and relays it to the backend, either
// aggregating the reply or re-streaming it frame by frame.
func (h *Handler) AgentHandler(w http.ResponseWriter, r *http.Request) {
	localLogger := logger.NewLogger("agent handler")

	var chatReq client.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&chatReq); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(chatReq.Message) == "" {
		localLogger.Warn("Rejected request with empty message")
		http.Error(w, "Message must not be empty", http.StatusBadRequest)
		return
	}

	if chatReq.Streaming {
		h.streamChat(w, r, chatReq)
		return
	}
	h.aggregateChat(w, r, chatReq)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response: "+err.Error(), http.StatusInternalServerError)
	}
}
