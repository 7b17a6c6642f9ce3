package client

const RoleUser = "user"

// ChatRequest is the inbound payload from the browser client.
type ChatRequest struct {
	Message   string `json:"message"`
	Streaming bool   `json:"streaming"`
}

// ChatResponse is the aggregated reply for the non-streaming path.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// StreamToken is one streamed frame of reply text.
type StreamToken struct {
	Token string `json:"token"`
}

// StreamError is an in-band error frame; the stream still terminates
// normally after one is sent.
type StreamError struct {
	Error string `json:"error"`
}

// StreamDone is the terminal frame of every stream, success or failure.
type StreamDone struct {
	Done bool `json:"done"`
}

// Session is the backend-owned conversation context. One is created for
// every relay request and never reused; the backend owns its lifetime.
type Session struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	AppName string `json:"appName"`
}

// RunRequest is the payload for the backend /run and /run_sse endpoints.
type RunRequest struct {
	AppName    string  `json:"appName"`
	UserID     string  `json:"userId"`
	SessionID  string  `json:"sessionId"`
	NewMessage Message `json:"newMessage"`
	Streaming  bool    `json:"streaming"`
}

type Message struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

// NewRunRequest builds the run payload for a session and user message.
func NewRunRequest(sessionID, message string, streaming bool) *RunRequest {
	return &RunRequest{
		AppName:   AppName,
		UserID:    UserID,
		SessionID: sessionID,
		NewMessage: Message{
			Role:  RoleUser,
			Parts: []Part{{Text: message}},
		},
		Streaming: streaming,
	}
}
