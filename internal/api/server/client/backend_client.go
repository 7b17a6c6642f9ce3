package client

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/advisorkit/relay/internal/logger"
)

// BackendClient talks to the remote agent API: session creation, synchronous
// runs and SSE runs.
type BackendClient struct {
	Client
}

// NewBackendClient creates a client for the agent backend rooted at the
// configured base URL.
func NewBackendClient(config ClientConfig) (*BackendClient, error) {
	base, err := NewClient(config)
	if err != nil {
		return nil, err
	}
	return &BackendClient{Client: *base}, nil
}

// CreateSession asks the backend for a fresh conversation context. Callers
// never reuse sessions across requests.
func (c *BackendClient) CreateSession(ctx context.Context) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GetSessionURL(), bytes.NewBufferString("{}"))
	if err != nil {
		return nil, errors.Wrap(err, "build session request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if IsTimeout(err) {
			return nil, err
		}
		return nil, &SessionError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &SessionError{Status: resp.StatusCode}
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, &SessionError{Err: errors.Wrap(err, "decode session")}
	}
	if session.ID == "" {
		return nil, &SessionError{Err: errors.New("backend session has no id")}
	}
	return &session, nil
}

// Run submits the message to the synchronous run endpoint and returns the
// concatenation of every text part across the returned events, in order.
func (c *BackendClient) Run(ctx context.Context, runReq *RunRequest) (string, error) {
	bts, err := json.Marshal(runReq)
	if err != nil {
		return "", errors.Wrap(err, "marshal run request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GetRunURL(), bytes.NewBuffer(bts))
	if err != nil {
		return "", errors.Wrap(err, "build run request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "run request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &StatusError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read run response")
	}
	if !gjson.ValidBytes(body) {
		return "", errors.New("malformed run response body")
	}

	var sb strings.Builder
	for _, event := range gjson.ParseBytes(body).Array() {
		for _, token := range EventTokens(event) {
			sb.WriteString(token)
		}
	}
	return sb.String(), nil
}

// RunStream submits the message to the event-stream endpoint and invokes fn
// for each text part as soon as it arrives. Frames that are not valid
// "data: <json>" lines are skipped, never fatal.
func (c *BackendClient) RunStream(ctx context.Context, runReq *RunRequest, fn func(token string) error) error {
	localLogger := logger.NewLogger("backend stream")

	bts, err := json.Marshal(runReq)
	if err != nil {
		return errors.Wrap(err, "marshal run request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GetRunSseURL(), bytes.NewBuffer(bts))
	if err != nil {
		return errors.Wrap(err, "build stream request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "stream request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{Status: resp.StatusCode}
	}

	scanner := bufio.NewScanner(resp.Body)
	// Agent events can carry whole tool payloads in a single frame.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		event, ok := ParseFrame(line)
		if !ok {
			if bytes.HasPrefix(line, framePrefix) {
				localLogger.Warn("Skipping malformed frame: ", string(line))
			}
			continue
		}
		for _, token := range EventTokens(event) {
			if err := fn(token); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read stream")
	}
	return nil
}
