package client

import (
	"bytes"

	"github.com/tidwall/gjson"
)

var framePrefix = []byte("data: ")

// ParseFrame recognizes a single server-sent-event line. Only lines carrying
// the literal "data: " prefix are frames; blank keep-alive lines, event-name
// lines and partial chunks are ignored. The payload must decode as JSON — the
// backend interleaves frames the relay has no schema for, so a frame that
// fails to decode is skipped rather than treated as fatal.
func ParseFrame(line []byte) (gjson.Result, bool) {
	if !bytes.HasPrefix(line, framePrefix) {
		return gjson.Result{}, false
	}
	payload := bytes.TrimSpace(bytes.TrimPrefix(line, framePrefix))
	if len(payload) == 0 || !gjson.ValidBytes(payload) {
		return gjson.Result{}, false
	}
	return gjson.ParseBytes(payload), true
}

// EventTokens extracts the text parts of a backend event, in order. Events
// carry many other fields (tool calls, usage, state deltas); parts without
// text are ignored.
func EventTokens(event gjson.Result) []string {
	var tokens []string
	for _, part := range event.Get("content.parts").Array() {
		if text := part.Get("text").String(); text != "" {
			tokens = append(tokens, text)
		}
	}
	return tokens
}
