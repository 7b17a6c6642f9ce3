package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestParseFrame(t *testing.T) {
	event, ok := ParseFrame([]byte(`data: {"content":{"parts":[{"text":"hi"}]}}`))
	assert.True(t, ok)
	assert.Equal(t, []string{"hi"}, EventTokens(event))

	_, ok = ParseFrame([]byte(`event: message`))
	assert.False(t, ok, "lines without the data prefix are not frames")

	_, ok = ParseFrame([]byte(""))
	assert.False(t, ok, "blank keep-alive lines are not frames")

	_, ok = ParseFrame([]byte(`data: {oops`))
	assert.False(t, ok, "malformed JSON is skipped, not fatal")

	_, ok = ParseFrame([]byte(`data: `))
	assert.False(t, ok, "empty payloads are skipped")

	_, ok = ParseFrame([]byte(`data:{"text":"no space"}`))
	assert.False(t, ok, "the prefix match is literal, including the space")
}

func TestEventTokens(t *testing.T) {
	event := gjson.Parse(`{"content":{"parts":[{"text":"a"},{"functionCall":{"name":"f"}},{"text":"b"}]}}`)
	assert.Equal(t, []string{"a", "b"}, EventTokens(event))

	assert.Empty(t, EventTokens(gjson.Parse(`{"author":"agent"}`)))
	assert.Empty(t, EventTokens(gjson.Parse(`{"content":{"parts":[{"inlineData":{}}]}}`)))
}
