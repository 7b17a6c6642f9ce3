package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplyBullets(t *testing.T) {
	assert.Equal(t, "• buy milk", Reply("- buy milk"))
	assert.Equal(t, "• already a bullet", Reply("• already a bullet"))
	assert.Equal(t, "• one\n• two", Reply("- one\n- two"))
}

func TestReplyHeaders(t *testing.T) {
	assert.Equal(t, "\n== Intro ==\n", Reply("# Intro"))
	assert.Equal(t, "\n==== Summary ====\n", Reply("## Summary"))
	assert.Equal(t, "\n====== Detail ======\n", Reply("### Detail"))

	// Separator width clamps at 8 for level four and beyond.
	assert.Equal(t, "\n======== Deep ========\n", Reply("#### Deep"))
	assert.Equal(t, "\n======== Deeper ========\n", Reply("##### Deeper"))
}

func TestReplyEmphasisFirstPairOnly(t *testing.T) {
	assert.Equal(t, "<strong>bold</strong> and **bold2**", Reply("**bold** and **bold2**"))
	assert.Equal(t, "no markers here", Reply("no markers here"))
}

func TestReplyEmphasisSpansLines(t *testing.T) {
	// The pair replacement runs on the whole text before line handling.
	assert.Equal(t, "<strong>a\nb</strong>", Reply("**a\n b**"))
}

func TestReplyPreservesBlankLines(t *testing.T) {
	assert.Equal(t, "first\n\nsecond", Reply("first\n\nsecond"))
}

func TestReplyIdempotentOnPlainText(t *testing.T) {
	plain := "Here is your summary.\n\n• diversify\n• rebalance quarterly"
	assert.Equal(t, plain, Reply(plain))
	assert.Equal(t, Reply(plain), Reply(Reply(plain)))
}

func TestReplyStripsLineWhitespace(t *testing.T) {
	assert.Equal(t, "trimmed", Reply("   trimmed  "))
}
