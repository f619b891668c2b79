package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/threads-parser-telegram-bot/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestEscapeMarkdownV2(t *testing.T) {
	require.Equal(t, `hello\.world\!`, EscapeMarkdownV2("hello.world!"))
	require.Equal(t, `\_\*\[\]`, EscapeMarkdownV2("_*[]"))
	require.Equal(t, "plain text", EscapeMarkdownV2("plain text"))
}

func TestPostMessage(t *testing.T) {
	at := time.Date(2025, 5, 18, 10, 0, 0, 0, time.UTC)
	post := domain.ThreadsPost{
		ID:          "1",
		Username:    "alice.dev",
		Text:        "big news!",
		URL:         "https://www.threads.net/@alice.dev/post/abc",
		LikeCount:   1234,
		ReplyCount:  56,
		PublishedAt: &at,
	}

	msg := PostMessage(post)

	require.Contains(t, msg, `@alice\.dev`)
	require.Contains(t, msg, `big news\!`)
	require.Contains(t, msg, `1\,234`)
	require.Contains(t, msg, "https://www.threads.net/@alice.dev/post/abc")
}

func TestPostMessageTruncatesLongText(t *testing.T) {
	post := domain.ThreadsPost{
		Username: "bob",
		Text:     strings.Repeat("a", 500),
		URL:      "https://example.com",
	}

	msg := PostMessage(post)
	require.Contains(t, msg, "...")
	require.NotContains(t, msg, strings.Repeat("a", 300))
}
