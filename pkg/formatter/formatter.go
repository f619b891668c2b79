package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orgball2608/threads-parser-telegram-bot/internal/domain"
)

const maxTextLength = 200

// FormatNumber converts an integer to a string with commas as thousands separators.
// Example: 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}

	le := len(s)
	if le <= 3 {
		if n < 0 {
			return "-" + s
		}
		return s
	}

	sepCount := (le - 1) / 3

	res := make([]byte, le+sepCount)

	j := len(res) - 1
	for i := le - 1; i >= 0; i-- {
		res[j] = s[i]
		j--
		if (le-i)%3 == 0 && i > 0 {
			res[j] = ','
			j--
		}
	}

	if n < 0 {
		return "-" + string(res)
	}
	return string(res)
}

// EscapeMarkdownV2 escapes special characters in Markdown V2 format
func EscapeMarkdownV2(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			sb.WriteRune('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// PostMessage renders a Threads post as a Markdown V2 message for Telegram.
func PostMessage(post domain.ThreadsPost) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("🧵 *New post from @%s*\n\n", EscapeMarkdownV2(post.Username)))

	text := post.Text
	if len(text) > maxTextLength {
		text = text[:maxTextLength-3] + "..."
	}
	if text != "" {
		sb.WriteString(EscapeMarkdownV2(text))
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("❤️ %s  💬 %s\n",
		EscapeMarkdownV2(FormatNumber(post.LikeCount)),
		EscapeMarkdownV2(FormatNumber(post.ReplyCount)),
	))

	if post.PublishedAt != nil {
		sb.WriteString(fmt.Sprintf("🕒 %s\n", EscapeMarkdownV2(post.PublishedAt.Format("2006-01-02 15:04"))))
	}

	sb.WriteString(fmt.Sprintf("\n🔗 [View on Threads](%s)", post.URL))

	return sb.String()
}
