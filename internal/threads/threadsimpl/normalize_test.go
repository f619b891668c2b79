package threadsimpl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testHost = "www.threads.net"

func TestParseReplyCount(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{name: "numeric passthrough", value: float64(7), want: 7},
		{name: "leading token", value: "128 replies", want: 128},
		{name: "free text", value: "unexpected text", want: 0},
		{name: "absent", value: nil, want: 0},
		{name: "negative clamped", value: "-3 replies", want: 0},
		{name: "whitespace", value: "  12 replies", want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseReplyCount(tt.value))
		})
	}
}

func TestNormalizePostDefaults(t *testing.T) {
	draft := map[string]any{
		"id":       "1",
		"code":     "abc",
		"username": "bob",
	}

	post := normalizePost(draft, testHost)

	require.Equal(t, "1", post.ID)
	require.Equal(t, "https://www.threads.net/@bob/post/abc", post.URL)
	require.Equal(t, "", post.Text)
	require.Zero(t, post.LikeCount)
	require.Zero(t, post.ReplyCount)
	require.Zero(t, post.ImageCount)
	require.Empty(t, post.Images)
	require.Empty(t, post.Videos)
	require.False(t, post.HasAudio)
	require.False(t, post.Verified)
	require.Nil(t, post.PublishedAt)
}

func TestNormalizePostDeduplicatesVideos(t *testing.T) {
	draft := map[string]any{
		"id":       "1",
		"code":     "abc",
		"username": "bob",
		"videos":   []any{"a", "a", "b"},
	}

	post := normalizePost(draft, testHost)
	require.Len(t, post.Videos, 2)
	require.ElementsMatch(t, []string{"a", "b"}, post.Videos)
}

func TestNormalizePostPublishedAt(t *testing.T) {
	draft := map[string]any{
		"id":           "1",
		"code":         "abc",
		"username":     "bob",
		"published_on": float64(1716000000),
	}

	post := normalizePost(draft, testHost)
	require.NotNil(t, post.PublishedAt)
	require.Equal(t, time.Unix(1716000000, 0).UTC(), *post.PublishedAt)
}

func TestNormalizePostCoercionFailuresUseDefaults(t *testing.T) {
	draft := map[string]any{
		"id":          "1",
		"code":        "abc",
		"username":    "bob",
		"like_count":  "not a number",
		"image_count": float64(-2),
		"has_audio":   "yes",
	}

	post := normalizePost(draft, testHost)
	require.Zero(t, post.LikeCount)
	require.Zero(t, post.ImageCount)
	require.False(t, post.HasAudio)
}
