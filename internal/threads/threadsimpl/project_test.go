package threadsimpl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeItem(t *testing.T, raw string) any {
	t.Helper()
	var node any
	require.NoError(t, json.Unmarshal([]byte(raw), &node))
	return node
}

func TestProjectPost(t *testing.T) {
	node := decodeItem(t, `{
		"post": {
			"id": "123_456",
			"code": "C8xyz",
			"user": {"username": "alice", "is_verified": true, "pk": "456"},
			"caption": {"text": "hello"},
			"taken_at": 1716000000,
			"like_count": 42,
			"carousel_media": [
				{"image_versions2": {"candidates": [{"url": "big0"}, {"url": "small0"}]}},
				{"image_versions2": {"candidates": [{"url": "big1"}, {"url": "small1"}]}}
			],
			"carousel_media_count": 2,
			"video_versions": [{"url": "v1"}, {"url": "v1"}]
		},
		"view_replies_cta_string": "12 replies"
	}`)

	draft, err := projectPost(node)
	require.NoError(t, err)

	require.Equal(t, "123_456", draft["id"])
	require.Equal(t, "C8xyz", draft["code"])
	require.Equal(t, "alice", draft["username"])
	require.Equal(t, "hello", draft["text"])
	require.Equal(t, "12 replies", draft["reply_count"])
	require.Equal(t, []any{"small0", "small1"}, draft["images"])
	require.Equal(t, []any{"v1", "v1"}, draft["videos"])
	require.Equal(t, true, draft["user_verified"])
}

func TestProjectPostRejectsMissingUsername(t *testing.T) {
	node := decodeItem(t, `{"post": {"id": "x", "code": "c", "user": {}}}`)

	_, err := projectPost(node)
	require.Error(t, err)
	require.Contains(t, err.Error(), "username")
}

func TestProjectPostRejectsMissingID(t *testing.T) {
	node := decodeItem(t, `{"post": {"code": "c", "user": {"username": "bob"}}}`)

	_, err := projectPost(node)
	require.Error(t, err)
	require.Contains(t, err.Error(), "id")
}

func TestProjectPostOmitsAbsentOptionalFields(t *testing.T) {
	node := decodeItem(t, `{"post": {"id": "1", "code": "c", "user": {"username": "bob"}}}`)

	draft, err := projectPost(node)
	require.NoError(t, err)

	require.NotContains(t, draft, "text")
	require.NotContains(t, draft, "videos")
	require.NotContains(t, draft, "reply_count")
}
