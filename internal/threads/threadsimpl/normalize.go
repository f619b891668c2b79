package threadsimpl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/orgball2608/threads-parser-telegram-bot/internal/domain"
	"github.com/samber/lo"
)

// parsePost runs projection and normalization over one raw thread item.
func (t *ThreadsImpl) parsePost(node any) (*domain.ThreadsPost, error) {
	draft, err := projectPost(node)
	if err != nil {
		return nil, err
	}
	post := normalizePost(draft, t.config.Threads.Host)
	return &post, nil
}

// normalizePost coerces the loosely typed draft into the final record.
// Coercion failures fall back to the field's default, never an error.
func normalizePost(draft map[string]any, host string) domain.ThreadsPost {
	post := domain.ThreadsPost{
		ID:         asString(draft["id"]),
		Code:       asString(draft["code"]),
		Username:   asString(draft["username"]),
		Text:       asString(draft["text"]),
		LikeCount:  asCount(draft["like_count"]),
		ReplyCount: parseReplyCount(draft["reply_count"]),
		Images:     asStringSlice(draft["images"]),
		ImageCount: asCount(draft["image_count"]),
		Videos:     lo.Uniq(asStringSlice(draft["videos"])),
		HasAudio:   asBool(draft["has_audio"]),
		UserPicURL: asString(draft["user_pic"]),
		Verified:   asBool(draft["user_verified"]),
		UserID:     asString(draft["user_id"]),
		UserPK:     asString(draft["user_pk"]),
	}

	post.URL = fmt.Sprintf("https://%s/@%s/post/%s", host, post.Username, post.Code)

	if seconds := asInt64(draft["published_on"]); seconds > 0 {
		at := time.Unix(seconds, 0).UTC()
		post.PublishedAt = &at
	}

	return post
}

// parseReplyCount accepts either a numeric value or free text such as
// "12 replies", taking the leading token as the count. Anything
// unparseable becomes 0.
func parseReplyCount(value any) int {
	switch v := value.(type) {
	case float64:
		return asCount(v)
	case string:
		token, _, _ := strings.Cut(strings.TrimSpace(v), " ")
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 {
			return 0
		}
		return n
	default:
		return 0
	}
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// asCount coerces a decoded JSON number to a non-negative int.
func asCount(value any) int {
	f, ok := value.(float64)
	if !ok || f < 0 {
		return 0
	}
	return int(f)
}

func asInt64(value any) int64 {
	f, ok := value.(float64)
	if !ok {
		return 0
	}
	return int64(f)
}

func asBool(value any) bool {
	b, ok := value.(bool)
	return ok && b
}

func asStringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
