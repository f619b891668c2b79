package threadsimpl

import (
	"fmt"

	"github.com/orgball2608/threads-parser-telegram-bot/pkg/jsonpath"
)

type fieldMapping struct {
	name     string
	path     *jsonpath.Path
	required bool
}

// postFields is the declarative mapping from a raw thread item node to a
// draft record. Adding a field here is a data change, not a code change.
// Required fields reject the whole item when absent; everything else
// takes its default during normalization.
var postFields = []fieldMapping{
	{name: "id", path: jsonpath.MustCompile("post.id"), required: true},
	{name: "code", path: jsonpath.MustCompile("post.code"), required: true},
	{name: "username", path: jsonpath.MustCompile("post.user.username"), required: true},
	{name: "text", path: jsonpath.MustCompile("post.caption.text")},
	{name: "published_on", path: jsonpath.MustCompile("post.taken_at")},
	{name: "like_count", path: jsonpath.MustCompile("post.like_count")},
	{name: "reply_count", path: jsonpath.MustCompile("view_replies_cta_string")},
	{name: "images", path: jsonpath.MustCompile("post.carousel_media[].image_versions2.candidates[1].url")},
	{name: "image_count", path: jsonpath.MustCompile("post.carousel_media_count")},
	{name: "videos", path: jsonpath.MustCompile("post.video_versions[].url")},
	{name: "has_audio", path: jsonpath.MustCompile("post.has_audio")},
	{name: "user_pic", path: jsonpath.MustCompile("post.user.profile_pic_url")},
	{name: "user_verified", path: jsonpath.MustCompile("post.user.is_verified")},
	{name: "user_id", path: jsonpath.MustCompile("post.user.id")},
	{name: "user_pk", path: jsonpath.MustCompile("post.user.pk")},
}

// projectPost evaluates the field mapping against one thread item node
// and returns the untyped draft record. Absent optional fields are left
// out of the draft entirely.
func projectPost(node any) (map[string]any, error) {
	draft := make(map[string]any, len(postFields))
	for _, f := range postFields {
		value, ok := f.path.Eval(node)
		if !ok {
			if f.required {
				return nil, fmt.Errorf("thread item missing required field %q (%s)", f.name, f.path)
			}
			continue
		}
		draft[f.name] = value
	}
	return draft, nil
}
