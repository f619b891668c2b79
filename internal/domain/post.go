package domain

import "time"

// ThreadsPost is one post extracted from a Threads search results page.
// Built once by the extraction pipeline and never mutated afterwards.
type ThreadsPost struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	URL         string     `json:"url"`
	Username    string     `json:"username"`
	Text        string     `json:"text"`
	PublishedAt *time.Time `json:"published_at"`
	LikeCount   int        `json:"like_count"`
	ReplyCount  int        `json:"reply_count"`
	Images      []string   `json:"images"`
	ImageCount  int        `json:"image_count"`
	Videos      []string   `json:"videos"`
	HasAudio    bool       `json:"has_audio"`
	UserPicURL  string     `json:"profile_pic_url,omitempty"`
	Verified    bool       `json:"verified"`
	UserID      string     `json:"user_id,omitempty"`
	UserPK      string     `json:"user_pk,omitempty"`
}
