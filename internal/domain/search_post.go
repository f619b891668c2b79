package domain

import "time"

// SearchPost is a delivered post recorded by the bot so scheduled search
// runs do not resend it.
type SearchPost struct {
	ID        int
	PostID    string
	Username  string
	PostURL   string
	Query     string
	CreatedAt time.Time
}
