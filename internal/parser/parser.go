package parser

import (
	"context"

	"github.com/orgball2608/threads-parser-telegram-bot/internal/domain"
)

type Client interface {
	// RunSearch performs one on-demand search and returns the collected posts.
	RunSearch(ctx context.Context, query string, maxPosts int) ([]domain.ThreadsPost, error)

	// ScheduleSearchParsing periodically runs the configured search
	// queries and delivers unseen posts to the channel.
	ScheduleSearchParsing(ctx context.Context) error

	// ScheduleDatabaseCleanup prunes old delivery records daily.
	ScheduleDatabaseCleanup(ctx context.Context) error
}
