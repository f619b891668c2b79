package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/orgball2608/threads-parser-telegram-bot/internal/threads"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/formatter"
)

const searchTimeout = 2 * time.Minute

func (c *CommandImpl) handleSearch(ctx context.Context, chatID int64, args string) {
	query := strings.TrimSpace(args)
	if query == "" {
		c.Telegram.SendMessage(chatID, "Please provide a query. Example: /search smart watches")
		return
	}

	c.Telegram.SendMessage(chatID, fmt.Sprintf("Searching Threads for %q...", query))

	searchCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	posts, err := c.Parser.RunSearch(searchCtx, query, c.Config.Parser.MaxPostsPerSearch)
	if err != nil {
		switch {
		case errors.Is(err, threads.ErrNavigationTimeout):
			c.Telegram.SendMessage(chatID, "Threads did not load in time. Please try again later.")
		case errors.Is(err, threads.ErrNoDatasets), errors.Is(err, threads.ErrNoThreadItems):
			c.Telegram.SendMessage(chatID, fmt.Sprintf("No posts found for %q.", query))
		default:
			c.Logger.Error("Search command failed", "query", query, "error", err)
			c.Telegram.SendMessage(chatID, "Something went wrong. Please try again later.")
		}
		return
	}

	if len(posts) == 0 {
		c.Telegram.SendMessage(chatID, fmt.Sprintf("No posts found for %q.", query))
		return
	}

	for _, post := range posts {
		if err := c.Telegram.SendMarkdownMessage(chatID, formatter.PostMessage(post)); err != nil {
			c.Logger.Error("Failed to send post", "postID", post.ID, "error", err)
		}
	}
}

func (c *CommandImpl) handleLatest(ctx context.Context, chatID int64, args string) {
	query := strings.TrimSpace(args)
	if query == "" {
		c.Telegram.SendMessage(chatID, "Please provide a query. Example: /latest smart watches")
		return
	}

	records, err := c.SearchPostRepo.GetLatestByQuery(ctx, query, 10)
	if err != nil {
		c.Logger.Error("Failed to get latest posts", "query", query, "error", err)
		c.Telegram.SendMessage(chatID, "Something went wrong while fetching history.")
		return
	}

	if len(records) == 0 {
		c.Telegram.SendMessage(chatID, fmt.Sprintf("Nothing delivered yet for %q.", query))
		return
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Recently delivered for %q:\n", query))
	for i, record := range records {
		builder.WriteString(fmt.Sprintf("%d. @%s - %s\n", i+1, record.Username, record.PostURL))
	}

	c.Telegram.SendMessage(chatID, builder.String())
}
