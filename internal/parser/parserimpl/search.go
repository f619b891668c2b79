package parserimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/domain"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/repositories/searchpost"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/threads"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/formatter"
)

// RunSearch performs one on-demand search and returns the collected posts.
func (p *ParserImpl) RunSearch(ctx context.Context, query string, maxPosts int) ([]domain.ThreadsPost, error) {
	var posts []domain.ThreadsPost
	err := p.Threads.SearchPosts(ctx, query, maxPosts, func(post domain.ThreadsPost) error {
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ScheduleSearchParsing sets up a scheduler to run the configured search queries
func (p *ParserImpl) ScheduleSearchParsing(ctx context.Context) error {
	queries := p.searchQueries()
	if len(queries) == 0 {
		p.Logger.Warn("No search queries configured, skipping search scheduling")
		return nil
	}

	if err := p.ensureScheduler(); err != nil {
		return err
	}

	interval := p.Config.Parser.SearchCronInterval
	p.Logger.Info("Setting up search parsing", "interval", interval, "queries", len(queries))

	_, err := p.Scheduler.NewJob(
		gocron.CronJob(
			interval,
			false, // Don't use seconds precision
		),
		gocron.NewTask(func() {
			p.Logger.Info("Running scheduled search parsing")

			checkCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
			defer cancel()

			for _, query := range queries {
				p.checkNewPostsForQuery(checkCtx, query)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule search parsing: %w", err)
	}

	p.Scheduler.Start()

	return nil
}

func (p *ParserImpl) searchQueries() []string {
	var queries []string
	for _, q := range strings.Split(p.Config.Parser.SearchQueries, ",") {
		if q = strings.TrimSpace(q); q != "" {
			queries = append(queries, q)
		}
	}
	return queries
}

// checkNewPostsForQuery runs one search and delivers unseen posts to the channel
func (p *ParserImpl) checkNewPostsForQuery(ctx context.Context, query string) {
	p.Logger.Info("Checking new posts", "query", query)

	posts, err := p.RunSearch(ctx, query, p.Config.Parser.MaxPostsPerSearch)
	if err != nil {
		if errors.Is(err, threads.ErrNoDatasets) || errors.Is(err, threads.ErrNoThreadItems) {
			p.Logger.Warn("Search returned no posts", "query", query, "reason", err)
			return
		}
		p.Logger.Error("Failed to search posts", "query", query, "error", err)
		return
	}

	p.Logger.Info("Retrieved posts", "query", query, "count", len(posts))

	for _, post := range posts {
		exists, err := p.SearchPostRepo.Exists(ctx, post.ID)
		if err != nil {
			p.Logger.Error("Failed to check if post exists", "postID", post.ID, "error", err)
			continue
		}
		if exists {
			p.Logger.Debug("Post already delivered", "postID", post.ID)
			continue
		}

		record := domain.SearchPost{
			PostID:   post.ID,
			Username: post.Username,
			PostURL:  post.URL,
			Query:    query,
		}
		if err := p.SearchPostRepo.Create(ctx, record); err != nil {
			if !errors.Is(err, searchpost.ErrAlreadyExists) {
				p.Logger.Error("Failed to save post", "postID", post.ID, "error", err)
			}
			continue
		}

		if err := p.Telegram.SendMarkdownToChannel(formatter.PostMessage(post)); err != nil {
			p.Logger.Error("Failed to deliver post to channel", "postID", post.ID, "error", err)
		}
	}
}
