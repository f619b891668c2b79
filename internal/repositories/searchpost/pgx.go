package searchpost

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/domain"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/repositories"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("SearchPostRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// Create records a delivered post
func (p *Pgx) Create(ctx context.Context, post domain.SearchPost) error {
	query, args, err := repositories.SqBuilder.
		Insert("search_posts").
		Columns("post_id", "username", "post_url", "query", "created_at").
		Values(post.PostID, post.Username, post.PostURL, post.Query, time.Now()).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Exists checks if a post with the given ID was already delivered
func (p *Pgx) Exists(ctx context.Context, postID string) (bool, error) {
	query, args, err := repositories.SqBuilder.
		Select("1").
		From("search_posts").
		Where(sq.Eq{"post_id": postID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	var one int
	err = p.pg.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GetLatestByQuery returns the most recently delivered posts for a query, limited by count
func (p *Pgx) GetLatestByQuery(ctx context.Context, searchQuery string, count int) ([]*domain.SearchPost, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "post_id", "username", "post_url", "query", "created_at").
		From("search_posts").
		Where(sq.Eq{"query": searchQuery}).
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*domain.SearchPost
	for rows.Next() {
		var post domain.SearchPost
		if err := rows.Scan(&post.ID, &post.PostID, &post.Username, &post.PostURL, &post.Query, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// CleanupOldRecords deletes records older than the specified duration
func (p *Pgx) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoffTime := time.Now().Add(-olderThan)

	query, args, err := repositories.SqBuilder.
		Delete("search_posts").
		Where(sq.Lt{"created_at": cutoffTime}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
