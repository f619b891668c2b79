package searchpost

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/threads-parser-telegram-bot/internal/domain"
)

var (
	ErrAlreadyExists = errors.New("search post already exists")
	ErrNotFound      = errors.New("search post not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=searchpost.go -destination=mocks/mock.go
type Repository interface {
	// Create records a delivered post
	Create(ctx context.Context, post domain.SearchPost) error

	// Exists checks if a post with the given ID was already delivered
	Exists(ctx context.Context, postID string) (bool, error)

	// GetLatestByQuery returns the most recently delivered posts for a query, limited by count
	GetLatestByQuery(ctx context.Context, query string, count int) ([]*domain.SearchPost, error)

	// CleanupOldRecords deletes records older than the specified duration
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
