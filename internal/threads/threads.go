package threads

import (
	"context"
	"errors"

	"github.com/orgball2608/threads-parser-telegram-bot/internal/domain"
)

var (
	// ErrNavigationTimeout means the search results container never
	// appeared within the configured timeout. No posts were emitted.
	ErrNavigationTimeout = errors.New("search results did not appear before timeout")

	// ErrNoDatasets means the page rendered but contained no embedded
	// JSON datasets.
	ErrNoDatasets = errors.New("no embedded datasets found in page")

	// ErrNoThreadItems means datasets were found but none of them held
	// thread items.
	ErrNoThreadItems = errors.New("no thread items found in any dataset")

	// ErrStopProcessing can be returned from a PostProcessorFunc to end
	// the stream early without surfacing an error.
	ErrStopProcessing = errors.New("stop processing posts")
)

// PostProcessorFunc receives posts one at a time as they are extracted.
type PostProcessorFunc func(post domain.ThreadsPost) error

//go:generate go run go.uber.org/mock/mockgen -source=threads.go -destination=mocks/mock.go
type Client interface {
	// SearchPosts renders the search results page for query and streams
	// up to maxPosts extracted posts into fn. Extraction stops as soon
	// as the bound is reached; the browser session is released on every
	// exit path.
	SearchPosts(ctx context.Context, query string, maxPosts int, fn PostProcessorFunc) error
}
