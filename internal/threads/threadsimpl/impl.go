package threadsimpl

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/orgball2608/threads-parser-telegram-bot/internal/browser"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/dataset"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/domain"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/threads"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/config"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/logger"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/nested"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/retry"
	"go.uber.org/fx"
)

// markerKey is the property name Threads uses for arrays of post records
// inside its server-rendered datasets.
const markerKey = "thread_items"

// resultsSelector appears once the search results list has rendered.
const resultsSelector = "[data-pressable-container=true]"

type Opts struct {
	fx.In

	Launcher browser.Launcher
	Config   *config.Config
	Logger   logger.Logger
}

type ThreadsImpl struct {
	launcher browser.Launcher
	config   *config.Config
	logger   logger.Logger
	scanner  *dataset.Scanner

	// parse is swapped out in tests to count projection work.
	parse func(node any) (*domain.ThreadsPost, error)
}

func New(opts Opts) *ThreadsImpl {
	t := &ThreadsImpl{
		launcher: opts.Launcher,
		config:   opts.Config,
		logger:   opts.Logger.WithComponent("ThreadsClient"),
		scanner:  dataset.NewScanner(markerKey, opts.Logger),
	}
	t.parse = t.parsePost
	return t
}

var _ threads.Client = (*ThreadsImpl)(nil)

func (t *ThreadsImpl) SearchPosts(ctx context.Context, query string, maxPosts int, fn threads.PostProcessorFunc) error {
	if maxPosts < 1 {
		return fmt.Errorf("maxPosts must be at least 1, got %d", maxPosts)
	}

	session, err := t.launcher.NewSession(browser.Viewport{
		Width:  t.config.Threads.ViewportWidth,
		Height: t.config.Threads.ViewportHeight,
	})
	if err != nil {
		return fmt.Errorf("could not open browser session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			t.logger.Error("Failed to close browser session", "error", err)
		}
	}()

	searchURL := fmt.Sprintf("https://%s/search?q=%s&serp_type=default",
		t.config.Threads.Host, url.QueryEscape(query))
	t.logger.Info("Searching Threads", "query", query, "url", searchURL)

	gotoOperation := func() error {
		return session.Navigate(searchURL)
	}
	if err := retry.Do(ctx, t.logger, "SearchPageGoto", gotoOperation, retry.DefaultConfig()); err != nil {
		return fmt.Errorf("could not open search page: %w", err)
	}

	if err := session.WaitForSelector(resultsSelector, t.config.Threads.NavigationTimeout); err != nil {
		if errors.Is(err, browser.ErrWaitTimeout) {
			return fmt.Errorf("%w: %v", threads.ErrNavigationTimeout, err)
		}
		return fmt.Errorf("could not wait for search results: %w", err)
	}

	blobs, err := t.settledDatasets(ctx, session)
	if err != nil {
		return err
	}
	if len(blobs) == 0 {
		return threads.ErrNoDatasets
	}
	t.logger.Info("Found hidden datasets", "count", len(blobs))

	emitted := 0
	matched := false
	for _, blob := range blobs {
		for _, match := range nested.Lookup(blob, markerKey) {
			items, ok := match.([]any)
			if !ok {
				continue
			}
			matched = true
			for _, item := range items {
				if emitted >= maxPosts {
					t.logger.Info("Reached requested post count, stopping early", "count", emitted)
					return nil
				}
				post, err := t.parse(item)
				if err != nil {
					t.logger.Warn("Skipping thread item that could not be parsed", "error", err)
					continue
				}
				if err := fn(*post); err != nil {
					if errors.Is(err, threads.ErrStopProcessing) {
						return nil
					}
					return err
				}
				emitted++
			}
		}
	}

	if !matched {
		return threads.ErrNoThreadItems
	}

	t.logger.Info("Finished search", "query", query, "posts", emitted)
	return nil
}

var errNotSettled = errors.New("no datasets rendered yet")

// settledDatasets polls the scanner until the page has produced at least
// one dataset or the settle timeout elapses. Late script injection makes
// the first scans after content-ready unreliable, so readiness is defined
// as "a scan returned something" rather than a fixed delay.
func (t *ThreadsImpl) settledDatasets(ctx context.Context, session browser.Session) ([]any, error) {
	var blobs []any
	scanOperation := func() error {
		content, err := session.Content()
		if err != nil {
			return fmt.Errorf("could not read rendered page: %w", err)
		}
		scanned, err := t.scanner.Scan(content)
		if err != nil {
			return err
		}
		if len(scanned) == 0 {
			return errNotSettled
		}
		blobs = scanned
		return nil
	}

	err := retry.Poll(ctx, scanOperation, t.config.Threads.SettleInterval, t.config.Threads.SettleTimeout)
	if err != nil {
		// The settle window closing surfaces either the last poll error
		// or the window's own deadline, depending on where the poll was
		// interrupted. Both mean "settled with nothing to show", which
		// the caller reports distinctly from a scan failure.
		if errors.Is(err, errNotSettled) || (ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded)) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not scan rendered page: %w", err)
	}
	return blobs, nil
}
