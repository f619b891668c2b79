package threadsimpl

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/threads-parser-telegram-bot/internal/browser"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/domain"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/threads"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/config"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/logger"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	content string
	navErr  error
	waitErr error
	closed  bool
}

func (s *fakeSession) Navigate(url string) error { return s.navErr }

func (s *fakeSession) WaitForSelector(selector string, timeout time.Duration) error {
	return s.waitErr
}

func (s *fakeSession) Content() (string, error) { return s.content, nil }

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

type fakeLauncher struct {
	session *fakeSession
	err     error
}

func (l *fakeLauncher) NewSession(viewport browser.Viewport) (browser.Session, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.session, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Threads.Host = "www.threads.net"
	cfg.Threads.ViewportWidth = 1920
	cfg.Threads.ViewportHeight = 1080
	cfg.Threads.NavigationTimeout = time.Second
	cfg.Threads.SettleTimeout = 100 * time.Millisecond
	cfg.Threads.SettleInterval = 10 * time.Millisecond
	return cfg
}

func newTestImpl(launcher browser.Launcher) *ThreadsImpl {
	return New(Opts{
		Launcher: launcher,
		Config:   testConfig(),
		Logger:   logger.NewNop(),
	})
}

func wellFormedItem(id string) string {
	return fmt.Sprintf(`{
		"post": {
			"id": %q,
			"code": "code%s",
			"user": {"username": "alice", "profile_pic_url": "https://pic", "is_verified": true, "pk": "456", "id": "456"},
			"caption": {"text": "hello world"},
			"taken_at": 1716000000,
			"like_count": 42,
			"has_audio": true,
			"video_versions": [{"url": "v1"}, {"url": "v1"}, {"url": "v2"}]
		},
		"view_replies_cta_string": "12 replies"
	}`, id, id)
}

func payloadHTML(items ...string) string {
	payload := fmt.Sprintf(
		`{"require":[["ScheduledServerJS","handle",null,[{"__bbox":{"result":{"data":{"edges":[{"node":{"thread_items":[%s]}}]}}}}]]]}`,
		strings.Join(items, ","),
	)
	return fmt.Sprintf(
		`<html><body><div data-pressable-container="true"></div><script type="application/json" data-sjs>%s</script></body></html>`,
		payload,
	)
}

func collect(t *testing.T, impl *ThreadsImpl, query string, maxPosts int) ([]domain.ThreadsPost, error) {
	t.Helper()
	var posts []domain.ThreadsPost
	err := impl.SearchPosts(context.Background(), query, maxPosts, func(post domain.ThreadsPost) error {
		posts = append(posts, post)
		return nil
	})
	return posts, err
}

func TestSearchPostsEndToEnd(t *testing.T) {
	session := &fakeSession{content: payloadHTML(
		`{"post": {"code": "c1", "user": {"username": "noid"}}}`,
		`{"post": {"id": "2", "code": "c2", "user": {}}}`,
		wellFormedItem("3"),
	)}
	impl := newTestImpl(&fakeLauncher{session: session})

	posts, err := collect(t, impl, "smart watches", 5)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	post := posts[0]
	require.Equal(t, "3", post.ID)
	require.Equal(t, "alice", post.Username)
	require.Equal(t, "https://www.threads.net/@alice/post/code3", post.URL)
	require.Equal(t, "hello world", post.Text)
	require.Equal(t, 42, post.LikeCount)
	require.Equal(t, 12, post.ReplyCount)
	require.True(t, post.HasAudio)
	require.True(t, post.Verified)
	require.ElementsMatch(t, []string{"v1", "v2"}, post.Videos)
	require.Empty(t, post.Images)
	require.Zero(t, post.ImageCount)
	require.NotNil(t, post.PublishedAt)

	require.True(t, session.closed)
}

func TestSearchPostsStopsAtMaxCount(t *testing.T) {
	items := make([]string, 10)
	for i := range items {
		items[i] = wellFormedItem(fmt.Sprintf("id%d", i))
	}
	session := &fakeSession{content: payloadHTML(items...)}
	impl := newTestImpl(&fakeLauncher{session: session})

	parseCalls := 0
	parse := impl.parse
	impl.parse = func(node any) (*domain.ThreadsPost, error) {
		parseCalls++
		return parse(node)
	}

	posts, err := collect(t, impl, "q", 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	// No projection work happens on items beyond the bound.
	require.Equal(t, 3, parseCalls)
	require.True(t, session.closed)
}

func TestSearchPostsConsumerStop(t *testing.T) {
	session := &fakeSession{content: payloadHTML(wellFormedItem("1"), wellFormedItem("2"))}
	impl := newTestImpl(&fakeLauncher{session: session})

	seen := 0
	err := impl.SearchPosts(context.Background(), "q", 10, func(post domain.ThreadsPost) error {
		seen++
		return threads.ErrStopProcessing
	})
	require.NoError(t, err)
	require.Equal(t, 1, seen)
	require.True(t, session.closed)
}

func TestSearchPostsNavigationTimeout(t *testing.T) {
	session := &fakeSession{waitErr: fmt.Errorf("%w: selector", browser.ErrWaitTimeout)}
	impl := newTestImpl(&fakeLauncher{session: session})

	_, err := collect(t, impl, "q", 5)
	require.ErrorIs(t, err, threads.ErrNavigationTimeout)
	require.True(t, session.closed)
}

func TestSearchPostsNoDatasets(t *testing.T) {
	session := &fakeSession{content: `<html><body><div data-pressable-container="true"></div></body></html>`}
	impl := newTestImpl(&fakeLauncher{session: session})

	_, err := collect(t, impl, "q", 5)
	require.ErrorIs(t, err, threads.ErrNoDatasets)
	require.True(t, session.closed)
}

func TestSearchPostsNoThreadItems(t *testing.T) {
	content := `<html><body><script type="application/json" data-sjs>` +
		`{"require":[["ScheduledServerJS",null]],"other":"thread_items literal only"}` +
		`</script></body></html>`
	session := &fakeSession{content: content}
	impl := newTestImpl(&fakeLauncher{session: session})

	_, err := collect(t, impl, "q", 5)
	require.ErrorIs(t, err, threads.ErrNoThreadItems)
	require.True(t, session.closed)
}

func TestSearchPostsSessionError(t *testing.T) {
	impl := newTestImpl(&fakeLauncher{err: fmt.Errorf("browser exploded")})

	_, err := collect(t, impl, "q", 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "browser session")
}

func TestSearchPostsRejectsBadMaxCount(t *testing.T) {
	impl := newTestImpl(&fakeLauncher{session: &fakeSession{}})

	_, err := collect(t, impl, "q", 0)
	require.Error(t, err)
}
