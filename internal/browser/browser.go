package browser

import (
	"errors"
	"time"
)

// ErrWaitTimeout is returned by Session.WaitForSelector when the selector
// never appeared within the given timeout.
var ErrWaitTimeout = errors.New("selector did not appear before timeout")

type Viewport struct {
	Width  int
	Height int
}

// Session is one isolated browser context with a single page.
// Close must be called on every exit path.
type Session interface {
	Navigate(url string) error
	WaitForSelector(selector string, timeout time.Duration) error
	Content() (string, error)
	Close() error
}

// Launcher opens isolated sessions on a shared browser process.
type Launcher interface {
	NewSession(viewport Viewport) (Session, error)
}
