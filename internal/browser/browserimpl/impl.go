package browserimpl

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/orgball2608/threads-parser-telegram-bot/internal/browser"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/config"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/logger"
	"github.com/playwright-community/playwright-go"
	"go.uber.org/fx"
)

// PlaywrightManager owns the playwright driver and the shared headless
// browser process. Sessions are cheap per-call browser contexts on top
// of it.
type PlaywrightManager struct {
	pw        *playwright.Playwright
	browser   playwright.Browser
	userAgent string
	logger    logger.Logger
}

type Opts struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

func NewPlaywrightManager(opts Opts) (*PlaywrightManager, error) {
	log := opts.Logger.WithComponent("PlaywrightManager")
	log.Info("Initializing Playwright Manager...")

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	br, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args: []string{
			"--no-sandbox",
			"--disable-setuid-sandbox",
			"--disable-dev-shm-usage", // Important in Docker/container
			"--disable-accelerated-2d-canvas",
			"--no-first-run",
			"--no-zygote",
			"--disable-gpu",
		},
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	manager := &PlaywrightManager{
		pw:        pw,
		browser:   br,
		userAgent: opts.Config.Threads.UserAgent,
		logger:    log,
	}

	opts.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Playwright browser...")
			if err := manager.browser.Close(); err != nil {
				log.Error("Failed to close playwright browser", "error", err)
			}
			if err := manager.pw.Stop(); err != nil {
				log.Error("Failed to stop playwright", "error", err)
				return err
			}
			log.Info("Playwright stopped successfully.")
			return nil
		},
	})

	log.Info("Playwright Manager initialized successfully.")
	return manager, nil
}

var _ browser.Launcher = (*PlaywrightManager)(nil)

// NewSession opens an isolated browser context with its own page.
func (pm *PlaywrightManager) NewSession(viewport browser.Viewport) (browser.Session, error) {
	brContext, err := pm.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(pm.userAgent),
		Viewport: &playwright.Size{
			Width:  viewport.Width,
			Height: viewport.Height,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	if err := setupRequestInterception(brContext); err != nil {
		_ = brContext.Close()
		return nil, fmt.Errorf("failed to set up request interception: %w", err)
	}

	page, err := brContext.NewPage()
	if err != nil {
		_ = brContext.Close()
		return nil, fmt.Errorf("could not create new page: %w", err)
	}

	return &session{brContext: brContext, page: page}, nil
}

// setupRequestInterception block unnecessary resources
func setupRequestInterception(ctx playwright.BrowserContext) error {
	return ctx.Route("**/*", func(route playwright.Route) {
		resourceType := route.Request().ResourceType()
		if resourceType == "image" || resourceType == "stylesheet" || resourceType == "font" || resourceType == "media" {
			route.Abort()
		} else {
			route.Continue()
		}
	})
}

type session struct {
	brContext playwright.BrowserContext
	page      playwright.Page
}

var _ browser.Session = (*session)(nil)

func (s *session) Navigate(url string) error {
	_, err := s.page.Goto(url, playwright.PageGotoOptions{Timeout: playwright.Float(60000)})
	if err != nil {
		return fmt.Errorf("could not goto page '%s': %w", url, err)
	}
	return nil
}

func (s *session) WaitForSelector(selector string, timeout time.Duration) error {
	_, err := s.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		if errors.Is(err, playwright.ErrTimeout) {
			return fmt.Errorf("%w: %s", browser.ErrWaitTimeout, selector)
		}
		return err
	}
	return nil
}

func (s *session) Content() (string, error) {
	return s.page.Content()
}

func (s *session) Close() error {
	err := s.brContext.Close()
	debug.FreeOSMemory()
	return err
}
