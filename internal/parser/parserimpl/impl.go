package parserimpl

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/parser"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/repositories/searchpost"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/telegram"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/threads"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/config"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Threads        threads.Client
	Telegram       telegram.Client
	SearchPostRepo searchpost.Repository
	Logger         logger.Logger
	Config         *config.Config
}

type ParserImpl struct {
	Threads        threads.Client
	Telegram       telegram.Client
	SearchPostRepo searchpost.Repository
	Logger         logger.Logger
	Config         *config.Config
	Scheduler      gocron.Scheduler
}

func New(opts Opts) *ParserImpl {
	return &ParserImpl{
		Threads:        opts.Threads,
		Telegram:       opts.Telegram,
		SearchPostRepo: opts.SearchPostRepo,
		Logger:         opts.Logger.WithComponent("Parser"),
		Config:         opts.Config,
	}
}

var _ parser.Client = (*ParserImpl)(nil)

func (p *ParserImpl) ensureScheduler() error {
	if p.Scheduler != nil {
		return nil
	}

	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		loc = time.Local
		p.Logger.Warn("Failed to load Asia/Ho_Chi_Minh timezone, using local timezone", "error", err)
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	p.Scheduler = scheduler
	return nil
}
