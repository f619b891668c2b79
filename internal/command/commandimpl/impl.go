package commandimpl

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/command"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/parser"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/ratelimit"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/repositories/searchpost"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/telegram"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/config"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Telegram       telegram.Client
	Parser         parser.Client
	SearchPostRepo searchpost.Repository
	Logger         logger.Logger
	Config         *config.Config
}

type CommandImpl struct {
	Telegram       telegram.Client
	Parser         parser.Client
	SearchPostRepo searchpost.Repository
	Logger         logger.Logger
	Config         *config.Config
	Limiter        ratelimit.Limiter
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Telegram:       opts.Telegram,
		Parser:         opts.Parser,
		SearchPostRepo: opts.SearchPostRepo,
		Logger:         opts.Logger.WithComponent("Command"),
		Config:         opts.Config,
		// One search per minute per chat, burst of 2. Each search owns a
		// browser session, so this is deliberately tight.
		Limiter: ratelimit.NewInMemoryLimiter(1, time.Minute, 2),
	}
}

var _ command.Client = (*CommandImpl)(nil)

func (c *CommandImpl) HandleCommands(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			c.dispatch(ctx, update.Message)
		}
	}
}

func (c *CommandImpl) dispatch(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "search":
		if !c.Limiter.Allow(chatID) {
			c.Telegram.SendMessage(chatID, "You're searching too fast. Please wait a bit and try again.")
			return
		}
		c.handleSearch(ctx, chatID, msg.CommandArguments())
	case "latest":
		c.handleLatest(ctx, chatID, msg.CommandArguments())
	case "help", "start":
		c.handleHelp(chatID)
	default:
		c.Telegram.SendMessage(chatID, "Unknown command. Use /help for the list of commands.")
	}
}

func (c *CommandImpl) handleHelp(chatID int64) {
	c.Telegram.SendMessage(chatID,
		"Available commands:\n"+
			"/search <query> - search Threads posts now\n"+
			"/latest <query> - recently delivered posts for a query\n"+
			"/help - this message")
}
