package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/browser"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/browser/browserimpl"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/command"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/command/commandimpl"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/parser"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/parser/parserimpl"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/pgx"
	repositories "github.com/orgball2608/threads-parser-telegram-bot/internal/repositories/fx"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/telegram"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/telegram/telegramimpl"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/threads"
	"github.com/orgball2608/threads-parser-telegram-bot/internal/threads/threadsimpl"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/config"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/logger"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		fx.Annotate(
			browserimpl.NewPlaywrightManager,
			fx.As(new(browser.Launcher)),
		),
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			threadsimpl.New,
			fx.As(new(threads.Client)),
		),
		fx.Annotate(
			parserimpl.New,
			fx.As(new(parser.Client)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(
		func(c *config.Config) error {
			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}

			db, err := sql.Open("postgres", c.GetDSN())
			if err != nil {
				return err
			}
			defer db.Close()

			wd, err := os.Getwd()
			if err != nil {
				return err
			}

			return goose.Up(db, filepath.Join(wd, "migrations"))
		}),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, tgClient telegram.Client,
	pClient parser.Client, cmdClient command.Client) {
	appCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, cfg)

			if err := pClient.ScheduleSearchParsing(appCtx); err != nil {
				log.Error("Schedule search parsing error", "error", err)
				tgClient.SendMessageToUser("Schedule search parsing error: " + err.Error())
			}

			if err := pClient.ScheduleDatabaseCleanup(appCtx); err != nil {
				log.Error("Schedule database cleanup error", "error", err)
				tgClient.SendMessageToUser("Schedule database cleanup error: " + err.Error())
			}

			go func() {
				if err := cmdClient.HandleCommands(appCtx); err != nil && appCtx.Err() == nil {
					log.Error("Command handler stopped", "error", err)
					tgClient.SendMessageToUser("Command handler stopped: " + err.Error())
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
