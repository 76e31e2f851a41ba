package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"gym_schedule_bot/internal/app"
	"gym_schedule_bot/internal/domain/report"
	"gym_schedule_bot/internal/infra/bink"
	infrabrowser "gym_schedule_bot/internal/infra/browser"
	"gym_schedule_bot/internal/infra/coach"
	"gym_schedule_bot/internal/infra/config"
	"gym_schedule_bot/internal/infra/database"
	"gym_schedule_bot/internal/infra/logger"
	"gym_schedule_bot/internal/infra/telegram"
)

// browserCallTimeout bounds each individual driver call (navigate, click,
// evaluate). Wait points use the configured WaitTimeout instead.
const browserCallTimeout = 30 * time.Second

// runtime holds the collaborators shared by every command: config, the
// logger, the notifier and the optional Telegram bot and database handle.
// Browser sessions are NOT shared; each run opens and closes its own.
type runtime struct {
	cfg      *config.AppConfig
	log      *logrus.Entry
	notifier app.Notifier
	bot      *telebot.Bot
	db       *sql.DB
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	logger.Init(cfg)
	log := logrus.NewEntry(logger.Get())

	rt := &runtime{cfg: cfg, log: log}

	if cfg.TelegramConfigured() {
		bot, err := telebot.NewBot(telebot.Settings{
			Token:  cfg.TelegramToken,
			Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
			OnError: func(err error, c telebot.Context) {
				log.WithError(err).Error("telebot error")
			},
		})
		if err != nil {
			return nil, fmt.Errorf("creating telegram bot: %w", err)
		}
		rt.bot = bot
		rt.notifier = telegram.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, log)
	} else {
		log.Info("telegram not configured, notifications go to the log")
		rt.notifier = telegram.LogNotifier{Log: log}
	}

	return rt, nil
}

func (rt *runtime) Close() {
	if rt.db != nil {
		rt.db.Close()
	}
}

// newSession launches a fresh browser and wraps it in a site client. The
// returned cancel func tears the browser down; callers defer it so a run
// never leaks a browser process.
func (rt *runtime) newSession(ctx context.Context) (*bink.Client, context.CancelFunc, error) {
	if err := rt.cfg.RequireCredentials(); err != nil {
		return nil, nil, err
	}
	page, cancel, err := infrabrowser.New(ctx, rt.cfg.Headless, browserCallTimeout, rt.log)
	if err != nil {
		return nil, nil, err
	}
	client := bink.NewClient(page, bink.Options{
		BaseURL:        rt.cfg.BaseURL,
		Email:          rt.cfg.Email,
		Password:       rt.cfg.Password,
		SettleInterval: rt.cfg.SettleInterval,
		WaitTimeout:    rt.cfg.WaitTimeout,
		Log:            rt.log,
	})
	return client, cancel, nil
}

// runRepository opens the optional relational run log. Returns nil when
// DATABASE_URL is not configured.
func (rt *runtime) runRepository(ctx context.Context) (report.RunRepository, error) {
	if rt.cfg.DatabaseURL == "" {
		return nil, nil
	}
	db, err := database.NewPostgresConnection(rt.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	rt.db = db
	repo := database.NewPostgresRunRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("preparing run log schema: %w", err)
	}
	return repo, nil
}

func (rt *runtime) advisor() app.Advisor {
	return coach.New(rt.cfg.OpenAIKey, rt.cfg.OpenAIModel, rt.log)
}
