package notify

import (
	"context"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/nikmy/interviewd/pkg/errors"
)

type TelegramConfig struct {
	Token        string        `yaml:"token"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

func NewTelegram(cfg TelegramConfig) (Notifier, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.PollInterval},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create telegram bot")
	}

	return &telegramNotifier{bot: bot}, nil
}

type telegramNotifier struct {
	bot *telebot.Bot
}

type chat int64

func (c chat) Recipient() string {
	return strconv.FormatInt(int64(c), 10)
}

func (t *telegramNotifier) Notify(_ context.Context, event Event) error {
	msg := render(event)

	var errs []error
	for _, id := range []int64{event.EmployerChat, event.CandidateChat} {
		if id == 0 {
			continue
		}

		_, err := t.bot.Send(chat(id), msg, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
		if err != nil {
			errs = append(errs, errors.WrapFailf(err, "send to chat %d", id))
		}
	}

	return errors.Collapse(errs)
}
