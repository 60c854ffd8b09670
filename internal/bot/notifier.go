package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"schedule-planner/internal/service"
)

// Notifier pushes the daily digest to a single Telegram chat. It is
// send-only; the planner's interactive surface is the HTTP API.
type Notifier struct {
	api       *tgbotapi.BotAPI
	chatID    int64
	reminders *service.ReminderService
}

func New(token string, chatID int64, reminders *service.ReminderService) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	log.Printf("Telegram notifier authorized as @%s", api.Self.UserName)
	return &Notifier{api: api, chatID: chatID, reminders: reminders}, nil
}

// SendDailyDigest builds and delivers the digest for today.
func (n *Notifier) SendDailyDigest(ctx context.Context) error {
	text, err := n.reminders.DailyDigest(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("build digest: %w", err)
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	return nil
}
