package telegram

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
)

// Notifier sends service notices (startup, shutdown, faults) to the admin
// chats.
type Notifier struct {
	bot      *bot.Bot
	adminIDs []int64
}

func NewNotifier(b *bot.Bot, adminIDs []int64) *Notifier {
	return &Notifier{bot: b, adminIDs: adminIDs}
}

// Notify delivers the message to every configured admin. Failures are
// logged and do not stop delivery to the remaining admins.
func (n *Notifier) Notify(message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, id := range n.adminIDs {
		_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: id,
			Text:   message,
		})
		if err != nil {
			slog.Error("failed to notify admin", "admin_id", id, "error", err)
		}
	}
}
