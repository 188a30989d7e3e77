package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "github.com/easy-travel/hotelbot/internal/telegram"
)

// handleStat reports table counts. The command is not in the public menu;
// non-admins get the unknown-command reply so it stays invisible.
func (h *Handler) handleStat(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !h.cfg.IsAdmin(update.Message.From.ID) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "Не знаю такой команды",
		})
		return
	}

	stats, err := h.store.Stats(ctx)
	if err != nil {
		slog.Error("load stats", "error", err)
		return
	}

	text := fmt.Sprintf("📊 Статистика\n\nПользователей: %d\nЗапросов: %d\nОтелей в отчётах: %d",
		stats.Users, stats.Requests, stats.Hotels)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        text,
		ReplyMarkup: tg.DeleteKeyboard(),
	})
}
