package handler

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/easy-travel/hotelbot/internal/session"
	tg "github.com/easy-travel/hotelbot/internal/telegram"
)

// HandleDefault routes updates no registered handler claimed: location
// messages for the geolocation flow and free-form text.
func (h *Handler) HandleDefault(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}
	if msg.Location != nil {
		h.HandleLocation(ctx, b, update)
		return
	}
	if msg.Text == "" {
		return
	}

	state := h.sessions.Get(msg.From.ID)
	if state == nil {
		if msg.Text == "Привет" {
			h.handleHello(ctx, b, update)
			return
		}
		// Known commands never reach the default handler, so a leading
		// slash here is an unknown command and gets the same echo.
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   "Не знаю такой команды",
		})
		return
	}

	switch state.Step {
	case session.StepCity:
		h.enterCity(ctx, b, msg, state)
	case session.StepPriceMin:
		h.enterPriceMin(ctx, b, msg, state)
	case session.StepPriceMax:
		h.enterPriceMax(ctx, b, msg, state)
	case session.StepCenterMin:
		h.enterCenterMin(ctx, b, msg, state)
	case session.StepCenterMax:
		h.enterCenterMax(ctx, b, msg, state)
	case session.StepGeo:
		// Typed text instead of a location share.
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text: "К сожалению, не смог получить ваши координаты 😔.\n" +
				"Можно попробовать другой вид поиска:\n\n/lowprice\n\n/bestdeal",
		})
		h.sessions.End(msg.From.ID)
	default:
		h.remindButtons(ctx, b, msg)
	}
}

// remindButtons nudges the user back to the inline keyboard when they type
// during a button-driven step.
func (h *Handler) remindButtons(ctx context.Context, b *bot.Bot, msg *models.Message) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "😭 Зачем пишешь? Надо кнопку тыкать! Посмотри сообщение выше и, пожалуйста, ткни кнопку 🔘",
		ReplyMarkup: tg.DeleteStopKeyboard(),
	})
	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
}

func (h *Handler) handleDeleteMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.answerCallback(ctx, b, update, "Сообщение удалено")
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	tg.DeleteAfter(b, msg.Chat.ID, msg.ID, time.Second)
}
