package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/easy-travel/hotelbot/internal/middleware"
	tg "github.com/easy-travel/hotelbot/internal/telegram"
)

const helpText = `Я помогу выбрать тебе отель.

В моём меню доступны следующие команды:

/start выводит приветственное сообщение и подключает вас к боту

/lowprice ищет топ самых дешёвых отелей

/bestdeal ищет отели, наиболее подходящие по цене и расположению от центра города

/mycity ищет отели в вашем городе по цене и расположению от центра

/history показывает историю ваших запросов

/hello_world здоровается с пользователем

/help показывает раздел помощи`

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   fmt.Sprintf("Привет, %s!  😊\nЯ - бот, который поможет тебе выбрать отель.", user.Name),
	})
	tg.TryDelete(ctx, b, update.Message.Chat.ID, update.Message.ID)
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	tg.TryDelete(ctx, b, update.Message.Chat.ID, update.Message.ID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   helpText,
	})
}

func (h *Handler) handleHello(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text: fmt.Sprintf("Привет, %s!  😊\nЯ помогу тебе выбрать отель. "+
			"Доступные команды есть в справке /help и в основном меню.", user.Name),
	})
	tg.TryDelete(ctx, b, update.Message.Chat.ID, update.Message.ID)
}
