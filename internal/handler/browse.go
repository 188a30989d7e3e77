package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/easy-travel/hotelbot/internal/config"
	"github.com/easy-travel/hotelbot/internal/domain"
	"github.com/easy-travel/hotelbot/internal/session"
	tg "github.com/easy-travel/hotelbot/internal/telegram"
)

// hotelsKeyboard renders the current page of found hotels plus navigation.
func (h *Handler) hotelsKeyboard(state *session.State, shift int) *models.InlineKeyboardMarkup {
	page, start, end := tg.Paginate(state.Page, shift, config.HotelsPerPage, len(state.Hotels))
	state.Page = page

	rows := make([][]models.InlineKeyboardButton, 0, config.HotelsPerPage+2)
	for _, hotel := range tg.PageSlice(state.Hotels, start, end) {
		label := hotel.Name + ", " + hotel.Price.Round(0).String() + " $ за ночь"
		rows = append(rows, tg.ButtonRow(tg.InlineButton(label, "hotel_"+hotel.HotelID)))
	}
	rows = append(rows, tg.NavRow(page, tg.TotalPages(len(state.Hotels), config.HotelsPerPage), "back", "next"))
	rows = append(rows, tg.ButtonRow(tg.InlineButton("Закончить просмотр запросов", "stop")))
	return tg.InlineKeyboard(rows...)
}

func (h *Handler) handleHotelsNext(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.shiftHotels(ctx, b, update, 1)
}

func (h *Handler) handleHotelsBack(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.shiftHotels(ctx, b, update, -1)
}

func (h *Handler) handleBackToHotels(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.shiftHotels(ctx, b, update, 0)
}

func (h *Handler) shiftHotels(ctx context.Context, b *bot.Bot, update *models.Update, shift int) {
	h.answerCallback(ctx, b, update, "")
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	state := h.sessions.Get(update.CallbackQuery.From.ID)
	if state == nil || state.Step != session.StepBrowse {
		return
	}

	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "Варианты отелей",
		ReplyMarkup: h.hotelsKeyboard(state, shift),
	})
}

func (h *Handler) handleHotelDetail(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.answerCallback(ctx, b, update, "")
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	state := h.sessions.Get(update.CallbackQuery.From.ID)
	if state == nil || state.Step != session.StepBrowse {
		return
	}

	hotelID := strings.TrimPrefix(update.CallbackQuery.Data, "hotel_")
	var hotel *domain.Hotel
	for i := range state.Hotels {
		if state.Hotels[i].HotelID == hotelID {
			hotel = &state.Hotels[i]
			break
		}
	}
	if hotel == nil {
		return
	}

	if len(hotel.Photos) > 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    msg.Chat.ID,
			Text:      "<b>" + hotel.Name + "</b>, " + hotel.Price.Round(0).String() + " $ за ночь",
			ParseMode: models.ParseModeHTML,
		})
		h.sendPhotoAlbum(ctx, b, msg.Chat.ID, hotel.Photos)
	}

	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        hotelDetailText(*hotel, state.Params.Nights()),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: tg.BackToHotelsKeyboard(),
	})
}

func (h *Handler) sendPhotoAlbum(ctx context.Context, b *bot.Bot, chatID int64, photos []string) {
	media := make([]models.InputMedia, 0, len(photos))
	for _, url := range photos {
		media = append(media, &models.InputMediaPhoto{Media: url})
	}
	b.SendMediaGroup(ctx, &bot.SendMediaGroupParams{
		ChatID: chatID,
		Media:  media,
	})
}
