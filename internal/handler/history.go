package handler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/easy-travel/hotelbot/internal/config"
	"github.com/easy-travel/hotelbot/internal/session"
	tg "github.com/easy-travel/hotelbot/internal/telegram"
)

func (h *Handler) handleHistory(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	userID := update.Message.From.ID
	slog.Info("history opened", "user_id", userID)

	requests, err := h.history.ListRequests(ctx, userID)
	if err != nil {
		slog.Error("list requests", "error", err)
		return
	}
	if len(requests) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      update.Message.Chat.ID,
			Text:        "<b>История запросов пуста!</b>\nМожно что-нибудь поискать:\n\n/lowprice\n\n/bestdeal",
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: tg.DeleteKeyboard(),
		})
		return
	}

	state := h.sessions.BeginHistory(userID)
	h.sendRequestsPage(ctx, b, update.Message.Chat.ID, userID, state, 0)
}

// sendRequestsPage renders one page of the stored request list.
func (h *Handler) sendRequestsPage(ctx context.Context, b *bot.Bot, chatID, userID int64, state *session.State, shift int) {
	requests, err := h.history.ListRequests(ctx, userID)
	if err != nil {
		slog.Error("list requests", "error", err)
		return
	}

	page, start, end := tg.Paginate(state.Page, shift, config.RequestsPerPage, len(requests))
	state.Page = page

	rows := make([][]models.InlineKeyboardButton, 0, config.RequestsPerPage+2)
	for _, req := range tg.PageSlice(requests, start, end) {
		label := req.Params.Mode.Label() + " " + req.DateRequest.Format("02.01.06 15:04")
		rows = append(rows, tg.ButtonRow(
			tg.InlineButton(label, "request_"+strconv.FormatInt(req.ID, 10)),
		))
	}
	rows = append(rows, tg.NavRow(page, tg.TotalPages(len(requests), config.RequestsPerPage), "back_step", "next_step"))
	rows = append(rows, tg.ButtonRow(tg.InlineButton("Закончить просмотр запросов", "finish")))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "История запросов:",
		ReplyMarkup: tg.InlineKeyboard(rows...),
	})
}

func (h *Handler) handleRequestsNext(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.shiftRequests(ctx, b, update, 1)
}

func (h *Handler) handleRequestsBack(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.shiftRequests(ctx, b, update, -1)
}

func (h *Handler) handleBackToRequests(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.shiftRequests(ctx, b, update, 0)
}

func (h *Handler) shiftRequests(ctx context.Context, b *bot.Bot, update *models.Update, shift int) {
	h.answerCallback(ctx, b, update, "")
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	userID := update.CallbackQuery.From.ID
	state := h.sessions.Get(userID)
	if state == nil || state.Step != session.StepHistory {
		return
	}

	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	h.sendRequestsPage(ctx, b, msg.Chat.ID, userID, state, shift)
}

func (h *Handler) handleRequestInfo(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.answerCallback(ctx, b, update, "")
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	state := h.sessions.Get(update.CallbackQuery.From.ID)
	if state == nil || state.Step != session.StepHistory {
		return
	}

	requestID, err := strconv.ParseInt(strings.TrimPrefix(update.CallbackQuery.Data, "request_"), 10, 64)
	if err != nil {
		return
	}

	// Callback data is client-controlled; only the owner sees a request.
	req, err := h.history.GetRequest(ctx, requestID)
	if err != nil || req.UserID != update.CallbackQuery.From.ID {
		return
	}

	hotels, err := h.history.ListHotels(ctx, requestID)
	if err != nil {
		slog.Error("list request hotels", "request_id", requestID, "error", err)
		return
	}

	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	if len(hotels) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        "Это пустой запрос. Здесь нет отелей",
			ReplyMarkup: tg.HistoryActionKeyboard(requestID),
		})
		return
	}

	var sb strings.Builder
	for _, hotel := range hotels {
		sb.WriteString(historyHotelText(hotel))
	}
	tg.SendLongMessage(ctx, b, msg.Chat.ID, sb.String(), tg.HistoryActionKeyboard(requestID))
}

func (h *Handler) handleRequestDelete(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	userID := update.CallbackQuery.From.ID
	state := h.sessions.Get(userID)
	if state == nil || state.Step != session.StepHistory {
		h.answerCallback(ctx, b, update, "")
		return
	}

	requestID, err := strconv.ParseInt(strings.TrimPrefix(update.CallbackQuery.Data, "delreq_"), 10, 64)
	if err != nil {
		return
	}

	req, err := h.history.GetRequest(ctx, requestID)
	if err != nil || req.UserID != userID {
		h.answerCallback(ctx, b, update, "")
		return
	}

	if err := h.history.Delete(ctx, requestID); err != nil {
		slog.Error("delete request", "request_id", requestID, "error", err)
		h.answerCallback(ctx, b, update, "")
		return
	}
	slog.Info("request deleted", "user_id", userID, "request_id", requestID)

	h.answerCallback(ctx, b, update, "Отели и запрос удалены из истории")
	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	h.sendRequestsPage(ctx, b, msg.Chat.ID, userID, state, 0)
}

func (h *Handler) handleHistoryFinish(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.answerCallback(ctx, b, update, "")
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	userID := update.CallbackQuery.From.ID

	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "Вы вышли из истории запросов",
		ReplyMarkup: tg.DeleteKeyboard(),
	})
	slog.Info("history closed", "user_id", userID)
	h.sessions.End(userID)
}
