package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleHelp)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/hello_world", bot.MatchTypePrefix, h.handleHello)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/lowprice", bot.MatchTypePrefix, h.handleLowprice)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/bestdeal", bot.MatchTypePrefix, h.handleBestdeal)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mycity", bot.MatchTypePrefix, h.handleMyCity)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/history", bot.MatchTypePrefix, h.handleHistory)
	// Exact match: "/stat" is a prefix of "/start".
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/stat", bot.MatchTypeExact, h.handleStat)

	// Search flow callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "area_", bot.MatchTypePrefix, h.handleAreaSelect)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "number_", bot.MatchTypePrefix, h.handleNumberSelect)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "has_", bot.MatchTypePrefix, h.handlePhotoChoice)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "cal_", bot.MatchTypePrefix, h.handleCalendar)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "search", bot.MatchTypeExact, h.handleStartSearch)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "stop", bot.MatchTypeExact, h.handleStop)

	// Hotel browsing callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "hotel_", bot.MatchTypePrefix, h.handleHotelDetail)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "next", bot.MatchTypeExact, h.handleHotelsNext)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "back", bot.MatchTypeExact, h.handleHotelsBack)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "to_hotels", bot.MatchTypeExact, h.handleBackToHotels)

	// History callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "request_", bot.MatchTypePrefix, h.handleRequestInfo)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "delreq_", bot.MatchTypePrefix, h.handleRequestDelete)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "next_step", bot.MatchTypeExact, h.handleRequestsNext)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "back_step", bot.MatchTypeExact, h.handleRequestsBack)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "to_requests", bot.MatchTypeExact, h.handleBackToRequests)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "finish", bot.MatchTypeExact, h.handleHistoryFinish)

	// Service callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "delete", bot.MatchTypeExact, h.handleDeleteMessage)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "cur", bot.MatchTypeExact, h.handleNoop)
}

// handleNoop acknowledges callbacks from non-interactive buttons such as the
// pagination indicator.
func (h *Handler) handleNoop(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery != nil {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
		})
	}
}

// callbackMessage extracts the accessible message a callback was attached to.
func callbackMessage(update *models.Update) *models.Message {
	if update.CallbackQuery == nil {
		return nil
	}
	return update.CallbackQuery.Message.Message
}

func (h *Handler) answerCallback(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
		Text:            text,
	})
}
