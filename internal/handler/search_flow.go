package handler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"

	"github.com/easy-travel/hotelbot/internal/domain"
	"github.com/easy-travel/hotelbot/internal/session"
	tg "github.com/easy-travel/hotelbot/internal/telegram"
)

func (h *Handler) handleLowprice(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.startCityFlow(ctx, b, update, domain.ModeCheapest)
}

func (h *Handler) handleBestdeal(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.startCityFlow(ctx, b, update, domain.ModeBestDeal)
}

func (h *Handler) startCityFlow(ctx context.Context, b *bot.Bot, update *models.Update, mode domain.SearchMode) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	slog.Info("search started", "mode", mode, "user_id", update.Message.From.ID)

	state := h.sessions.Begin(update.Message.From.ID, mode)
	state.Step = session.StepCity

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Введите название города",
		ReplyMarkup: tg.DeleteStopKeyboard(),
	})
}

func (h *Handler) handleMyCity(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	slog.Info("search started", "mode", domain.ModeMyCity, "user_id", update.Message.From.ID)

	state := h.sessions.Begin(update.Message.From.ID, domain.ModeMyCity)
	state.Step = session.StepGeo
	state.Params.AreaName = "в моём городе"

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Отправьте свою геолокацию",
		ReplyMarkup: tg.LocationKeyboard(),
	})
}

// enterCity resolves the typed city into areas and shows the pick list.
func (h *Handler) enterCity(ctx context.Context, b *bot.Bot, msg *models.Message, state *session.State) {
	chatID := msg.Chat.ID
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Сверяюсь с картой. Пожалуйста, подождите...",
		ReplyMarkup: tg.DeleteKeyboard(),
	})

	city := strings.TrimSpace(msg.Text)
	state.Params.City = city

	areas, err := h.search.LookupAreas(ctx, city)
	if err != nil {
		slog.Error("lookup areas", "error", err)
	}
	if len(areas) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Не могу получить информацию по этому городу. Давайте попробуем ещё раз /lowprice",
		})
		tg.TryDelete(ctx, b, chatID, msg.ID)
		h.sessions.End(msg.From.ID)
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Пожалуйста, уточните место: ",
		ReplyMarkup: h.areaKeyboard(ctx, areas),
	})
	tg.TryDelete(ctx, b, chatID, msg.ID)
	state.Step = session.StepArea
}

// areaKeyboard builds one button per area. Area names do not fit in callback
// data, so each gets a short stored code instead.
func (h *Handler) areaKeyboard(ctx context.Context, areas []domain.Area) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(areas))
	for _, area := range areas {
		code := uuid.NewString()
		if err := h.store.AddCallback(ctx, code, area.Name); err != nil {
			slog.Error("store area callback", "error", err)
			continue
		}
		rows = append(rows, tg.ButtonRow(
			tg.InlineButton(area.Name, "area_"+area.ID+"_"+code),
		))
	}
	return tg.InlineKeyboard(rows...)
}

func (h *Handler) handleAreaSelect(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.answerCallback(ctx, b, update, "")
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	userID := update.CallbackQuery.From.ID
	state := h.sessions.Get(userID)
	if state == nil || state.Step != session.StepArea {
		return
	}

	parts := strings.SplitN(update.CallbackQuery.Data, "_", 3)
	if len(parts) != 3 {
		return
	}
	areaName, err := h.store.GetCallbackArea(ctx, parts[2])
	if err != nil {
		slog.Error("resolve area callback", "error", err)
		return
	}
	state.Params.AreaID = parts[1]
	state.Params.AreaName = areaName

	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "Какое количество отелей найти?",
		ReplyMarkup: tg.NumberGrid(),
	})
	state.Step = session.StepHotelCount
}

// HandleLocation advances the geolocation flow when the user shares their
// position.
func (h *Handler) HandleLocation(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Location == nil {
		return
	}
	state := h.sessions.Get(msg.From.ID)
	if state == nil || state.Step != session.StepGeo {
		return
	}

	state.Params.Latitude = msg.Location.Latitude
	state.Params.Longitude = msg.Location.Longitude
	slog.Info("location received", "latitude", msg.Location.Latitude, "longitude", msg.Location.Longitude)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "Какое количество отелей найти?",
		ReplyMarkup: tg.NumberGrid(),
	})
	state.Step = session.StepHotelCount
}

func (h *Handler) handleNumberSelect(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.answerCallback(ctx, b, update, "")
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	state := h.sessions.Get(update.CallbackQuery.From.ID)
	if state == nil {
		return
	}

	n, ok := session.ParseCount(strings.TrimPrefix(update.CallbackQuery.Data, "number_"))
	if !ok {
		return
	}

	switch state.Step {
	case session.StepHotelCount:
		state.Params.AmountHotels = n
		tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        "Желаете загрузить фото отелей?",
			ReplyMarkup: tg.YesNoKeyboard(),
		})
		state.Step = session.StepPhotoChoice
	case session.StepPhotoCount:
		state.Params.AmountPhotos = n
		tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
		h.askCheckIn(ctx, b, msg.Chat.ID, state)
	}
}

func (h *Handler) handlePhotoChoice(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.answerCallback(ctx, b, update, "")
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	state := h.sessions.Get(update.CallbackQuery.From.ID)
	if state == nil || state.Step != session.StepPhotoChoice {
		return
	}

	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	if update.CallbackQuery.Data == "has_yes" {
		state.Params.HasPhoto = true
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        "Какое количество фотографий загрузить?",
			ReplyMarkup: tg.NumberGrid(),
		})
		state.Step = session.StepPhotoCount
		return
	}

	state.Params.HasPhoto = false
	state.Params.AmountPhotos = 0
	h.askCheckIn(ctx, b, msg.Chat.ID, state)
}

func (h *Handler) askCheckIn(ctx context.Context, b *bot.Bot, chatID int64, state *session.State) {
	now := time.Now()
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Выберите дату заезда",
		ReplyMarkup: tg.CalendarKeyboard(now.Year(), now.Month()),
	})
	state.Step = session.StepCheckIn
}

func (h *Handler) handleCalendar(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.answerCallback(ctx, b, update, "")
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	state := h.sessions.Get(update.CallbackQuery.From.ID)
	if state == nil {
		return
	}
	if state.Step != session.StepCheckIn && state.Step != session.StepCheckOut {
		return
	}

	sel, ok := tg.ParseCalendarCallback(update.CallbackQuery.Data)
	if !ok {
		return
	}

	switch sel.Action {
	case tg.CalActionIgnore:
		return
	case tg.CalActionPrev:
		month := time.Date(sel.Year, sel.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		h.flipCalendar(ctx, b, msg, month)
		return
	case tg.CalActionNext:
		month := time.Date(sel.Year, sel.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		h.flipCalendar(ctx, b, msg, month)
		return
	}

	date := sel.Date()
	if state.Step == session.StepCheckIn {
		h.enterCheckIn(ctx, b, msg, state, date)
	} else {
		h.enterCheckOut(ctx, b, msg, state, date)
	}
}

func (h *Handler) flipCalendar(ctx context.Context, b *bot.Bot, msg *models.Message, month time.Time) {
	b.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		ReplyMarkup: tg.CalendarKeyboard(month.Year(), month.Month()),
	})
}

func (h *Handler) enterCheckIn(ctx context.Context, b *bot.Bot, msg *models.Message, state *session.State, date time.Time) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !session.ValidCheckIn(date, today) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        "⛔ Нельзя выбрать дату из прошлого! Введите корректную дату",
			ReplyMarkup: tg.CalendarKeyboard(now.Year(), now.Month()),
		})
		tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
		return
	}

	state.Params.CheckIn = date
	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "Выберите дату отъезда",
		ReplyMarkup: tg.CalendarKeyboard(date.Year(), date.Month()),
	})
	state.Step = session.StepCheckOut
}

func (h *Handler) enterCheckOut(ctx context.Context, b *bot.Bot, msg *models.Message, state *session.State, date time.Time) {
	if !session.ValidCheckOut(date, state.Params.CheckIn) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        "⛔ Дата отъезда не может быть раньше даты приезда! Введите корректную дату",
			ReplyMarkup: tg.CalendarKeyboard(state.Params.CheckIn.Year(), state.Params.CheckIn.Month()),
		})
		tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
		return
	}

	state.Params.CheckOut = date
	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)

	if state.Params.Mode.UsesPriceFilter() {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        "Введите минимальную цену в $",
			ReplyMarkup: tg.DeleteKeyboard(),
		})
		state.Step = session.StepPriceMin
		return
	}

	h.askConfirm(ctx, b, msg.Chat.ID, state)
}

func (h *Handler) askConfirm(ctx context.Context, b *bot.Bot, chatID int64, state *session.State) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Нажмите СТАРТ, чтобы начать поиск",
		ReplyMarkup: tg.StartSearchKeyboard(),
	})
	state.Step = session.StepConfirm
}

func (h *Handler) enterPriceMin(ctx context.Context, b *bot.Bot, msg *models.Message, state *session.State) {
	n, ok := session.ParseCount(msg.Text)
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        "⛔ Цена - это целое положительное число. Введите корректную минимальную цену!",
			ReplyMarkup: tg.DeleteKeyboard(),
		})
		return
	}

	state.Params.PriceMin = n
	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "Введите максимальную цену в $",
		ReplyMarkup: tg.DeleteKeyboard(),
	})
	state.Step = session.StepPriceMax
}

func (h *Handler) enterPriceMax(ctx context.Context, b *bot.Bot, msg *models.Message, state *session.State) {
	n, ok := session.ParseMax(msg.Text, state.Params.PriceMin)
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text: "⛔ Максимальная цена - это целое положительное число. " +
				"Максимальная цена должна быть больше минимальной. " +
				"Введите корректную максимальную цену!",
			ReplyMarkup: tg.DeleteKeyboard(),
		})
		return
	}

	state.Params.PriceMax = n
	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "Введите минимальное расстояние от центра в км",
		ReplyMarkup: tg.DeleteKeyboard(),
	})
	state.Step = session.StepCenterMin
}

func (h *Handler) enterCenterMin(ctx context.Context, b *bot.Bot, msg *models.Message, state *session.State) {
	n, ok := session.ParseMin(msg.Text)
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        "⛔ Расстояние - это целое положительное число. Введите корректное минимальное расстояние!",
			ReplyMarkup: tg.DeleteKeyboard(),
		})
		return
	}

	state.Params.CenterMin = n
	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "Введите максимальное расстояние до центра в км",
		ReplyMarkup: tg.DeleteKeyboard(),
	})
	state.Step = session.StepCenterMax
}

func (h *Handler) enterCenterMax(ctx context.Context, b *bot.Bot, msg *models.Message, state *session.State) {
	n, ok := session.ParseMax(msg.Text, state.Params.CenterMin)
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text: "⛔ Максимальное расстояние - это целое положительное число. " +
				"Максимальное расстояние должно быть больше минимального. " +
				"Введите корректное максимальное расстояние!",
			ReplyMarkup: tg.DeleteKeyboard(),
		})
		return
	}

	state.Params.CenterMax = n
	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	h.askConfirm(ctx, b, msg.Chat.ID, state)
}

func (h *Handler) handleStartSearch(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.answerCallback(ctx, b, update, "")
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	userID := update.CallbackQuery.From.ID
	state := h.sessions.Get(userID)
	// One confirmation runs one search; a repeated press loses the
	// transition and is dropped.
	if state == nil || !h.sessions.Advance(userID, session.StepConfirm, session.StepBrowse) {
		return
	}

	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    msg.Chat.ID,
		Text:      summaryText(state.Params),
		ParseMode: models.ParseModeHTML,
	})
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "Пожалуйста, подождите! Ищу варианты ...",
		ReplyMarkup: tg.DeleteKeyboard(),
	})

	_, hotels, err := h.search.Run(ctx, userID, state.Params)
	if err != nil {
		slog.Error("run search", "user_id", userID, "error", err)
	}
	if len(hotels) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text: "К сожалению ничего не могу найти для вас 😞\n" +
				"Можно попробовать ещё раз, изменив критерии поиска!\n\n/lowprice\n\n/bestdeal\n\n/mycity",
			ReplyMarkup: tg.DeleteKeyboard(),
		})
		h.sessions.End(userID)
		return
	}

	state.Hotels = hotels
	state.Page = 0
	slog.Info("hotels found", "user_id", userID, "count", len(hotels))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "Варианты отелей:",
		ReplyMarkup: h.hotelsKeyboard(state, 0),
	})
}

func (h *Handler) handleStop(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.answerCallback(ctx, b, update, "")
	msg := callbackMessage(update)
	if msg == nil {
		return
	}
	userID := update.CallbackQuery.From.ID
	state := h.sessions.Get(userID)

	tg.TryDelete(ctx, b, msg.Chat.ID, msg.ID)
	if state != nil && state.Step == session.StepBrowse {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text: "Вы закрыли список предложенных вариантов.\nМожно поискать еще!\n\n/lowprice" +
				"\n\n/bestdeal\n\n/mycity\n\nИстория запросов:\n\n/history",
			ReplyMarkup: tg.DeleteKeyboard(),
		})
	} else {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        "Вы отменили поиск отелей 🙅\nМожет всё же что-нибудь поищем?\n\n/lowprice\n\n/bestdeal\n\n/mycity",
			ReplyMarkup: tg.DeleteKeyboard(),
		})
	}
	slog.Info("search cancelled", "user_id", userID)
	h.sessions.End(userID)
}
