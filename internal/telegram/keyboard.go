package telegram

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/easy-travel/hotelbot/internal/config"
)

// InlineButton creates a single inline keyboard button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ButtonRow creates a row of inline buttons.
func ButtonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}

// NumberKeyboard returns a rows×cols grid of numeric buttons 1..rows*cols
// with callback data "number_<n>".
func NumberKeyboard(rows, cols int) *models.InlineKeyboardMarkup {
	kb := make([][]models.InlineKeyboardButton, 0, rows)
	for i := 0; i < rows; i++ {
		row := make([]models.InlineKeyboardButton, 0, cols)
		for j := 0; j < cols; j++ {
			n := j + 1 + i*cols
			row = append(row, InlineButton(fmt.Sprintf("%d⃣", n), fmt.Sprintf("number_%d", n)))
		}
		kb = append(kb, row)
	}
	return InlineKeyboard(kb...)
}

// YesNoKeyboard asks for the photo preference.
func YesNoKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(ButtonRow(
		InlineButton("Да", "has_yes"),
		InlineButton("Нет", "has_no"),
	))
}

// DeleteKeyboard offers to remove the bot's own message.
func DeleteKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(ButtonRow(InlineButton("❎ Удалить это сообщение", "delete")))
}

// DeleteStopKeyboard offers to remove the message or cancel the search.
func DeleteStopKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(
		ButtonRow(InlineButton("❎ Удалить это сообщение", "delete")),
		ButtonRow(InlineButton("❌ Закончить поиск", "stop")),
	)
}

// StartSearchKeyboard shows the final confirmation button.
func StartSearchKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(ButtonRow(InlineButton("🚀 СТАРТ", "search")))
}

// BackToHotelsKeyboard navigates back to the hotel list.
func BackToHotelsKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(ButtonRow(InlineButton("К списку отелей", "to_hotels")))
}

// HistoryActionKeyboard offers to delete a stored request or return to the
// request list.
func HistoryActionKeyboard(requestID int64) *models.InlineKeyboardMarkup {
	return InlineKeyboard(ButtonRow(
		InlineButton("Удалить этот запрос", fmt.Sprintf("delreq_%d", requestID)),
		InlineButton("Вернуться к списку запросов", "to_requests"),
	))
}

// LocationKeyboard is a one-time reply keyboard requesting the user's
// location.
func LocationKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{{
			{Text: "📍 Моё местоположение", RequestLocation: true},
		}},
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}

// NavRow builds the Назад | current/total | Вперёд pagination row.
func NavRow(page, totalPages int, backData, nextData string) []models.InlineKeyboardButton {
	return ButtonRow(
		InlineButton("Назад", backData),
		InlineButton(fmt.Sprintf("%d/%d", page+1, totalPages), "cur"),
		InlineButton("Вперёд", nextData),
	)
}

// NumberGrid returns the default count-selection keyboard.
func NumberGrid() *models.InlineKeyboardMarkup {
	return NumberKeyboard(config.NumberKeyboardRows, config.NumberKeyboardCols)
}
