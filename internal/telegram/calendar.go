package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot/models"
)

// Inline month calendar. Callback data format: cal_<action>_<year>_<month>_<day>
// with actions "day", "prev", "next" and "ignore".

const (
	CalActionDay    = "day"
	CalActionPrev   = "prev"
	CalActionNext   = "next"
	CalActionIgnore = "ignore"
)

var monthNames = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

var weekdayNames = [...]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

// CalendarSelection is a decoded calendar callback.
type CalendarSelection struct {
	Action string
	Year   int
	Month  time.Month
	Day    int
}

// Date returns the selected day as a date-only value in UTC.
func (s CalendarSelection) Date() time.Time {
	return time.Date(s.Year, s.Month, s.Day, 0, 0, 0, 0, time.UTC)
}

// CalendarKeyboard renders one month as an inline keyboard: a header with
// month paging arrows, a weekday row and the day grid.
func CalendarKeyboard(year int, month time.Month) *models.InlineKeyboardMarkup {
	ignore := calData(CalActionIgnore, year, month, 0)

	rows := [][]models.InlineKeyboardButton{
		ButtonRow(
			InlineButton("«", calData(CalActionPrev, year, month, 0)),
			InlineButton(fmt.Sprintf("%s %d", monthNames[month-1], year), ignore),
			InlineButton("»", calData(CalActionNext, year, month, 0)),
		),
	}

	weekdays := make([]models.InlineKeyboardButton, 0, len(weekdayNames))
	for _, wd := range weekdayNames {
		weekdays = append(weekdays, InlineButton(wd, ignore))
	}
	rows = append(rows, weekdays)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	// Monday-first column of the month's first day.
	offset := (int(first.Weekday()) + 6) % 7

	row := make([]models.InlineKeyboardButton, 0, 7)
	for i := 0; i < offset; i++ {
		row = append(row, InlineButton(" ", ignore))
	}
	for day := 1; day <= daysInMonth; day++ {
		row = append(row, InlineButton(strconv.Itoa(day), calData(CalActionDay, year, month, day)))
		if len(row) == 7 {
			rows = append(rows, row)
			row = make([]models.InlineKeyboardButton, 0, 7)
		}
	}
	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, InlineButton(" ", ignore))
		}
		rows = append(rows, row)
	}

	return InlineKeyboard(rows...)
}

// ParseCalendarCallback decodes callback data produced by CalendarKeyboard.
func ParseCalendarCallback(data string) (CalendarSelection, bool) {
	parts := strings.Split(data, "_")
	if len(parts) != 5 || parts[0] != "cal" {
		return CalendarSelection{}, false
	}
	year, err1 := strconv.Atoi(parts[2])
	month, err2 := strconv.Atoi(parts[3])
	day, err3 := strconv.Atoi(parts[4])
	if err1 != nil || err2 != nil || err3 != nil || month < 1 || month > 12 {
		return CalendarSelection{}, false
	}
	switch parts[1] {
	case CalActionDay, CalActionPrev, CalActionNext, CalActionIgnore:
	default:
		return CalendarSelection{}, false
	}
	return CalendarSelection{
		Action: parts[1],
		Year:   year,
		Month:  time.Month(month),
		Day:    day,
	}, true
}

func calData(action string, year int, month time.Month, day int) string {
	return fmt.Sprintf("cal_%s_%d_%d_%d", action, year, int(month), day)
}
