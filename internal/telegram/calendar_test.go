package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarKeyboardLayout(t *testing.T) {
	// March 2026 starts on a Sunday, so the first day row has six leading
	// placeholders.
	kb := CalendarKeyboard(2026, time.March)

	require.GreaterOrEqual(t, len(kb.InlineKeyboard), 3)
	header := kb.InlineKeyboard[0]
	require.Len(t, header, 3)
	assert.Equal(t, "Март 2026", header[1].Text)

	weekdays := kb.InlineKeyboard[1]
	require.Len(t, weekdays, 7)
	assert.Equal(t, "Пн", weekdays[0].Text)
	assert.Equal(t, "Вс", weekdays[6].Text)

	firstWeek := kb.InlineKeyboard[2]
	require.Len(t, firstWeek, 7)
	assert.Equal(t, " ", firstWeek[0].Text)
	assert.Equal(t, "1", firstWeek[6].Text)

	// Every day row has exactly seven cells.
	for _, row := range kb.InlineKeyboard[2:] {
		assert.Len(t, row, 7)
	}
}

func TestCalendarCallbackRoundTrip(t *testing.T) {
	data := calData(CalActionDay, 2026, time.September, 14)
	sel, ok := ParseCalendarCallback(data)
	require.True(t, ok)
	assert.Equal(t, CalActionDay, sel.Action)
	assert.Equal(t, time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC), sel.Date())
}

func TestParseCalendarCallbackRejectsGarbage(t *testing.T) {
	for _, data := range []string{
		"cal_day_2026_9",
		"cal_jump_2026_9_14",
		"cal_day_2026_13_1",
		"number_3",
		"",
	} {
		_, ok := ParseCalendarCallback(data)
		assert.False(t, ok, "data %q", data)
	}
}
