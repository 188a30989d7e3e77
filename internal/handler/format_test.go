package handler

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/easy-travel/hotelbot/internal/domain"
)

func TestSummaryTextCheapestHidesPriceFilter(t *testing.T) {
	text := summaryText(domain.SearchParams{
		Mode:         domain.ModeCheapest,
		AreaName:     "Москва",
		AmountHotels: 3,
		CheckIn:      time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, text, "Поиск дешёвых отелей")
	assert.Contains(t, text, "<b>Место</b>: Москва")
	assert.Contains(t, text, "<b>Количество ночей:</b> 3")
	assert.Contains(t, text, "<b>Минимальная цена, $:</b> нет")
	assert.Contains(t, text, "<b>Максимальное расстояние до центра, км:</b> нет")
}

func TestSummaryTextBestDealShowsBounds(t *testing.T) {
	text := summaryText(domain.SearchParams{
		Mode:      domain.ModeBestDeal,
		AreaName:  "Казань",
		CheckIn:   time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC),
		PriceMin:  20,
		PriceMax:  150,
		CenterMin: 0,
		CenterMax: 5,
	})

	assert.Contains(t, text, "<b>Минимальная цена, $:</b> 20")
	assert.Contains(t, text, "<b>Максимальная цена, $:</b> 150")
	assert.Contains(t, text, "<b>Минимальное расстояние до центра, км:</b> 0")
	assert.Contains(t, text, "<b>Максимальное расстояние до центра, км:</b> 5")
}

func TestHotelDetailText(t *testing.T) {
	hotel := domain.Hotel{
		HotelID: "12345",
		Name:    "Гранд Отель",
		Address: "ул. Ленина, 1",
		Center:  1.2, // miles
		Price:   decimal.NewFromFloat(99.5),
	}

	text := hotelDetailText(hotel, 3)
	assert.Contains(t, text, "🏨 <b>Гранд Отель</b>")
	assert.Contains(t, text, "ул. Ленина, 1")
	// 1.2 miles is about 2 km.
	assert.Contains(t, text, "<b>Расстояние до центра:</b>  2 км")
	assert.Contains(t, text, "<b>Цена за ночь:</b>  100 $")
	assert.Contains(t, text, "<b>Cтоимость за 3 ноч.:</b>  299 $")
	assert.Contains(t, text, "https://www.hotels.com/h12345.Hotel-Information")
}
