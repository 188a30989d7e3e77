package handler

import (
	"fmt"
	"math"
	"strings"

	"github.com/easy-travel/hotelbot/internal/domain"
)

// summaryText renders the collected search parameters before the search runs.
func summaryText(params domain.SearchParams) string {
	priceMin, priceMax := "нет", "нет"
	centerMin, centerMax := "нет", "нет"
	if params.Mode.UsesPriceFilter() {
		priceMin = fmt.Sprintf("%d", params.PriceMin)
		priceMax = fmt.Sprintf("%d", params.PriceMax)
		centerMin = fmt.Sprintf("%d", params.CenterMin)
		centerMax = fmt.Sprintf("%d", params.CenterMax)
	}

	var sb strings.Builder
	sb.WriteString("✅ Ок!\n")
	fmt.Fprintf(&sb, "<b>Тип поиска</b>: %s\n", params.Mode.Label())
	fmt.Fprintf(&sb, "<b>Место</b>: %s\n", params.AreaName)
	fmt.Fprintf(&sb, "<b>Количество отелей:</b> %d\n", params.AmountHotels)
	fmt.Fprintf(&sb, "<b>Количество фотографий:</b> %d\n", params.AmountPhotos)
	fmt.Fprintf(&sb, "<b>Количество ночей:</b> %d (c %s по %s)\n",
		params.Nights(), params.CheckIn.Format("2006-01-02"), params.CheckOut.Format("2006-01-02"))
	fmt.Fprintf(&sb, "<b>Минимальная цена, $:</b> %s\n", priceMin)
	fmt.Fprintf(&sb, "<b>Максимальная цена, $:</b> %s\n", priceMax)
	fmt.Fprintf(&sb, "<b>Минимальное расстояние до центра, км:</b> %s\n", centerMin)
	fmt.Fprintf(&sb, "<b>Максимальное расстояние до центра, км:</b> %s\n", centerMax)
	return sb.String()
}

// hotelDetailText renders the full hotel card shown when a hotel is picked
// from the list.
func hotelDetailText(hotel domain.Hotel, nights int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏨 <b>%s</b>\n", hotel.Name)
	fmt.Fprintf(&sb, "📍 <b>Адрес:</b>  %s\n", hotel.Address)
	fmt.Fprintf(&sb, "📏 <b>Расстояние до центра:</b>  %d км\n", int(math.Round(hotel.CenterKm())))
	fmt.Fprintf(&sb, "💲 <b>Цена за ночь:</b>  %s $\n", hotel.Price.Round(0))
	fmt.Fprintf(&sb, "💰 <b>Cтоимость за %d ноч.:</b>  %s $\n", nights, hotel.TotalCost(nights).Round(0))
	fmt.Fprintf(&sb, "🔗 <b>Ссылка:</b>  %s", hotel.URL())
	return sb.String()
}

// historyHotelText renders one hotel entry inside a stored request view.
func historyHotelText(hotel domain.Hotel) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏨 <b>%s</b>\n", hotel.Name)
	fmt.Fprintf(&sb, "📍 <b>Адрес:</b>  %s\n", hotel.Address)
	fmt.Fprintf(&sb, "📏 <b>Расстояние до центра:</b>  %d км\n", int(math.Round(hotel.CenterKm())))
	fmt.Fprintf(&sb, "💲 <b>Цена за ночь:</b>  %s $\n", hotel.Price.Round(0))
	fmt.Fprintf(&sb, "🔗 <b>Ссылка:</b>  %s\n\n\n", hotel.URL())
	return sb.String()
}
