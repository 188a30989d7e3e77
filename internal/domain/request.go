package domain

import "time"

// SearchMode selects one of the three supported search flows.
type SearchMode string

const (
	// ModeCheapest returns the top-N cheapest hotels in an area.
	ModeCheapest SearchMode = "lowprice"
	// ModeBestDeal filters an area by price range and distance to the center.
	ModeBestDeal SearchMode = "bestdeal"
	// ModeMyCity is ModeBestDeal anchored at the user's shared location.
	ModeMyCity SearchMode = "mycity"
)

// Label returns the human-readable search type shown in summaries and history.
func (m SearchMode) Label() string {
	switch m {
	case ModeCheapest:
		return "Поиск дешёвых отелей"
	case ModeBestDeal:
		return "По цене и расположению от центра"
	case ModeMyCity:
		return "В моём городе"
	}
	return string(m)
}

// UsesPriceFilter reports whether the mode collects the price/distance
// filter sub-sequence.
func (m SearchMode) UsesPriceFilter() bool {
	return m == ModeBestDeal || m == ModeMyCity
}

// SearchParams is the full parameter set collected over one conversation.
// Area fields are set for the area-based modes, Latitude/Longitude for
// ModeMyCity, and the price/distance bounds only when UsesPriceFilter.
type SearchParams struct {
	Mode         SearchMode
	City         string
	AreaID       string
	AreaName     string
	Latitude     float64
	Longitude    float64
	AmountHotels int
	HasPhoto     bool
	AmountPhotos int
	CheckIn      time.Time
	CheckOut     time.Time
	PriceMin     int
	PriceMax     int
	CenterMin    int
	CenterMax    int
}

// Nights returns the length of the stay in nights.
func (p SearchParams) Nights() int {
	return int(p.CheckOut.Sub(p.CheckIn).Hours() / 24)
}

// SearchRequest is one persisted, completed parameter set. Immutable after
// creation; removed only by explicit user action from the history view.
type SearchRequest struct {
	ID          int64
	UserID      int64
	DateRequest time.Time
	Params      SearchParams
}
