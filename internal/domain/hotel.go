package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MilesPerKm converts kilometres into the miles the hotel API reports
// distances in.
const MilesPerKm = 0.621371

// Hotel is one search result row, persisted in the order the ranker
// produced it. Center is the distance to the destination in miles.
type Hotel struct {
	ID         int64
	UserID     int64
	RequestID  int64
	DateReport time.Time
	HotelID    string
	Name       string
	Address    string
	Center     float64
	Price      decimal.Decimal
	Photos     []string
}

// CenterKm returns the distance to the center in kilometres.
func (h Hotel) CenterKm() float64 {
	return h.Center / MilesPerKm
}

// TotalCost returns the cost of a stay of the given number of nights.
func (h Hotel) TotalCost(nights int) decimal.Decimal {
	return h.Price.Mul(decimal.NewFromInt(int64(nights)))
}

// URL returns the hotels.com information page for the hotel.
func (h Hotel) URL() string {
	return fmt.Sprintf("https://www.hotels.com/h%s.Hotel-Information", h.HotelID)
}
