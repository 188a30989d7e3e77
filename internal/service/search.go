package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/easy-travel/hotelbot/internal/config"
	"github.com/easy-travel/hotelbot/internal/domain"
	"github.com/easy-travel/hotelbot/internal/repository"
)

// SearchService runs hotel searches and records their results.
type SearchService struct {
	api   HotelsAPI
	store repository.Store
}

func NewSearchService(api HotelsAPI, store repository.Store) *SearchService {
	return &SearchService{api: api, store: store}
}

// LookupAreas resolves a city name into destination areas. An unknown city
// yields an empty slice, not an error.
func (s *SearchService) LookupAreas(ctx context.Context, city string) ([]domain.Area, error) {
	areas, err := s.api.SearchAreas(ctx, city)
	if err != nil {
		slog.Warn("area lookup failed", "city", city, "error", err)
		return nil, nil
	}
	return areas, nil
}

// Run persists the request, queries the API and stores the matching hotels.
// The request row is written before the API call so an empty outcome still
// lands in history. API failures degrade to an empty result set.
func (s *SearchService) Run(ctx context.Context, userID int64, params domain.SearchParams) (int64, []domain.Hotel, error) {
	now := time.Now()
	requestID, err := s.store.AddRequest(ctx, domain.SearchRequest{
		UserID:      userID,
		DateRequest: now,
		Params:      params,
	})
	if err != nil {
		return 0, nil, fmt.Errorf("add request: %w", err)
	}

	properties, err := s.api.ListProperties(ctx, buildQuery(params))
	if err != nil {
		slog.Warn("property search failed", "user_id", userID, "error", err)
		return requestID, nil, nil
	}

	hotels := s.collect(ctx, properties, params)
	if len(hotels) == 0 {
		return requestID, nil, nil
	}

	for i := range hotels {
		hotels[i].UserID = userID
		hotels[i].RequestID = requestID
		hotels[i].DateReport = now
	}
	if err := s.store.AddHotels(ctx, hotels); err != nil {
		return requestID, nil, fmt.Errorf("add hotels: %w", err)
	}
	return requestID, hotels, nil
}

func buildQuery(params domain.SearchParams) PropertyQuery {
	q := PropertyQuery{
		CheckIn:  params.CheckIn,
		CheckOut: params.CheckOut,
	}
	switch params.Mode {
	case domain.ModeCheapest:
		q.RegionID = params.AreaID
		q.Sort = SortPriceAsc
		q.ResultsSize = params.AmountHotels
	case domain.ModeBestDeal:
		q.RegionID = params.AreaID
		q.Sort = SortDistance
		q.PriceMin = params.PriceMin
		q.PriceMax = params.PriceMax
		q.ResultsSize = config.BestDealFetchSize
	case domain.ModeMyCity:
		q.Latitude = params.Latitude
		q.Longitude = params.Longitude
		q.Sort = SortDistance
		q.PriceMin = params.PriceMin
		q.PriceMax = params.PriceMax
		q.ResultsSize = config.BestDealFetchSize
	}
	return q
}

// collect filters the raw candidates, caps them at the requested count and
// enriches each survivor with address and photos.
func (s *SearchService) collect(ctx context.Context, properties []Property, params domain.SearchParams) []domain.Hotel {
	var minMiles, maxMiles float64
	filterDistance := params.Mode != domain.ModeCheapest
	if filterDistance {
		minMiles = math.Round(float64(params.CenterMin) * domain.MilesPerKm)
		maxMiles = math.Round(float64(params.CenterMax) * domain.MilesPerKm)
	}

	var hotels []domain.Hotel
	for _, p := range properties {
		if filterDistance && (p.Center < minMiles || p.Center > maxMiles) {
			continue
		}

		hotel := domain.Hotel{
			HotelID: p.ID,
			Name:    p.Name,
			Center:  p.Center,
			Price:   decimal.NewFromFloat(p.Price).Round(2),
		}
		s.enrich(ctx, &hotel, params)
		hotels = append(hotels, hotel)
		if len(hotels) >= params.AmountHotels {
			break
		}
	}
	return hotels
}

func (s *SearchService) enrich(ctx context.Context, hotel *domain.Hotel, params domain.SearchParams) {
	detail, err := s.api.PropertyDetail(ctx, hotel.HotelID)
	if err != nil {
		slog.Warn("property detail failed", "hotel_id", hotel.HotelID, "error", err)
		hotel.Address = "Адрес не найден"
		return
	}

	hotel.Address = detail.Address
	if hotel.Address == "" {
		hotel.Address = "Адрес не найден"
	}
	if params.HasPhoto {
		photos := detail.Photos
		if len(photos) > params.AmountPhotos {
			photos = photos[:params.AmountPhotos]
		}
		hotel.Photos = photos
	}
}
