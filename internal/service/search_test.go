package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easy-travel/hotelbot/internal/config"
	"github.com/easy-travel/hotelbot/internal/domain"
	"github.com/easy-travel/hotelbot/internal/repository/stubs"
)

type fakeHotelsAPI struct {
	areas      []domain.Area
	areasErr   error
	properties []Property
	listErr    error
	details    map[string]*PropertyDetail
	detailErr  error

	lastQuery PropertyQuery
}

func (f *fakeHotelsAPI) SearchAreas(_ context.Context, _ string) ([]domain.Area, error) {
	return f.areas, f.areasErr
}

func (f *fakeHotelsAPI) ListProperties(_ context.Context, q PropertyQuery) ([]Property, error) {
	f.lastQuery = q
	return f.properties, f.listErr
}

func (f *fakeHotelsAPI) PropertyDetail(_ context.Context, hotelID string) (*PropertyDetail, error) {
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	if d, ok := f.details[hotelID]; ok {
		return d, nil
	}
	return &PropertyDetail{}, nil
}

func cheapestParams() domain.SearchParams {
	return domain.SearchParams{
		Mode:         domain.ModeCheapest,
		City:         "Москва",
		AreaID:       "2233",
		AreaName:     "Москва",
		AmountHotels: 2,
		CheckIn:      time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC),
	}
}

func TestRunCheapestQueriesByPrice(t *testing.T) {
	api := &fakeHotelsAPI{
		properties: []Property{
			{ID: "h1", Name: "Отель Один", Center: 1.2, Price: 50},
			{ID: "h2", Name: "Отель Два", Center: 0.4, Price: 75},
			{ID: "h3", Name: "Отель Три", Center: 2.0, Price: 90},
		},
		details: map[string]*PropertyDetail{
			"h1": {Address: "ул. Тверская, 1"},
		},
	}
	store := stubs.NewMemoryStore()
	svc := NewSearchService(api, store)

	requestID, hotels, err := svc.Run(context.Background(), 42, cheapestParams())
	require.NoError(t, err)
	assert.Equal(t, int64(1), requestID)

	assert.Equal(t, "2233", api.lastQuery.RegionID)
	assert.Equal(t, SortPriceAsc, api.lastQuery.Sort)
	assert.Equal(t, 2, api.lastQuery.ResultsSize)
	assert.Zero(t, api.lastQuery.PriceMin)

	// The requested count caps the result even when the API returns more.
	require.Len(t, hotels, 2)
	assert.Equal(t, "h1", hotels[0].HotelID)
	assert.Equal(t, "ул. Тверская, 1", hotels[0].Address)
	assert.Equal(t, "50", hotels[0].Price.String())
	assert.Equal(t, requestID, hotels[0].RequestID)
	assert.Equal(t, int64(42), hotels[0].UserID)

	// Missing address falls back to the placeholder.
	assert.Equal(t, "Адрес не найден", hotels[1].Address)

	stored, err := store.ListHotelsByRequest(context.Background(), requestID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestRunBestDealFiltersByDistance(t *testing.T) {
	params := cheapestParams()
	params.Mode = domain.ModeBestDeal
	params.AmountHotels = 10
	params.PriceMin = 20
	params.PriceMax = 100
	params.CenterMin = 1
	params.CenterMax = 3

	// 1 km and 3 km round to 1 and 2 miles.
	api := &fakeHotelsAPI{
		properties: []Property{
			{ID: "near", Center: 0.4, Price: 30},
			{ID: "low", Center: 1.0, Price: 40},
			{ID: "high", Center: 2.0, Price: 50},
			{ID: "far", Center: 2.4, Price: 60},
		},
	}
	store := stubs.NewMemoryStore()
	svc := NewSearchService(api, store)

	_, hotels, err := svc.Run(context.Background(), 42, params)
	require.NoError(t, err)

	assert.Equal(t, SortDistance, api.lastQuery.Sort)
	assert.Equal(t, config.BestDealFetchSize, api.lastQuery.ResultsSize)
	assert.Equal(t, 20, api.lastQuery.PriceMin)
	assert.Equal(t, 100, api.lastQuery.PriceMax)

	require.Len(t, hotels, 2)
	assert.Equal(t, "low", hotels[0].HotelID)
	assert.Equal(t, "high", hotels[1].HotelID)
}

func TestRunMyCityQueriesByCoordinates(t *testing.T) {
	params := cheapestParams()
	params.Mode = domain.ModeMyCity
	params.AreaID = ""
	params.Latitude = 55.75
	params.Longitude = 37.61
	params.CenterMax = 100

	api := &fakeHotelsAPI{}
	svc := NewSearchService(api, stubs.NewMemoryStore())

	_, _, err := svc.Run(context.Background(), 42, params)
	require.NoError(t, err)

	assert.Empty(t, api.lastQuery.RegionID)
	assert.Equal(t, 55.75, api.lastQuery.Latitude)
	assert.Equal(t, 37.61, api.lastQuery.Longitude)
	assert.Equal(t, SortDistance, api.lastQuery.Sort)
}

func TestRunAPIFailureStillPersistsRequest(t *testing.T) {
	api := &fakeHotelsAPI{listErr: errors.New("rate limited")}
	store := stubs.NewMemoryStore()
	svc := NewSearchService(api, store)

	requestID, hotels, err := svc.Run(context.Background(), 42, cheapestParams())
	require.NoError(t, err)
	assert.Empty(t, hotels)

	req, err := store.GetRequest(context.Background(), requestID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), req.UserID)
	assert.Equal(t, "Москва", req.Params.City)
}

func TestRunAttachesPhotosOnlyWhenRequested(t *testing.T) {
	api := &fakeHotelsAPI{
		properties: []Property{{ID: "h1", Name: "Отель", Center: 0.2, Price: 80}},
		details: map[string]*PropertyDetail{
			"h1": {Address: "адрес", Photos: []string{"p1", "p2", "p3"}},
		},
	}

	params := cheapestParams()
	params.AmountHotels = 1
	svc := NewSearchService(api, stubs.NewMemoryStore())

	_, hotels, err := svc.Run(context.Background(), 42, params)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Empty(t, hotels[0].Photos)

	params.HasPhoto = true
	params.AmountPhotos = 2
	_, hotels, err = svc.Run(context.Background(), 42, params)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, []string{"p1", "p2"}, hotels[0].Photos)
}

func TestLookupAreasSwallowsAPIError(t *testing.T) {
	api := &fakeHotelsAPI{areasErr: errors.New("boom")}
	svc := NewSearchService(api, stubs.NewMemoryStore())

	areas, err := svc.LookupAreas(context.Background(), "Нигде")
	require.NoError(t, err)
	assert.Empty(t, areas)
}
