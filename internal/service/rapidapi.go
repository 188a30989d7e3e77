package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/easy-travel/hotelbot/internal/config"
	"github.com/easy-travel/hotelbot/internal/domain"
)

// Sort orders accepted by the property list endpoint.
const (
	SortPriceAsc = "PRICE_LOW_TO_HIGH"
	SortDistance = "DISTANCE"
)

// Property is one raw hotel candidate from the search API. Center is the
// distance to the destination in miles, Price the lead rate per night in
// USD.
type Property struct {
	ID     string
	Name   string
	Center float64
	Price  float64
}

// PropertyDetail is the per-hotel enrichment payload.
type PropertyDetail struct {
	Address string
	Photos  []string
}

// PropertyQuery describes one property list call. Exactly one of RegionID
// or the coordinate pair is set. PriceMin/PriceMax of zero mean no price
// filter.
type PropertyQuery struct {
	RegionID    string
	Latitude    float64
	Longitude   float64
	CheckIn     time.Time
	CheckOut    time.Time
	Sort        string
	PriceMin    int
	PriceMax    int
	ResultsSize int
}

// HotelsAPI is the hotel-search collaborator boundary.
type HotelsAPI interface {
	SearchAreas(ctx context.Context, city string) ([]domain.Area, error)
	ListProperties(ctx context.Context, q PropertyQuery) ([]Property, error)
	PropertyDetail(ctx context.Context, hotelID string) (*PropertyDetail, error)
}

// RapidAPIService talks to the RapidAPI hotels4 endpoints.
type RapidAPIService struct {
	apiKey     string
	host       string
	baseURL    string
	httpClient *http.Client
}

func NewRapidAPIService(apiKey, host string) *RapidAPIService {
	return &RapidAPIService{
		apiKey:     apiKey,
		host:       host,
		baseURL:    "https://" + host,
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

func (s *RapidAPIService) SearchAreas(ctx context.Context, city string) ([]domain.Area, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/locations/v3/search", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	query := req.URL.Query()
	query.Set("q", city)
	query.Set("locale", "ru_RU")
	query.Set("langid", "1033")
	query.Set("siteid", "300000001")
	req.URL.RawQuery = query.Encode()
	req.Header.Set("X-RapidAPI-Key", s.apiKey)
	req.Header.Set("X-RapidAPI-Host", s.host)

	body, err := s.do(req)
	if err != nil {
		return nil, fmt.Errorf("search areas: %w", err)
	}

	var result struct {
		SR []struct {
			Type        string `json:"type"`
			GaiaID      string `json:"gaiaId"`
			RegionNames struct {
				ShortName string `json:"shortName"`
			} `json:"regionNames"`
			Coordinates struct {
				Lat  float64 `json:"lat"`
				Long float64 `json:"long"`
			} `json:"coordinates"`
		} `json:"sr"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse areas: %w", err)
	}

	var areas []domain.Area
	for _, place := range result.SR {
		// Hotels and airports are not areas a search can be scoped to.
		if place.Type == "HOTEL" || place.Type == "AIRPORT" {
			continue
		}
		areas = append(areas, domain.Area{
			ID:        place.GaiaID,
			Name:      place.RegionNames.ShortName,
			Latitude:  place.Coordinates.Lat,
			Longitude: place.Coordinates.Long,
		})
	}
	return areas, nil
}

func (s *RapidAPIService) ListProperties(ctx context.Context, q PropertyQuery) ([]Property, error) {
	destination := map[string]any{}
	if q.RegionID != "" {
		destination["regionId"] = q.RegionID
	} else {
		destination["coordinates"] = map[string]any{
			"latitude":  q.Latitude,
			"longitude": q.Longitude,
		}
	}

	payload := map[string]any{
		"currency":    "USD",
		"eapid":       1,
		"locale":      "ru_RU",
		"siteId":      300000001,
		"destination": destination,
		"checkInDate": map[string]int{
			"day":   q.CheckIn.Day(),
			"month": int(q.CheckIn.Month()),
			"year":  q.CheckIn.Year(),
		},
		"checkOutDate": map[string]int{
			"day":   q.CheckOut.Day(),
			"month": int(q.CheckOut.Month()),
			"year":  q.CheckOut.Year(),
		},
		"rooms": []map[string]any{
			{"adults": 1, "children": []any{}},
		},
		"resultsStartingIndex": 0,
		"resultsSize":          q.ResultsSize,
		"sort":                 q.Sort,
	}
	if q.PriceMin > 0 || q.PriceMax > 0 {
		payload["filters"] = map[string]any{
			"price": map[string]int{"min": q.PriceMin, "max": q.PriceMax},
		}
	} else {
		payload["filters"] = map[string]any{}
	}

	body, err := s.post(ctx, "/properties/v2/list", payload)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	var result struct {
		Data struct {
			PropertySearch struct {
				Properties []struct {
					ID              string `json:"id"`
					Name            string `json:"name"`
					DestinationInfo struct {
						DistanceFromDestination struct {
							Value float64 `json:"value"`
						} `json:"distanceFromDestination"`
					} `json:"destinationInfo"`
					Price struct {
						Lead struct {
							Amount float64 `json:"amount"`
						} `json:"lead"`
					} `json:"price"`
				} `json:"properties"`
			} `json:"propertySearch"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse properties: %w", err)
	}

	properties := make([]Property, 0, len(result.Data.PropertySearch.Properties))
	for _, p := range result.Data.PropertySearch.Properties {
		properties = append(properties, Property{
			ID:     p.ID,
			Name:   p.Name,
			Center: p.DestinationInfo.DistanceFromDestination.Value,
			Price:  p.Price.Lead.Amount,
		})
	}
	return properties, nil
}

func (s *RapidAPIService) PropertyDetail(ctx context.Context, hotelID string) (*PropertyDetail, error) {
	payload := map[string]any{
		"currency":   "USD",
		"eapid":      1,
		"locale":     "ru_RU",
		"siteId":     300000001,
		"propertyId": hotelID,
	}

	body, err := s.post(ctx, "/properties/v2/detail", payload)
	if err != nil {
		return nil, fmt.Errorf("property detail: %w", err)
	}

	var result struct {
		Data struct {
			PropertyInfo struct {
				Summary struct {
					Location struct {
						Address struct {
							AddressLine string `json:"addressLine"`
						} `json:"address"`
					} `json:"location"`
				} `json:"summary"`
				PropertyGallery struct {
					Images []struct {
						Image struct {
							URL string `json:"url"`
						} `json:"image"`
					} `json:"images"`
				} `json:"propertyGallery"`
			} `json:"propertyInfo"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse detail: %w", err)
	}

	detail := &PropertyDetail{
		Address: result.Data.PropertyInfo.Summary.Location.Address.AddressLine,
	}
	for _, img := range result.Data.PropertyInfo.PropertyGallery.Images {
		if img.Image.URL != "" {
			detail.Photos = append(detail.Photos, img.Image.URL)
		}
	}
	return detail, nil
}

func (s *RapidAPIService) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("X-RapidAPI-Key", s.apiKey)
	req.Header.Set("X-RapidAPI-Host", s.host)

	return s.do(req)
}

func (s *RapidAPIService) do(req *http.Request) ([]byte, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("response is empty")
	}
	return body, nil
}
