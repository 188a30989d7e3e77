package service

import (
	"context"
	"fmt"

	"github.com/easy-travel/hotelbot/internal/domain"
	"github.com/easy-travel/hotelbot/internal/repository"
)

// HistoryService serves saved requests and their hotels.
type HistoryService struct {
	store repository.Store
}

func NewHistoryService(store repository.Store) *HistoryService {
	return &HistoryService{store: store}
}

func (s *HistoryService) ListRequests(ctx context.Context, userID int64) ([]domain.SearchRequest, error) {
	requests, err := s.store.ListRequestsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return requests, nil
}

func (s *HistoryService) GetRequest(ctx context.Context, requestID int64) (*domain.SearchRequest, error) {
	request, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	return request, nil
}

func (s *HistoryService) ListHotels(ctx context.Context, requestID int64) ([]domain.Hotel, error) {
	hotels, err := s.store.ListHotelsByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return hotels, nil
}

// Delete removes a request together with its hotels.
func (s *HistoryService) Delete(ctx context.Context, requestID int64) error {
	if err := s.store.DeleteHotelsByRequest(ctx, requestID); err != nil {
		return fmt.Errorf("delete hotels: %w", err)
	}
	if err := s.store.DeleteRequest(ctx, requestID); err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return nil
}
