package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easy-travel/hotelbot/internal/domain"
	"github.com/easy-travel/hotelbot/internal/repository/stubs"
)

func seedRequest(t *testing.T, store *stubs.MemoryStore, userID int64) int64 {
	t.Helper()
	requestID, err := store.AddRequest(context.Background(), domain.SearchRequest{
		UserID:      userID,
		DateRequest: time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC),
		Params:      domain.SearchParams{Mode: domain.ModeCheapest, City: "Казань", AmountHotels: 3},
	})
	require.NoError(t, err)

	err = store.AddHotels(context.Background(), []domain.Hotel{
		{UserID: userID, RequestID: requestID, HotelID: "h1", Name: "Отель", Price: decimal.NewFromInt(60)},
		{UserID: userID, RequestID: requestID, HotelID: "h2", Name: "Хостел", Price: decimal.NewFromInt(20)},
	})
	require.NoError(t, err)
	return requestID
}

func TestHistoryListAndGet(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewHistoryService(store)
	requestID := seedRequest(t, store, 42)
	seedRequest(t, store, 99)

	requests, err := svc.ListRequests(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Казань", requests[0].Params.City)

	hotels, err := svc.ListHotels(context.Background(), requestID)
	require.NoError(t, err)
	assert.Len(t, hotels, 2)
}

func TestHistoryDeleteRemovesRequestAndHotels(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewHistoryService(store)
	requestID := seedRequest(t, store, 42)
	keptID := seedRequest(t, store, 42)

	require.NoError(t, svc.Delete(context.Background(), requestID))

	_, err := svc.GetRequest(context.Background(), requestID)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)

	hotels, err := svc.ListHotels(context.Background(), requestID)
	require.NoError(t, err)
	assert.Empty(t, hotels)

	// The sibling request is untouched.
	hotels, err = svc.ListHotels(context.Background(), keptID)
	require.NoError(t, err)
	assert.Len(t, hotels, 2)
}
