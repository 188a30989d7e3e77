package repository

import (
	"context"
	"time"

	"github.com/easy-travel/hotelbot/internal/domain"
)

// Store is the persistence boundary. Every method maps to a single
// self-contained statement; there are no multi-statement transactions, so
// callers sequence dependent writes themselves.
type Store interface {
	// AddUser inserts a user row, silently ignoring an already known id.
	AddUser(ctx context.Context, user domain.User) error

	AddRequest(ctx context.Context, req domain.SearchRequest) (int64, error)
	GetRequest(ctx context.Context, id int64) (*domain.SearchRequest, error)
	ListRequestsByUser(ctx context.Context, userID int64) ([]domain.SearchRequest, error)
	DeleteRequest(ctx context.Context, id int64) error

	AddHotels(ctx context.Context, hotels []domain.Hotel) error
	ListHotelsByRequest(ctx context.Context, requestID int64) ([]domain.Hotel, error)
	DeleteHotelsByRequest(ctx context.Context, requestID int64) error

	// AddCallback maps an opaque short code to an area label so that inline
	// button payloads stay within platform size limits.
	AddCallback(ctx context.Context, code, areaName string) error
	GetCallbackArea(ctx context.Context, code string) (string, error)
	DeleteExpiredCallbacks(ctx context.Context, before time.Time) (int64, error)

	Stats(ctx context.Context) (domain.Stats, error)
}
