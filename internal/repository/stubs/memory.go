// Package stubs provides an in-memory Store implementation for tests.
package stubs

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/easy-travel/hotelbot/internal/domain"
)

// MemoryStore keeps all rows in process memory. It mirrors the Postgres
// store's semantics: duplicate users are absorbed, lookups of missing
// requests and callback codes return the domain not-found errors.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[int64]domain.User
	requests  map[int64]domain.SearchRequest
	hotels    []domain.Hotel
	callbacks map[string]callbackEntry

	nextRequestID int64
	nextHotelID   int64
}

type callbackEntry struct {
	areaName  string
	createdAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[int64]domain.User),
		requests:      make(map[int64]domain.SearchRequest),
		callbacks:     make(map[string]callbackEntry),
		nextRequestID: 1,
		nextHotelID:   1,
	}
}

func (m *MemoryStore) AddUser(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; ok {
		return nil
	}
	m.users[user.ID] = user
	return nil
}

func (m *MemoryStore) AddRequest(_ context.Context, req domain.SearchRequest) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req.ID = m.nextRequestID
	m.nextRequestID++
	m.requests[req.ID] = req
	return req.ID, nil
}

func (m *MemoryStore) GetRequest(_ context.Context, id int64) (*domain.SearchRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	req, ok := m.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return &req, nil
}

func (m *MemoryStore) ListRequestsByUser(_ context.Context, userID int64) ([]domain.SearchRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.SearchRequest
	for _, req := range m.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) DeleteRequest(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.requests, id)
	return nil
}

func (m *MemoryStore) AddHotels(_ context.Context, hotels []domain.Hotel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range hotels {
		h.ID = m.nextHotelID
		m.nextHotelID++
		m.hotels = append(m.hotels, h)
	}
	return nil
}

func (m *MemoryStore) ListHotelsByRequest(_ context.Context, requestID int64) ([]domain.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Hotel
	for _, h := range m.hotels {
		if h.RequestID == requestID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *MemoryStore) DeleteHotelsByRequest(_ context.Context, requestID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.hotels[:0]
	for _, h := range m.hotels {
		if h.RequestID != requestID {
			kept = append(kept, h)
		}
	}
	m.hotels = kept
	return nil
}

func (m *MemoryStore) AddCallback(_ context.Context, code, areaName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks[code] = callbackEntry{areaName: areaName, createdAt: time.Now()}
	return nil
}

func (m *MemoryStore) GetCallbackArea(_ context.Context, code string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.callbacks[code]
	if !ok {
		return "", domain.ErrCallbackNotFound
	}
	return entry.areaName, nil
}

func (m *MemoryStore) Stats(_ context.Context) (domain.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.Stats{
		Users:    int64(len(m.users)),
		Requests: int64(len(m.requests)),
		Hotels:   int64(len(m.hotels)),
	}, nil
}

func (m *MemoryStore) DeleteExpiredCallbacks(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for code, entry := range m.callbacks {
		if entry.createdAt.Before(before) {
			delete(m.callbacks, code)
			removed++
		}
	}
	return removed, nil
}
