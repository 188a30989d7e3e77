package service

import (
	"context"
	"fmt"
	"time"

	"github.com/easy-travel/hotelbot/internal/domain"
	"github.com/easy-travel/hotelbot/internal/repository"
)

// UserService registers users on first contact.
type UserService struct {
	store repository.Store
}

func NewUserService(store repository.Store) *UserService {
	return &UserService{store: store}
}

// FindOrCreate records the user if unseen and returns the profile. A repeat
// visit is absorbed by the store.
func (s *UserService) FindOrCreate(ctx context.Context, id int64, name string) (*domain.User, error) {
	user := domain.User{
		ID:             id,
		Name:           name,
		ConnectionDate: time.Now(),
	}
	if err := s.store.AddUser(ctx, user); err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}
	return &user, nil
}
