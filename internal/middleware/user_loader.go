package middleware

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/easy-travel/hotelbot/internal/domain"
	"github.com/easy-travel/hotelbot/internal/service"
)

type ctxKey string

const UserKey ctxKey = "user"

// GetUser extracts the user from context.
func GetUser(ctx context.Context) *domain.User {
	u, ok := ctx.Value(UserKey).(*domain.User)
	if !ok {
		return nil
	}
	return u
}

// UserLoader returns middleware that registers the sender on first contact
// and loads the user into the context. Registration of an already known id
// is silently absorbed by the store.
func UserLoader(users *service.UserService) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var from *models.User
			if update.Message != nil {
				from = update.Message.From
			} else if update.CallbackQuery != nil {
				from = &update.CallbackQuery.From
			}

			if from == nil {
				next(ctx, b, update)
				return
			}

			user, err := users.FindOrCreate(ctx, from.ID, from.FirstName)
			if err == nil && user != nil {
				ctx = context.WithValue(ctx, UserKey, user)
			}

			next(ctx, b, update)
		}
	}
}
