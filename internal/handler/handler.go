package handler

import (
	"github.com/go-telegram/bot"

	"github.com/easy-travel/hotelbot/internal/config"
	"github.com/easy-travel/hotelbot/internal/repository"
	"github.com/easy-travel/hotelbot/internal/service"
	"github.com/easy-travel/hotelbot/internal/session"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot      *bot.Bot
	cfg      *config.Config
	users    *service.UserService
	search   *service.SearchService
	history  *service.HistoryService
	store    repository.Store
	sessions *session.Manager
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot      *bot.Bot
	Cfg      *config.Config
	Users    *service.UserService
	Search   *service.SearchService
	History  *service.HistoryService
	Store    repository.Store
	Sessions *session.Manager
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:      deps.Bot,
		cfg:      deps.Cfg,
		users:    deps.Users,
		search:   deps.Search,
		history:  deps.History,
		store:    deps.Store,
		sessions: deps.Sessions,
	}
}
