package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/stretchr/testify/require"

	"github.com/easy-travel/hotelbot/internal/config"
	"github.com/easy-travel/hotelbot/internal/domain"
	"github.com/easy-travel/hotelbot/internal/repository/stubs"
	"github.com/easy-travel/hotelbot/internal/service"
	"github.com/easy-travel/hotelbot/internal/session"
)

// sentRecorder captures the text of every sendMessage call made against the
// fake API server.
type sentRecorder struct {
	mu    sync.Mutex
	texts []string
}

func (r *sentRecorder) add(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
}

func (r *sentRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...)
}

func (r *sentRecorder) contains(want string) bool {
	for _, text := range r.all() {
		if strings.Contains(text, want) {
			return true
		}
	}
	return false
}

// requestText pulls the text parameter out of a form-encoded or JSON body.
func requestText(r *http.Request) string {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var payload struct {
			Text string `json:"text"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		return payload.Text
	}
	return r.FormValue("text")
}

// newTestBot returns a bot wired to an in-process fake Bot API that accepts
// every call and records outgoing message texts.
func newTestBot(t *testing.T) (*bot.Bot, *sentRecorder) {
	t.Helper()
	rec := &sentRecorder{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			rec.add(requestText(r))
			w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":1,"chat":{"id":1,"type":"private"}}}`))
			return
		}
		w.Write([]byte(`{"ok":true,"result":true}`))
	}))
	t.Cleanup(ts.Close)

	b, err := bot.New("test-token",
		bot.WithServerURL(ts.URL),
		bot.WithSkipGetMe(),
		bot.WithHTTPClient(time.Second, ts.Client()),
	)
	require.NoError(t, err)
	return b, rec
}

// fakeSearchAPI satisfies service.HotelsAPI with canned responses.
type fakeSearchAPI struct {
	properties []service.Property
}

func (f *fakeSearchAPI) SearchAreas(context.Context, string) ([]domain.Area, error) {
	return nil, nil
}

func (f *fakeSearchAPI) ListProperties(context.Context, service.PropertyQuery) ([]service.Property, error) {
	return f.properties, nil
}

func (f *fakeSearchAPI) PropertyDetail(context.Context, string) (*service.PropertyDetail, error) {
	return &service.PropertyDetail{Address: "адрес"}, nil
}

func newTestHandler(t *testing.T, cfg *config.Config, api service.HotelsAPI) (*Handler, *stubs.MemoryStore, *sentRecorder) {
	t.Helper()
	b, rec := newTestBot(t)
	store := stubs.NewMemoryStore()
	h := New(Deps{
		Bot:      b,
		Cfg:      cfg,
		Users:    service.NewUserService(store),
		Search:   service.NewSearchService(api, store),
		History:  service.NewHistoryService(store),
		Store:    store,
		Sessions: session.NewManager(),
	})
	return h, store, rec
}
