package handler

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easy-travel/hotelbot/internal/config"
	"github.com/easy-travel/hotelbot/internal/domain"
	"github.com/easy-travel/hotelbot/internal/repository"
)

func seedOwnedRequest(t *testing.T, store repository.Store, userID int64) int64 {
	t.Helper()
	id, err := store.AddRequest(context.Background(), domain.SearchRequest{
		UserID:      userID,
		DateRequest: time.Now(),
		Params:      domain.SearchParams{Mode: domain.ModeCheapest, AreaName: "Москва"},
	})
	require.NoError(t, err)
	return id
}

// Request ids appear in callback payloads, so a crafted payload can name a
// request owned by somebody else. Deleting must stay owner-only.
func TestRequestDeleteRejectsForeignRequest(t *testing.T) {
	h, store, _ := newTestHandler(t, &config.Config{}, &fakeSearchAPI{})
	requestID := seedOwnedRequest(t, store, 99)
	h.sessions.BeginHistory(1)

	h.handleRequestDelete(context.Background(), h.bot,
		callbackUpdate(1, "delreq_"+strconv.FormatInt(requestID, 10)))

	_, err := store.GetRequest(context.Background(), requestID)
	assert.NoError(t, err, "foreign request must survive")
}

func TestRequestDeleteByOwner(t *testing.T) {
	h, store, _ := newTestHandler(t, &config.Config{}, &fakeSearchAPI{})
	requestID := seedOwnedRequest(t, store, 99)
	h.sessions.BeginHistory(99)

	h.handleRequestDelete(context.Background(), h.bot,
		callbackUpdate(99, "delreq_"+strconv.FormatInt(requestID, 10)))

	_, err := store.GetRequest(context.Background(), requestID)
	assert.Error(t, err)
}

func TestRequestInfoRejectsForeignRequest(t *testing.T) {
	h, store, rec := newTestHandler(t, &config.Config{}, &fakeSearchAPI{})
	requestID := seedOwnedRequest(t, store, 99)
	h.sessions.BeginHistory(1)

	h.handleRequestInfo(context.Background(), h.bot,
		callbackUpdate(1, "request_"+strconv.FormatInt(requestID, 10)))

	assert.False(t, rec.contains("Это пустой запрос"))
}

func TestRequestInfoShownToOwner(t *testing.T) {
	h, store, rec := newTestHandler(t, &config.Config{}, &fakeSearchAPI{})
	requestID := seedOwnedRequest(t, store, 99)
	h.sessions.BeginHistory(99)

	h.handleRequestInfo(context.Background(), h.bot,
		callbackUpdate(99, "request_"+strconv.FormatInt(requestID, 10)))

	assert.True(t, rec.contains("Это пустой запрос"))
}
