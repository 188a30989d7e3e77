// Package session holds the transient per-conversation state of the
// multi-step search and history flows. Nothing here is persisted: a process
// restart cancels every in-flight conversation.
package session

import (
	"sync"

	"github.com/easy-travel/hotelbot/internal/domain"
)

// Step is the position of a conversation inside a flow.
type Step int

const (
	StepNone Step = iota
	StepCity
	StepArea
	StepGeo
	StepHotelCount
	StepPhotoChoice
	StepPhotoCount
	StepCheckIn
	StepCheckOut
	StepPriceMin
	StepPriceMax
	StepCenterMin
	StepCenterMax
	StepConfirm
	StepBrowse
	StepHistory
)

// AwaitsText reports whether the step expects typed input rather than a
// button press.
func (s Step) AwaitsText() bool {
	switch s {
	case StepCity, StepPriceMin, StepPriceMax, StepCenterMin, StepCenterMax:
		return true
	}
	return false
}

// State is the scratch for one conversation: the collected parameters plus
// the browsing cursor. A handler mutates it freely; updates are dispatched
// to handlers one at a time, and one-shot transitions go through
// Manager.Advance so a duplicate button press cannot replay a step.
type State struct {
	Step   Step
	Params domain.SearchParams
	Hotels []domain.Hotel
	Page   int
}

// Manager maps conversation ids (Telegram user ids) to their state.
// Different conversations run concurrently, hence the lock.
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*State
}

func NewManager() *Manager {
	return &Manager{states: make(map[int64]*State)}
}

// Begin discards any previous state and starts a fresh flow.
func (m *Manager) Begin(userID int64, mode domain.SearchMode) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	state := &State{Params: domain.SearchParams{Mode: mode}}
	m.states[userID] = state
	return state
}

// BeginHistory starts the history browsing flow.
func (m *Manager) BeginHistory(userID int64) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	state := &State{Step: StepHistory}
	m.states[userID] = state
	return state
}

// Advance moves the conversation from one step to another and reports
// whether the transition happened. A caller observing a stale step gets
// false, so a step that must fire once (the search confirmation) cannot be
// replayed by a duplicate update.
func (m *Manager) Advance(userID int64, from, to Step) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.states[userID]
	if !ok || state.Step != from {
		return false
	}
	state.Step = to
	return true
}

// Get returns the active state for the conversation, or nil.
func (m *Manager) Get(userID int64) *State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.states[userID]
}

// End discards the conversation's state.
func (m *Manager) End(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, userID)
}
