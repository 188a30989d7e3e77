package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easy-travel/hotelbot/internal/domain"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	assert.Nil(t, m.Get(42))

	state := m.Begin(42, domain.ModeCheapest)
	require.NotNil(t, state)
	assert.Equal(t, domain.ModeCheapest, state.Params.Mode)
	assert.Same(t, state, m.Get(42))

	// Starting a new flow discards the previous one.
	state.Params.City = "Москва"
	fresh := m.Begin(42, domain.ModeBestDeal)
	assert.Empty(t, fresh.Params.City)
	assert.Equal(t, domain.ModeBestDeal, fresh.Params.Mode)

	m.End(42)
	assert.Nil(t, m.Get(42))
}

func TestManagerIsolatesUsers(t *testing.T) {
	m := NewManager()
	a := m.Begin(1, domain.ModeCheapest)
	b := m.Begin(2, domain.ModeMyCity)

	a.Step = StepCity
	assert.Equal(t, StepNone, b.Step)
}

func TestBeginHistory(t *testing.T) {
	m := NewManager()
	state := m.BeginHistory(7)
	assert.Equal(t, StepHistory, state.Step)
}

func TestStepAwaitsText(t *testing.T) {
	for _, step := range []Step{StepCity, StepPriceMin, StepPriceMax, StepCenterMin, StepCenterMax} {
		assert.True(t, step.AwaitsText(), "step %d", step)
	}
	for _, step := range []Step{StepNone, StepArea, StepHotelCount, StepCheckIn, StepBrowse, StepHistory} {
		assert.False(t, step.AwaitsText(), "step %d", step)
	}
}

func TestAdvanceFiresOnce(t *testing.T) {
	m := NewManager()
	state := m.Begin(1, domain.ModeCheapest)
	state.Step = StepConfirm

	assert.True(t, m.Advance(1, StepConfirm, StepBrowse))
	assert.Equal(t, StepBrowse, state.Step)

	// The step already moved on, so a replayed transition is refused.
	assert.False(t, m.Advance(1, StepConfirm, StepBrowse))
	assert.Equal(t, StepBrowse, state.Step)
}

func TestAdvanceUnknownUser(t *testing.T) {
	m := NewManager()
	assert.False(t, m.Advance(5, StepConfirm, StepBrowse))
}
