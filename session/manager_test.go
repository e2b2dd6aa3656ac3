package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateRestoresSameCart(t *testing.T) {
	m := NewManager(time.Hour)
	defer m.Stop()

	s1 := m.GetOrCreate("")
	require.NotNil(t, s1)

	s2 := m.GetOrCreate(s1.ID)
	assert.Same(t, s1, s2)
	assert.Same(t, s1.Cart, s2.Cart)
}

func TestUnknownIDGetsFreshSession(t *testing.T) {
	m := NewManager(time.Hour)
	defer m.Stop()

	s := m.GetOrCreate("not-a-session")
	require.NotNil(t, s)
	assert.NotEqual(t, "not-a-session", s.ID)
	assert.True(t, s.Cart.Empty())
}

func TestDistinctSessionsOwnDistinctCarts(t *testing.T) {
	m := NewManager(time.Hour)
	defer m.Stop()

	a := m.Create()
	b := m.Create()

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a.Cart, b.Cart)
}

func TestSweepExpiresIdleSessions(t *testing.T) {
	m := NewManager(10 * time.Millisecond)
	defer m.Stop()

	stale := m.Create()
	time.Sleep(25 * time.Millisecond)
	fresh := m.Create()

	m.sweep()

	assert.Nil(t, m.Get(stale.ID))
	assert.NotNil(t, m.Get(fresh.ID))
	assert.Equal(t, 1, m.Len())
}

func TestBeginSubmitGuard(t *testing.T) {
	m := NewManager(time.Hour)
	defer m.Stop()
	s := m.Create()

	assert.True(t, s.BeginSubmit())
	assert.False(t, s.BeginSubmit())

	s.EndSubmit()
	assert.True(t, s.BeginSubmit())
}
