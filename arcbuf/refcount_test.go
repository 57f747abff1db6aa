package arcbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRefCountIncrementDecrement(t *testing.T) {
	var c atomicRefCount
	c.init(1, false)

	snapshot := c.snapshot()
	require.False(t, snapshot.IsStatic())
	count, counted := snapshot.Count()
	require.True(t, counted)
	require.Equal(t, 1, count)
	require.False(t, snapshot.Reclaimable())

	c.increment()
	count, _ = c.snapshot().Count()
	require.Equal(t, 2, count)

	require.False(t, c.decrement())
	require.True(t, c.decrement())
}

func TestRefCountReclaimTransitions(t *testing.T) {
	var c atomicRefCount
	c.init(1, true)

	require.True(t, c.snapshot().Reclaimable())
	require.False(t, c.canReclaim())
	require.False(t, c.tryReclaim())

	// Dropping the only strong reference does not free a reclaimable
	// allocation; it parks it.
	require.False(t, c.decrement())
	require.True(t, c.canReclaim())

	require.True(t, c.tryReclaim())
	require.False(t, c.canReclaim())
	require.False(t, c.tryReclaim())

	require.False(t, c.decrement())
	require.True(t, c.clearReclaim())
}

func TestRefCountDecrementUnderflowPanics(t *testing.T) {
	var c atomicRefCount
	c.init(0, false)

	require.Panics(t, func() {
		c.decrement()
	})
}

func TestRefCountClearMissingReclaimPanics(t *testing.T) {
	var c atomicRefCount
	c.init(1, false)

	require.Panics(t, func() {
		c.clearReclaim()
	})
}

func TestRefCountString(t *testing.T) {
	require.Equal(t, "Static", RefCount{}.String())

	var c atomicRefCount
	c.init(2, true)
	require.Equal(t, "Counted{count: 2, reclaimable: true}", c.snapshot().String())
}

func TestRefCountZeroValueIsStatic(t *testing.T) {
	var r RefCount
	require.True(t, r.IsStatic())

	count, counted := r.Count()
	require.False(t, counted)
	require.Equal(t, 0, count)
	require.False(t, r.Reclaimable())
}
