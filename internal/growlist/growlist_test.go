package growlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushWritesAndAdvancesCursor(t *testing.T) {
	l := New[int](2)
	l.Reserve(3)
	*l.Push() = 10
	*l.Push() = 20
	*l.Push() = 30
	require.Equal(t, 3, l.Cursor())
	require.Equal(t, []int{10, 20, 30}, l.Slice())
}

func TestReserveGrowsByAtLeast20Percent(t *testing.T) {
	l := New[int](10)
	l.Reserve(11)
	require.GreaterOrEqual(t, l.Cap(), 12) // max(11, 10*1.2) = 12
}

func TestReserveNoopWhenAlreadyLargeEnough(t *testing.T) {
	l := New[int](10)
	l.Reserve(5)
	require.Equal(t, 10, l.Cap())
}

func TestResetCursorKeepsCapacity(t *testing.T) {
	l := New[int](4)
	l.Reserve(4)
	*l.Push() = 1
	*l.Push() = 2
	cap := l.Cap()
	l.ResetCursor()
	require.Equal(t, 0, l.Cursor())
	require.Equal(t, cap, l.Cap())
}

func TestPushPastCapacityPanics(t *testing.T) {
	l := New[int](1)
	l.Reserve(1)
	*l.Push() = 1
	require.Panics(t, func() { l.Push() })
}
