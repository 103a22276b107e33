package pointer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	t.Parallel()

	r := Rect{X: 2, Y: 1, Width: 3, Height: 2}

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 1, true},
		{4, 2, true},
		{5, 1, false},
		{2, 3, false},
		{1, 1, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, r.Contains(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}

	require.False(t, Rect{X: 0, Y: 0}.Contains(0, 0))
}

func TestRegionContains(t *testing.T) {
	t.Parallel()

	region := Region{{X: 0, Y: 0, Width: 4, Height: 1}, {X: 0, Y: 1, Width: 10, Height: 5}}
	require.True(t, region.Contains(3, 0))
	require.True(t, region.Contains(9, 5))
	require.False(t, region.Contains(5, 0))
}

func TestDocumentDispatchesToSubscribers(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	var got []Event
	sub := doc.Subscribe(func(ev Event) { got = append(got, ev) })

	doc.Dispatch(Event{X: 1, Y: 2})
	require.Equal(t, []Event{{X: 1, Y: 2}}, got)
	require.Equal(t, 1, doc.Listeners())

	sub.Release()
	doc.Dispatch(Event{X: 3, Y: 4})
	require.Len(t, got, 1)
	require.Equal(t, 0, doc.Listeners())
}

func TestSubscriptionReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	first := doc.Subscribe(func(Event) {})
	second := doc.Subscribe(func(Event) {})

	first.Release()
	first.Release()

	require.False(t, first.Active())
	require.True(t, second.Active())
	require.Equal(t, 1, doc.Listeners())

	var nilSub *Subscription
	require.NotPanics(t, nilSub.Release)
}

func TestDispatchSkipsListenersReleasedDuringDispatch(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	calls := 0
	var second *Subscription
	doc.Subscribe(func(Event) {
		calls++
		second.Release()
	})
	second = doc.Subscribe(func(Event) { calls += 10 })

	doc.Dispatch(Event{})
	require.Equal(t, 1, calls)
	require.Equal(t, 1, doc.Listeners())
}

func TestListenerMayReleaseItself(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	var self *Subscription
	calls := 0
	self = doc.Subscribe(func(Event) {
		calls++
		self.Release()
	})

	doc.Dispatch(Event{})
	doc.Dispatch(Event{})
	require.Equal(t, 1, calls)
	require.Equal(t, 0, doc.Listeners())
}
