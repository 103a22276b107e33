// Package pointer provides a document-level registry of pointer-down
// listeners for terminal UIs. It plays the role a browser document plays
// for click-outside detection: widgets subscribe while they need global
// pointer events and release the subscription when they stop needing it.
//
// A Document is driven from the Bubble Tea update loop and is not safe for
// concurrent use.
package pointer

// Event is a pointer-down at a terminal cell.
type Event struct {
	X int
	Y int
}

// Rect is a rectangle of terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Region is a set of rectangles treated as one boundary.
type Region []Rect

// Contains reports whether any rectangle of the region holds (x, y).
func (g Region) Contains(x, y int) bool {
	for _, r := range g {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Listener handles a dispatched pointer-down.
type Listener func(Event)

// Document dispatches pointer-down events to its subscribers.
type Document struct {
	nextID    int
	listeners []*Subscription
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Subscription is a registered listener. Release detaches it.
type Subscription struct {
	id       int
	doc      *Document
	listener Listener
}

// Subscribe registers listener and returns its subscription.
func (d *Document) Subscribe(listener Listener) *Subscription {
	d.nextID++
	sub := &Subscription{id: d.nextID, doc: d, listener: listener}
	d.listeners = append(d.listeners, sub)
	return sub
}

// Dispatch delivers ev to every listener registered when Dispatch starts.
// Listeners released by an earlier listener during the same dispatch are
// skipped.
func (d *Document) Dispatch(ev Event) {
	snapshot := append([]*Subscription(nil), d.listeners...)
	for _, sub := range snapshot {
		if !sub.Active() {
			continue
		}
		sub.listener(ev)
	}
}

// Listeners returns the number of active subscriptions.
func (d *Document) Listeners() int {
	return len(d.listeners)
}

// Active reports whether the subscription is still attached.
func (s *Subscription) Active() bool {
	return s != nil && s.doc != nil
}

// Release detaches the subscription. Calling it more than once is a no-op.
func (s *Subscription) Release() {
	if !s.Active() {
		return
	}
	d := s.doc
	for i, sub := range d.listeners {
		if sub.id == s.id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
	s.doc = nil
}
