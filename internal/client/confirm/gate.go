// Package confirm implements the two-press confirmation used before
// destructive actions.
package confirm

import (
	"sync"
	"time"
)

// DefaultDwell is how long a first press stays armed.
const DefaultDwell = 3 * time.Second

// Gate arms an id on the first press and confirms it on a second press
// within the dwell. Armed ids disarm on their own when the dwell expires.
type Gate struct {
	dwell     time.Duration
	afterFunc func(time.Duration, func()) *time.Timer

	mu      sync.Mutex
	armed   map[string]*time.Timer
	stopped bool
}

// NewGate creates a Gate. A non-positive dwell uses DefaultDwell.
func NewGate(dwell time.Duration) *Gate {
	if dwell <= 0 {
		dwell = DefaultDwell
	}
	return &Gate{
		dwell:     dwell,
		afterFunc: time.AfterFunc,
		armed:     make(map[string]*time.Timer),
	}
}

// Press reports true when id was armed, i.e. the action is confirmed.
// Otherwise it arms id and reports false.
func (g *Gate) Press(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return false
	}
	if t, ok := g.armed[id]; ok {
		t.Stop()
		delete(g.armed, id)
		return true
	}

	var timer *time.Timer
	timer = g.afterFunc(g.dwell, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.armed[id] == timer {
			delete(g.armed, id)
		}
	})
	g.armed[id] = timer
	return false
}

// Armed reports whether id is waiting for its confirming press.
func (g *Gate) Armed(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.armed[id]
	return ok
}

// Disarm cancels a pending confirmation of id.
func (g *Gate) Disarm(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if t, ok := g.armed[id]; ok {
		t.Stop()
		delete(g.armed, id)
	}
}

// Stop disarms everything. Presses after Stop never confirm.
func (g *Gate) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stopped = true
	for id, t := range g.armed {
		t.Stop()
		delete(g.armed, id)
	}
}
