package route

import (
	"sync"

	"herbwala/internal/logging"
)

// Navigator owns the current route and a browser-style history stack. Visit
// pushes a new entry and truncates any forward history; Back and Forward
// replay entries without growing the stack. Every observed transition bumps
// a monotonic revision that the presentation layer watches to reset scroll
// position.
type Navigator struct {
	mu       sync.RWMutex
	history  []Route
	index    int
	revision uint64
}

// NewNavigator returns a navigator positioned at the home route.
func NewNavigator() *Navigator {
	return &Navigator{history: []Route{HomeRoute}}
}

// Current returns the active route.
func (n *Navigator) Current() Route {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.history[n.index]
}

// Fragment returns the active route's canonical fragment.
func (n *Navigator) Fragment() string {
	return n.Current().Fragment()
}

// Revision returns the transition counter. It increments on every Visit,
// Replace, Back, and Forward that actually changes position.
func (n *Navigator) Revision() uint64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.revision
}

// Visit navigates to the route, truncating forward history. Visiting the
// route already current is a no-op, matching hash navigation where setting
// an identical fragment fires no change event.
func (n *Navigator) Visit(r Route) Route {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.history[n.index] == r {
		return r
	}

	n.history = append(n.history[:n.index+1], r)
	n.index = len(n.history) - 1
	n.revision++
	logging.Nav("visit %s", r.Fragment())
	return r
}

// Replace swaps the current entry without growing history. Used for the
// unknown-fragment redirect so the dead fragment never lands on the stack.
func (n *Navigator) Replace(r Route) Route {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.history[n.index] == r {
		return r
	}

	n.history[n.index] = r
	n.revision++
	logging.Nav("replace %s", r.Fragment())
	return r
}

// Back moves one entry backward. The second return is false when there is no
// earlier entry.
func (n *Navigator) Back() (Route, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.index == 0 {
		return n.history[n.index], false
	}
	n.index--
	n.revision++
	logging.Nav("back %s", n.history[n.index].Fragment())
	return n.history[n.index], true
}

// Forward moves one entry forward. The second return is false when there is
// no later entry.
func (n *Navigator) Forward() (Route, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.index >= len(n.history)-1 {
		return n.history[n.index], false
	}
	n.index++
	n.revision++
	logging.Nav("forward %s", n.history[n.index].Fragment())
	return n.history[n.index], true
}

// CanBack reports whether Back would move.
func (n *Navigator) CanBack() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.index > 0
}

// CanForward reports whether Forward would move.
func (n *Navigator) CanForward() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.index < len(n.history)-1
}

// Len returns the history depth, for the nav debug display.
func (n *Navigator) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.history)
}
