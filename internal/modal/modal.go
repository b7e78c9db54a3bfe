// Package modal implements the two-state detail-view controller for the
// gallery: closed, or open on a single favorite URL.
package modal

// State identifies the controller state.
type State int

const (
	StateClosed State = iota
	StateOpen
)

// Controller is a synchronous two-state machine. It starts closed; Open
// moves to the open state with a payload URL, Close returns to closed.
// There are no other states and no timers.
//
// Controller is driven by a single event loop and performs no locking.
type Controller struct {
	state State
	url   string
}

// New returns a closed controller.
func New() *Controller {
	return &Controller{state: StateClosed}
}

// Open transitions to the open state showing url, from either state.
// Opening while already open replaces the payload. An empty URL is ignored:
// the payload must identify a favorite, so the state is left unchanged.
func (c *Controller) Open(url string) {
	if url == "" {
		return
	}
	c.state = StateOpen
	c.url = url
}

// Close transitions to the closed state and clears the payload. Closing an
// already-closed controller is a no-op.
func (c *Controller) Close() {
	c.state = StateClosed
	c.url = ""
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Current returns the payload URL and whether the modal is open.
func (c *Controller) Current() (string, bool) {
	return c.url, c.state == StateOpen
}
