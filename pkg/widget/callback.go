package widget

import "sync"

// Callback is invoked after a user-driven change with the widget and the
// value the user chose.
type Callback func(w *Widget, value string)

// CallbackChain is an ordered list of subscribers for a widget's change
// event. Subscribers are appended, never replaced, and run in the order
// they were added.
type CallbackChain struct {
	mu  sync.Mutex
	cbs []Callback
}

// Add appends cb to the chain. Nil callbacks are ignored.
func (c *CallbackChain) Add(cb Callback) {
	if cb == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cbs = append(c.cbs, cb)
}

// Len returns the number of subscribers.
func (c *CallbackChain) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cbs)
}

// Invoke runs every subscriber with the same arguments.
// The chain is snapshotted first so a subscriber may add to it.
func (c *CallbackChain) Invoke(w *Widget, value string) {
	c.mu.Lock()
	cbs := make([]Callback, len(c.cbs))
	copy(cbs, c.cbs)
	c.mu.Unlock()

	for _, cb := range cbs {
		cb(w, value)
	}
}
