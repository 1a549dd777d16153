package feedback

import (
	"log"

	"github.com/dshills/lumiwidgets/pkg/graph"
)

// Listener applies feedback events to the widgets of a graph.
type Listener struct {
	graph *graph.Graph
}

// NewListener creates a listener over g.
func NewListener(g *graph.Graph) *Listener {
	return &Listener{graph: g}
}

// Apply overwrites the addressed widget's value with ev.Value.
//
// An unknown node or widget is not an error: the node may have been
// removed, or the node type may not expose the widget. Apply then does
// nothing and returns false. The write never runs widget callbacks.
func (l *Listener) Apply(ev Event) bool {
	w, err := l.graph.Widget(ev.NodeID, ev.WidgetName)
	if err != nil {
		log.Printf("feedback: dropping event: %v", err)
		return false
	}

	w.SetValue(ev.Value)
	return true
}

// Handle decodes a raw payload and applies it. Malformed payloads are dropped.
func (l *Listener) Handle(payload []byte) {
	ev, err := Decode(payload)
	if err != nil {
		log.Printf("feedback: dropping payload: %v", err)
		return
	}
	l.Apply(ev)
}

// Attach subscribes the listener to EventName on bus.
func (l *Listener) Attach(bus *Bus) *Subscription {
	return bus.Subscribe(EventName, l.Handle)
}
