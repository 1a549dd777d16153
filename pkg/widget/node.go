package widget

import (
	"fmt"
	"sync"

	"github.com/dshills/lumiwidgets/pkg/domain/types"
)

// Node owns an ordered, name-indexed collection of widgets.
type Node struct {
	id       types.NodeID
	typeName types.NodeTypeName

	widgets []*Widget
	byName  map[string]*Widget

	mu    sync.Mutex
	wired map[string]struct{}
}

// NewNode builds a node from widgets in declaration order.
// Widget names must be non-empty and unique within the node.
func NewNode(id types.NodeID, typeName types.NodeTypeName, widgets ...*Widget) (*Node, error) {
	n := &Node{
		id:       id,
		typeName: typeName,
		widgets:  make([]*Widget, 0, len(widgets)),
		byName:   make(map[string]*Widget, len(widgets)),
		wired:    make(map[string]struct{}),
	}

	for _, w := range widgets {
		if w == nil {
			continue
		}
		if w.Name() == "" {
			return nil, fmt.Errorf("node %s: %w", id, ErrEmptyWidgetName)
		}
		if _, exists := n.byName[w.Name()]; exists {
			return nil, fmt.Errorf("node %s: %w: %q", id, ErrDuplicateWidget, w.Name())
		}
		n.widgets = append(n.widgets, w)
		n.byName[w.Name()] = w
	}

	return n, nil
}

// ID returns the node ID
func (n *Node) ID() types.NodeID {
	return n.id
}

// TypeName returns the node type name
func (n *Node) TypeName() types.NodeTypeName {
	return n.typeName
}

// Widget looks a widget up by exact name.
func (n *Node) Widget(name string) (*Widget, bool) {
	w, ok := n.byName[name]
	return w, ok
}

// Widgets returns the widgets in declaration order.
func (n *Node) Widgets() []*Widget {
	out := make([]*Widget, len(n.widgets))
	copy(out, n.widgets)
	return out
}

// MarkWired records that the setup identified by key ran on this node.
// It returns false if key was already recorded.
func (n *Node) MarkWired(key string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, done := n.wired[key]; done {
		return false
	}
	n.wired[key] = struct{}{}
	return true
}

// IsWired reports whether the setup identified by key ran on this node.
func (n *Node) IsWired(key string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, done := n.wired[key]
	return done
}
