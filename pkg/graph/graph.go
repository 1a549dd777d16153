// Package graph holds the live nodes of an editor session, keyed by id.
package graph

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/lumiwidgets/pkg/domain/types"
	lerrors "github.com/dshills/lumiwidgets/pkg/errors"
	"github.com/dshills/lumiwidgets/pkg/widget"
)

// Common graph errors
var (
	// ErrNodeNotFound is returned when no live node has the requested id
	ErrNodeNotFound = errors.New("node not found")
	// ErrDuplicateNode is returned when a node id is already registered
	ErrDuplicateNode = errors.New("duplicate node id")
)

// Graph is the registry of live nodes. Safe for concurrent use.
type Graph struct {
	mu    sync.RWMutex
	nodes map[types.NodeID]*widget.Node
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[types.NodeID]*widget.Node),
	}
}

// Add registers a node under its id.
func (g *Graph) Add(n *widget.Node) error {
	if n == nil {
		return errors.New("node cannot be nil")
	}
	if n.ID().IsZero() {
		return errors.New("node ID cannot be empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[n.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID())
	}
	g.nodes[n.ID()] = n
	return nil
}

// Remove drops a node. Removing an unknown id is a no-op.
func (g *Graph) Remove(id types.NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.nodes, id)
}

// Node returns the live node with the given id.
func (g *Graph) Node(id types.NodeID) (*widget.Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, lerrors.NewLookupError("resolve node", id.String(), "", ErrNodeNotFound)
	}
	return n, nil
}

// Widget resolves a widget by node id and exact widget name.
func (g *Graph) Widget(id types.NodeID, name string) (*widget.Widget, error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}

	w, ok := n.Widget(name)
	if !ok {
		return nil, lerrors.NewLookupError("resolve widget", id.String(), name, widget.ErrWidgetNotFound)
	}
	return w, nil
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// IDs returns the live node ids in sorted order.
func (g *Graph) IDs() []types.NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]types.NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
