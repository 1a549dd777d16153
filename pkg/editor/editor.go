// Package editor models the parts of the host node-graph editor that
// extensions hook into: node type registration, per-type creation hooks,
// node creation and the event bus.
package editor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/lumiwidgets/pkg/domain/types"
	"github.com/dshills/lumiwidgets/pkg/feedback"
	"github.com/dshills/lumiwidgets/pkg/graph"
	"github.com/dshills/lumiwidgets/pkg/nodedef"
	"github.com/dshills/lumiwidgets/pkg/widget"
)

// Common editor errors
var (
	// ErrUnknownNodeType is returned when creating a node of an unregistered type
	ErrUnknownNodeType = errors.New("unknown node type")
	// ErrDuplicateNodeType is returned when a node type is registered twice
	ErrDuplicateNodeType = errors.New("node type already registered")
)

// CreatedHook runs after a node instance has been created.
type CreatedHook func(n *widget.Node)

// HookChain is an ordered list of creation hooks. Hooks are appended and
// run in registration order with the same node.
type HookChain struct {
	mu    sync.Mutex
	hooks []CreatedHook
}

// Add appends h. Nil hooks are ignored.
func (c *HookChain) Add(h CreatedHook) {
	if h == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, h)
}

// Len returns the number of hooks.
func (c *HookChain) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.hooks)
}

// Run calls every hook with n.
func (c *HookChain) Run(n *widget.Node) {
	c.mu.Lock()
	hooks := make([]CreatedHook, len(c.hooks))
	copy(hooks, c.hooks)
	c.mu.Unlock()

	for _, h := range hooks {
		h(n)
	}
}

// NodeType is a registered node type.
type NodeType struct {
	Def       nodedef.Definition
	OnCreated HookChain
}

// Name returns the node type name
func (t *NodeType) Name() types.NodeTypeName {
	return t.Def.Name
}

// Extension customizes node types as they are registered.
type Extension interface {
	// Name identifies the extension.
	Name() string
	// BeforeRegisterNodeDef is called once per node type.
	BeforeRegisterNodeDef(nt *NodeType)
}

// Editor is a minimal host: a node graph, its node types and the
// extensions hooked into them.
type Editor struct {
	mu sync.RWMutex

	graph *graph.Graph
	bus   *feedback.Bus

	nodeTypes  map[types.NodeTypeName]*NodeType
	typeOrder  []types.NodeTypeName
	extensions []Extension
}

// New creates an editor over g, receiving backend events on bus.
func New(g *graph.Graph, bus *feedback.Bus) *Editor {
	if g == nil {
		g = graph.New()
	}
	if bus == nil {
		bus = feedback.Default
	}
	return &Editor{
		graph:     g,
		bus:       bus,
		nodeTypes: make(map[types.NodeTypeName]*NodeType),
	}
}

// Graph returns the live node registry
func (e *Editor) Graph() *graph.Graph {
	return e.graph
}

// Bus returns the event bus backend events arrive on
func (e *Editor) Bus() *feedback.Bus {
	return e.bus
}

// RegisterExtension adds ext. Node types that are already registered are
// offered to ext immediately; later ones as they register.
func (e *Editor) RegisterExtension(ext Extension) error {
	if ext == nil {
		return errors.New("extension cannot be nil")
	}

	e.mu.Lock()
	for _, existing := range e.extensions {
		if existing.Name() == ext.Name() {
			e.mu.Unlock()
			return fmt.Errorf("extension already registered: %s", ext.Name())
		}
	}
	e.extensions = append(e.extensions, ext)
	registered := make([]*NodeType, 0, len(e.typeOrder))
	for _, name := range e.typeOrder {
		registered = append(registered, e.nodeTypes[name])
	}
	e.mu.Unlock()

	for _, nt := range registered {
		ext.BeforeRegisterNodeDef(nt)
	}
	return nil
}

// RegisterNodeType registers def and lets every extension hook into it.
func (e *Editor) RegisterNodeType(def nodedef.Definition) (*NodeType, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid node definition: %w", err)
	}

	e.mu.Lock()
	if _, exists := e.nodeTypes[def.Name]; exists {
		e.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrDuplicateNodeType, def.Name)
	}
	nt := &NodeType{Def: def}
	e.nodeTypes[def.Name] = nt
	e.typeOrder = append(e.typeOrder, def.Name)
	exts := make([]Extension, len(e.extensions))
	copy(exts, e.extensions)
	e.mu.Unlock()

	for _, ext := range exts {
		ext.BeforeRegisterNodeDef(nt)
	}
	return nt, nil
}

// NodeType returns a registered node type.
func (e *Editor) NodeType(name types.NodeTypeName) (*NodeType, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	nt, ok := e.nodeTypes[name]
	return nt, ok
}

// NodeTypes returns the registered node types in registration order.
func (e *Editor) NodeTypes() []*NodeType {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*NodeType, 0, len(e.typeOrder))
	for _, name := range e.typeOrder {
		out = append(out, e.nodeTypes[name])
	}
	return out
}

// CreateNode builds a node of the given type, adds it to the graph and
// runs the type's creation hooks. An empty id gets a generated one.
func (e *Editor) CreateNode(typeName types.NodeTypeName, id types.NodeID, values map[string]string) (*widget.Node, error) {
	nt, ok := e.NodeType(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNodeType, typeName)
	}

	if id.IsZero() {
		id = types.NewNodeID()
	}

	node, err := nt.Def.Build(id, values)
	if err != nil {
		return nil, fmt.Errorf("failed to build node: %w", err)
	}

	if err := e.graph.Add(node); err != nil {
		return nil, fmt.Errorf("failed to add node: %w", err)
	}

	nt.OnCreated.Run(node)
	return node, nil
}

// RemoveNode drops a node from the graph.
func (e *Editor) RemoveNode(id types.NodeID) {
	e.graph.Remove(id)
}
