// Package lumi wires the Lumi prompt nodes: placeholders, mode-gated
// editability of the populated text, append-on-select pickers, and the
// backend feedback listener.
package lumi

import (
	"fmt"
	"log"
	"sort"

	"github.com/dshills/lumiwidgets/pkg/behavior"
	"github.com/dshills/lumiwidgets/pkg/domain/types"
	"github.com/dshills/lumiwidgets/pkg/editor"
	"github.com/dshills/lumiwidgets/pkg/feedback"
	"github.com/dshills/lumiwidgets/pkg/widget"
)

// ExtensionName identifies the orchestrator among editor extensions.
const ExtensionName = "Comfy.LumiPack"

// Orchestrator wires nodes of the profiled types when they are created.
type Orchestrator struct {
	profiles map[types.NodeTypeName]Profile
	rule     *behavior.GateRule
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithGateRule replaces the default mode gate rule.
func WithGateRule(rule *behavior.GateRule) Option {
	return func(o *Orchestrator) {
		if rule != nil {
			o.rule = rule
		}
	}
}

// WithProfiles replaces the default processor and encoder profiles.
func WithProfiles(profiles ...Profile) Option {
	return func(o *Orchestrator) {
		o.profiles = make(map[types.NodeTypeName]Profile, len(profiles))
		for _, p := range profiles {
			o.profiles[p.TypeName] = p
		}
	}
}

// New creates an orchestrator with the default profiles.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		rule: behavior.DefaultGateRule(),
	}
	WithProfiles(DefaultProfiles()...)(o)
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Name implements editor.Extension.
func (o *Orchestrator) Name() string {
	return ExtensionName
}

// Profile returns the profile for a node type.
func (o *Orchestrator) Profile(name types.NodeTypeName) (Profile, bool) {
	p, ok := o.profiles[name]
	return p, ok
}

// TypeNames returns the profiled node types, sorted.
func (o *Orchestrator) TypeNames() []types.NodeTypeName {
	names := make([]types.NodeTypeName, 0, len(o.profiles))
	for name := range o.profiles {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// BeforeRegisterNodeDef implements editor.Extension: profiled node types
// get Setup appended to their creation hooks, after any existing hooks.
func (o *Orchestrator) BeforeRegisterNodeDef(nt *editor.NodeType) {
	if _, ok := o.profiles[nt.Name()]; !ok {
		return
	}
	nt.OnCreated.Add(func(n *widget.Node) {
		o.Setup(n)
	})
}

// Setup wires n according to its type's profile. It runs at most once
// per node and reports whether it wired anything on this call.
func (o *Orchestrator) Setup(n *widget.Node) bool {
	profile, ok := o.profiles[n.TypeName()]
	if !ok {
		return false
	}
	if !n.MarkWired(ExtensionName) {
		log.Printf("lumi: node %s already wired, skipping", n.ID())
		return false
	}

	lookup := func(name string) *widget.Widget {
		if name == "" {
			return nil
		}
		w, ok := n.Widget(name)
		if !ok {
			log.Printf("lumi: node %s (%s) has no widget %q", n.ID(), n.TypeName(), name)
			return nil
		}
		return w
	}

	for name, text := range profile.Placeholders {
		if w := lookup(name); w != nil {
			w.SetPlaceholder(text)
		}
	}

	mode := lookup(profile.ModeWidget)
	populated := lookup(profile.PopulatedWidget)
	behavior.NewModeGate(mode, populated, o.rule).Wire()

	target := lookup(profile.TextWidget)
	for _, pp := range profile.Pickers {
		picker := lookup(pp.Widget)
		if picker == nil {
			continue
		}
		behavior.NewAppendOnSelect(picker, target, pp.Label, pp.Format).Wire()
	}

	return true
}

// Install registers the orchestrator with ed and subscribes a feedback
// listener over ed's graph to ed's bus. The returned subscription
// detaches the listener.
func (o *Orchestrator) Install(ed *editor.Editor) (*feedback.Subscription, error) {
	if err := ed.RegisterExtension(o); err != nil {
		return nil, fmt.Errorf("failed to register extension: %w", err)
	}
	return feedback.NewListener(ed.Graph()).Attach(ed.Bus()), nil
}
