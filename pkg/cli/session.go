package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/lumiwidgets/pkg/domain/types"
	"github.com/dshills/lumiwidgets/pkg/editor"
	"github.com/dshills/lumiwidgets/pkg/feedback"
)

// Session is a recorded editor session: the nodes that were created and
// what happened to them afterwards.
type Session struct {
	Version   string        `yaml:"version"`
	Wildcards []string      `yaml:"wildcards,omitempty"`
	LoRAs     []string      `yaml:"loras,omitempty"`
	Nodes     []SessionNode `yaml:"nodes"`
	Steps     []Step        `yaml:"steps,omitempty"`
}

// SessionNode is a node created at the start of the session.
type SessionNode struct {
	ID     types.NodeID       `yaml:"id,omitempty"`
	Type   types.NodeTypeName `yaml:"type"`
	Values map[string]string  `yaml:"values,omitempty"`
}

// Step is one recorded event. Exactly one field is set.
type Step struct {
	// Interact is a user changing a widget (typing, picking, switching mode)
	Interact *InteractStep `yaml:"interact,omitempty"`
	// Feedback is a raw lumi-node-feedback payload
	Feedback string `yaml:"feedback,omitempty"`
	// Message is a raw server message envelope {"type": ..., "data": ...}
	Message string `yaml:"message,omitempty"`
	// Remove deletes a node from the graph
	Remove types.NodeID `yaml:"remove,omitempty"`
}

// InteractStep addresses a widget on a node.
type InteractStep struct {
	Node   types.NodeID `yaml:"node"`
	Widget string       `yaml:"widget"`
	Value  string       `yaml:"value"`
}

// ParseSession parses a session from YAML bytes
func ParseSession(data []byte) (*Session, error) {
	if len(data) == 0 {
		return nil, errors.New("empty YAML input")
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if s.Version == "" {
		return nil, errors.New("missing required field: version")
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// LoadSession parses a session from a YAML file
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	return ParseSession(data)
}

func (s Step) validate() error {
	set := 0
	if s.Interact != nil {
		set++
		if s.Interact.Node == "" || s.Interact.Widget == "" {
			return errors.New("interact step needs node and widget")
		}
	}
	if s.Feedback != "" {
		set++
	}
	if s.Message != "" {
		set++
	}
	if s.Remove != "" {
		set++
	}
	if set != 1 {
		return fmt.Errorf("exactly one of interact, feedback, message, remove must be set (got %d)", set)
	}
	return nil
}

// apply runs the step against ed.
//
// Interactions with unknown nodes or widgets are reported as errors;
// feedback for unknown targets is dropped by the listener like any other
// stale event.
func (s Step) apply(ed *editor.Editor) error {
	switch {
	case s.Interact != nil:
		w, err := ed.Graph().Widget(s.Interact.Node, s.Interact.Widget)
		if err != nil {
			return err
		}
		w.Interact(s.Interact.Value)

	case s.Feedback != "":
		ed.Bus().Publish(feedback.EventName, []byte(s.Feedback))

	case s.Message != "":
		msgType, payload, err := feedback.SplitEnvelope([]byte(s.Message))
		if err != nil {
			return fmt.Errorf("invalid message: %w", err)
		}
		ed.Bus().Publish(msgType, payload)

	case s.Remove != "":
		ed.RemoveNode(s.Remove)
	}
	return nil
}

// Run creates the session's nodes and applies every step in order.
func (s *Session) Run(ed *editor.Editor) error {
	for _, sn := range s.Nodes {
		if _, err := ed.CreateNode(sn.Type, sn.ID, sn.Values); err != nil {
			return fmt.Errorf("failed to create node %s: %w", sn.ID, err)
		}
	}

	for i, step := range s.Steps {
		if err := step.apply(ed); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// WidgetState is the observable state of one widget after a replay.
type WidgetState struct {
	Name        string `yaml:"name"`
	Value       string `yaml:"value"`
	Placeholder string `yaml:"placeholder,omitempty"`
	Disabled    bool   `yaml:"disabled,omitempty"`
}

// NodeState is the observable state of one node after a replay.
type NodeState struct {
	ID      types.NodeID       `yaml:"id"`
	Type    types.NodeTypeName `yaml:"type"`
	Widgets []WidgetState      `yaml:"widgets"`
}

// Snapshot captures the state of every live node, ordered by id.
func Snapshot(ed *editor.Editor) []NodeState {
	ids := ed.Graph().IDs()
	out := make([]NodeState, 0, len(ids))
	for _, id := range ids {
		n, err := ed.Graph().Node(id)
		if err != nil {
			continue
		}
		ns := NodeState{ID: n.ID(), Type: n.TypeName()}
		for _, w := range n.Widgets() {
			ws := WidgetState{Name: w.Name(), Value: w.Value(), Disabled: w.Disabled()}
			if el := w.Element(); el != nil {
				ws.Placeholder = el.Placeholder
			}
			ns.Widgets = append(ns.Widgets, ws)
		}
		out = append(out, ns)
	}
	return out
}
