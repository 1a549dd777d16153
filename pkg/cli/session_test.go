package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/lumiwidgets/pkg/editor"
	"github.com/dshills/lumiwidgets/pkg/feedback"
	"github.com/dshills/lumiwidgets/pkg/graph"
	"github.com/dshills/lumiwidgets/pkg/lumi"
	"github.com/dshills/lumiwidgets/pkg/nodedef"
	"github.com/dshills/lumiwidgets/pkg/widget"
)

func TestParseSession_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "empty YAML input"},
		{"bad yaml", "version: [", "failed to parse YAML"},
		{"missing version", "nodes: []", "missing required field: version"},
		{"empty step", "version: \"1.0\"\nsteps:\n  - {}\n", "step 1"},
		{
			"two fields in one step",
			"version: \"1.0\"\nsteps:\n  - feedback: '{}'\n    remove: \"1\"\n",
			"exactly one of",
		},
		{
			"interact without widget",
			"version: \"1.0\"\nsteps:\n  - interact: {node: \"1\", value: x}\n",
			"interact step needs node and widget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSession([]byte(tt.input))
			if err == nil {
				t.Fatalf("ParseSession() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseSession() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	content := `version: "1.0"
wildcards: ["__colors__"]
nodes:
  - id: "5:3"
    type: LumiWildcardEncode
    values:
      mode: fixed
steps:
  - interact: {node: "5:3", widget: "Select to add LoRA", value: detail}
  - remove: "5:3"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSession(path)
	if err != nil {
		t.Fatalf("LoadSession() error = %v", err)
	}
	if len(s.Nodes) != 1 || s.Nodes[0].ID != "5:3" || s.Nodes[0].Values["mode"] != "fixed" {
		t.Errorf("unexpected nodes: %+v", s.Nodes)
	}
	if len(s.Steps) != 2 || s.Steps[0].Interact == nil || s.Steps[1].Remove != "5:3" {
		t.Errorf("unexpected steps: %+v", s.Steps)
	}

	if _, err := LoadSession(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadSession() expected error for missing file")
	}
}

func newTestEditor(t *testing.T, wildcards, loras []string) *editor.Editor {
	t.Helper()
	ed := editor.New(graph.New(), feedback.NewBus())
	if _, err := lumi.New().Install(ed); err != nil {
		t.Fatal(err)
	}
	for _, def := range nodedef.Builtins(wildcards, loras) {
		if _, err := ed.RegisterNodeType(def); err != nil {
			t.Fatal(err)
		}
	}
	return ed
}

func TestSession_Run(t *testing.T) {
	ed := newTestEditor(t, []string{"__colors__"}, []string{"detail"})

	s := &Session{
		Version: "1.0",
		Nodes: []SessionNode{
			{ID: "12", Type: nodedef.WildcardEncodeType, Values: map[string]string{nodedef.WildcardTextWidget: "a scene"}},
			{ID: "13", Type: nodedef.WildcardProcessorType},
		},
		Steps: []Step{
			{Interact: &InteractStep{Node: "12", Widget: nodedef.LoRAPickerWidget, Value: "detail"}},
			{Interact: &InteractStep{Node: "12", Widget: nodedef.WildcardPickerWidget, Value: "__colors__"}},
			{Feedback: `{"node_id": 12, "widget_name": "populated_text", "value": "a scene red"}`},
			{Message: `{"type": "lumi-node-feedback", "data": {"node_id": "13", "widget_name": "wildcard_text", "value": "from server"}}`},
			{Message: `{"type": "status", "data": {"queue_remaining": 0}}`},
			{Interact: &InteractStep{Node: "12", Widget: nodedef.ModeWidget, Value: nodedef.ModeFixed}},
			{Remove: "13"},
		},
	}

	if err := s.Run(ed); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	state := Snapshot(ed)
	if len(state) != 1 {
		t.Fatalf("Snapshot() = %d nodes, want 1", len(state))
	}
	if state[0].ID != "12" {
		t.Fatalf("Snapshot()[0].ID = %q, want 12", state[0].ID)
	}

	got := make(map[string]WidgetState)
	for _, ws := range state[0].Widgets {
		got[ws.Name] = ws
	}

	if v := got[nodedef.WildcardTextWidget].Value; v != "a scene <lora:detail:1> __colors__" {
		t.Errorf("wildcard_text = %q", v)
	}
	if ws := got[nodedef.PopulatedTextWidget]; ws.Value != "a scene red" || ws.Disabled {
		t.Errorf("populated_text = %+v, want enabled with feedback value", ws)
	}
	if ws := got[nodedef.PopulatedTextWidget]; ws.Placeholder != lumi.PopulatedPlaceholder {
		t.Errorf("populated_text placeholder = %q", ws.Placeholder)
	}
	if v := got[nodedef.LoRAPickerWidget].Value; v != nodedef.LoRAPickerLabel {
		t.Errorf("LoRA picker value = %q, want label", v)
	}
}

func TestSession_RunErrors(t *testing.T) {
	t.Run("unknown widget", func(t *testing.T) {
		ed := newTestEditor(t, nil, nil)
		s := &Session{
			Version: "1.0",
			Nodes:   []SessionNode{{ID: "1", Type: nodedef.WildcardProcessorType}},
			Steps:   []Step{{Interact: &InteractStep{Node: "1", Widget: "Select to add LoRA", Value: "x"}}},
		}
		err := s.Run(ed)
		if !errors.Is(err, widget.ErrWidgetNotFound) {
			t.Errorf("Run() error = %v, want ErrWidgetNotFound", err)
		}
	})

	t.Run("unknown node type", func(t *testing.T) {
		ed := newTestEditor(t, nil, nil)
		s := &Session{Version: "1.0", Nodes: []SessionNode{{ID: "1", Type: "Missing"}}}
		err := s.Run(ed)
		if !errors.Is(err, editor.ErrUnknownNodeType) {
			t.Errorf("Run() error = %v, want ErrUnknownNodeType", err)
		}
	})

	t.Run("invalid message", func(t *testing.T) {
		ed := newTestEditor(t, nil, nil)
		s := &Session{Version: "1.0", Steps: []Step{{Message: "not json"}}}
		if err := s.Run(ed); err == nil {
			t.Error("Run() expected error for invalid message")
		}
	})

	t.Run("stale feedback is dropped", func(t *testing.T) {
		ed := newTestEditor(t, nil, nil)
		s := &Session{Version: "1.0", Steps: []Step{{Feedback: `{"node_id": 99, "widget_name": "mode", "value": "fixed"}`}}}
		if err := s.Run(ed); err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	})
}
