// Package nodedef describes the widget layout of node types: widget names,
// kinds, defaults and combo option lists.
package nodedef

import (
	"errors"
	"fmt"

	"github.com/dshills/lumiwidgets/pkg/domain/types"
	"github.com/dshills/lumiwidgets/pkg/validation"
	"github.com/dshills/lumiwidgets/pkg/widget"
)

// Definition is the widget layout of one node type.
type Definition struct {
	Name     types.NodeTypeName `yaml:"name" json:"name"`
	Category string             `yaml:"category,omitempty" json:"category,omitempty"`
	Widgets  []WidgetDef        `yaml:"widgets" json:"widgets"`
}

// WidgetDef describes a single widget.
type WidgetDef struct {
	Name    string      `yaml:"name" json:"name"`
	Kind    widget.Kind `yaml:"kind" json:"kind"`
	Default string      `yaml:"default,omitempty" json:"default,omitempty"`
	Options []string    `yaml:"options,omitempty" json:"options,omitempty"`
}

// Validate checks the definition for structural problems.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return errors.New("node type name cannot be empty")
	}
	if !validation.IsValidIdentifier(d.Name.String()) {
		return fmt.Errorf("node type %q: name must contain only letters, digits, '-' or '_'", d.Name)
	}

	seen := make(map[string]bool, len(d.Widgets))
	for _, wd := range d.Widgets {
		if wd.Name == "" {
			return fmt.Errorf("node type %s: %w", d.Name, widget.ErrEmptyWidgetName)
		}
		if seen[wd.Name] {
			return fmt.Errorf("node type %s: %w: %q", d.Name, widget.ErrDuplicateWidget, wd.Name)
		}
		seen[wd.Name] = true

		switch wd.Kind {
		case widget.KindText, widget.KindMultiline, widget.KindNumber:
		case widget.KindCombo:
			if len(wd.Options) == 0 {
				return fmt.Errorf("node type %s: combo widget %q has no options", d.Name, wd.Name)
			}
		default:
			return fmt.Errorf("node type %s: widget %q has unknown kind %q", d.Name, wd.Name, wd.Kind)
		}
	}

	return nil
}

// Widget returns the widget definition with the given name.
func (d *Definition) Widget(name string) (WidgetDef, bool) {
	for _, wd := range d.Widgets {
		if wd.Name == name {
			return wd, true
		}
	}
	return WidgetDef{}, false
}

// Build creates the widgets for a new node instance. values override the
// defaults by widget name; combo widgets default to their first option.
func (d *Definition) Build(id types.NodeID, values map[string]string) (*widget.Node, error) {
	widgets := make([]*widget.Widget, 0, len(d.Widgets))
	for _, wd := range d.Widgets {
		value := wd.Default
		if value == "" && wd.Kind == widget.KindCombo && len(wd.Options) > 0 {
			value = wd.Options[0]
		}
		if v, ok := values[wd.Name]; ok {
			value = v
		}

		if wd.Kind == widget.KindCombo {
			widgets = append(widgets, widget.NewCombo(wd.Name, wd.Options, value))
		} else {
			widgets = append(widgets, widget.New(wd.Name, wd.Kind, value))
		}
	}

	for name := range values {
		if _, ok := d.Widget(name); !ok {
			return nil, fmt.Errorf("node type %s: %w: %q", d.Name, widget.ErrWidgetNotFound, name)
		}
	}

	return widget.NewNode(id, d.Name, widgets...)
}
