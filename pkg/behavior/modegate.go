package behavior

import (
	"github.com/dshills/lumiwidgets/pkg/widget"
)

// ModeGate keeps a dependent widget's disabled flag in step with a mode
// widget's value.
type ModeGate struct {
	mode      *widget.Widget
	dependent *widget.Widget
	rule      *GateRule
}

// NewModeGate creates a gate. Either widget may be nil; a nil rule means
// DefaultGateRule.
func NewModeGate(mode, dependent *widget.Widget, rule *GateRule) *ModeGate {
	if rule == nil {
		rule = DefaultGateRule()
	}
	return &ModeGate{
		mode:      mode,
		dependent: dependent,
		rule:      rule,
	}
}

// Reconcile writes the dependent widget's disabled flag from the current
// mode value. Without a mode widget the dependent widget is enabled.
// Without a dependent widget or element it does nothing.
func (g *ModeGate) Reconcile() {
	if g.dependent == nil || g.dependent.Element() == nil {
		return
	}

	disabled := false
	if g.mode != nil {
		disabled = g.rule.Disabled(g.mode.Value())
	}
	g.dependent.SetDisabled(disabled)
}

// Wire subscribes Reconcile to mode changes, after any subscribers already
// on the mode widget, and reconciles once for the initial mode value.
func (g *ModeGate) Wire() {
	if g.mode != nil {
		g.mode.OnChange(func(*widget.Widget, string) {
			g.Reconcile()
		})
	}
	g.Reconcile()
}
