// Package behavior implements the controllers that give Lumi nodes their
// interdependent widget behavior: mode-gated editability and
// append-on-select pickers.
package behavior

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultGateExpression disables the dependent widget in populate mode.
const DefaultGateExpression = `mode == "populate"`

// GateRule decides, from the mode widget's value, whether the dependent
// widget is disabled. The rule sees a single string variable, mode.
type GateRule struct {
	source  string
	program *vm.Program
}

// DefaultGateRule returns the rule compiled from DefaultGateExpression.
func DefaultGateRule() *GateRule {
	rule, err := CompileGateRule(DefaultGateExpression)
	if err != nil {
		panic(fmt.Sprintf("default gate rule does not compile: %v", err))
	}
	return rule
}

// CompileGateRule compiles a boolean expression over mode.
func CompileGateRule(source string) (*GateRule, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("gate expression cannot be empty")
	}

	program, err := expr.Compile(source, expr.Env(gateEnv("")), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid gate expression: %w", err)
	}

	return &GateRule{source: source, program: program}, nil
}

// String returns the expression source.
func (r *GateRule) String() string {
	return r.source
}

// Disabled evaluates the rule for a mode value.
// An evaluation error leaves the widget enabled.
func (r *GateRule) Disabled(mode string) bool {
	out, err := expr.Run(r.program, gateEnv(mode))
	if err != nil {
		return false
	}
	disabled, ok := out.(bool)
	return ok && disabled
}

func gateEnv(mode string) map[string]interface{} {
	return map[string]interface{}{"mode": mode}
}
