package behavior

import (
	"fmt"
	"strings"

	"github.com/dshills/lumiwidgets/pkg/widget"
)

// TokenFormat turns a picked option into the text appended to the target.
type TokenFormat string

const (
	// TokenWildcard appends the picked value verbatim.
	TokenWildcard TokenFormat = "wildcard"
	// TokenLoRA appends <lora:NAME:1>.
	TokenLoRA TokenFormat = "lora"
)

// Token formats value for appending.
func (f TokenFormat) Token(value string) string {
	switch f {
	case TokenLoRA:
		return fmt.Sprintf("<lora:%s:1>", value)
	default:
		return value
	}
}

// AppendToken returns current with token appended, separated by a single
// space. A blank current value is replaced by token.
func AppendToken(current, token string) string {
	if strings.TrimSpace(current) == "" {
		return token
	}
	return current + " " + token
}

// AppendOnSelect turns a picker into a one-shot action that appends the
// picked option to a target text widget.
type AppendOnSelect struct {
	picker *widget.Widget
	target *widget.Widget
	label  string
	format TokenFormat
}

// NewAppendOnSelect creates the controller. target may be nil, in which
// case picks do nothing.
func NewAppendOnSelect(picker, target *widget.Widget, label string, format TokenFormat) *AppendOnSelect {
	return &AppendOnSelect{
		picker: picker,
		target: target,
		label:  label,
		format: format,
	}
}

// Label returns the placeholder the picker reports as its value.
func (a *AppendOnSelect) Label() string {
	return a.label
}

// Select handles a pick. Empty and placeholder values are ignored.
func (a *AppendOnSelect) Select(value string) {
	if widget.IsPlaceholder(value) {
		return
	}
	if a.target == nil {
		return
	}

	token := a.format.Token(value)
	a.target.SetValue(AppendToken(a.target.Value(), token))
}

// Wire pins the picker's reported value to the label and subscribes
// Select to picks.
func (a *AppendOnSelect) Wire() {
	if a.picker == nil {
		return
	}
	a.picker.InstallAccessor(widget.NewPickerValue(a.label))
	a.picker.OnChange(func(_ *widget.Widget, value string) {
		a.Select(value)
	})
}
