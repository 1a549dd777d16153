package widget

import "strings"

// PlaceholderPrefix marks option values that stand for "nothing picked".
const PlaceholderPrefix = "Select"

// IsPlaceholder reports whether v is empty or names the placeholder option.
func IsPlaceholder(v string) bool {
	return v == "" || strings.HasPrefix(v, PlaceholderPrefix)
}

// ValueAccessor intercepts reads and writes of a widget value.
type ValueAccessor interface {
	// Read returns the value the widget reports.
	Read() string
	// Write stores v and reports whether it was accepted.
	Write(v string) bool
}

// PickerValue pins a picker's reported value to a fixed label.
//
// Reads always return the label. Writes of real picks are recorded in
// lastSelection, which nothing renders; placeholder writes are ignored.
type PickerValue struct {
	display       string
	lastSelection string
}

// NewPickerValue creates an accessor reporting display.
func NewPickerValue(display string) *PickerValue {
	return &PickerValue{display: display}
}

// Read returns the fixed display label.
func (p *PickerValue) Read() string {
	return p.display
}

// Write records v unless it is empty or placeholder-prefixed.
func (p *PickerValue) Write(v string) bool {
	if IsPlaceholder(v) {
		return false
	}
	p.lastSelection = v
	return true
}

// LastSelection returns the most recent accepted write.
func (p *PickerValue) LastSelection() string {
	return p.lastSelection
}
