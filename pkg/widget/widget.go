// Package widget models the per-node widget state the editor exposes:
// values, input element handles, callback chains and value accessors.
package widget

import (
	"errors"
	"sync"
)

// Common widget errors
var (
	// ErrWidgetNotFound is returned when a node has no widget with the requested name
	ErrWidgetNotFound = errors.New("widget not found")
	// ErrDuplicateWidget is returned when a node is built with two widgets of the same name
	ErrDuplicateWidget = errors.New("duplicate widget name")
	// ErrEmptyWidgetName is returned when a widget has no name
	ErrEmptyWidgetName = errors.New("widget name cannot be empty")
)

// Kind identifies how the editor renders a widget.
type Kind string

const (
	// KindText is a single-line text input.
	KindText Kind = "text"
	// KindMultiline is a multi-line text area.
	KindMultiline Kind = "multiline"
	// KindCombo is a dropdown selector over a fixed option list.
	KindCombo Kind = "combo"
	// KindNumber is a numeric input; the value is still carried as a string.
	KindNumber Kind = "number"
)

// Element is the input handle behind a text widget.
type Element struct {
	Placeholder string
	Disabled    bool
}

// Widget is a single named value slot on a node.
type Widget struct {
	mu sync.Mutex

	name     string
	kind     Kind
	value    string
	options  []string
	element  *Element
	accessor ValueAccessor

	callbacks CallbackChain
}

// New creates a widget with an initial value.
// Text and multiline widgets get an Element; other kinds have none.
func New(name string, kind Kind, value string) *Widget {
	w := &Widget{
		name:  name,
		kind:  kind,
		value: value,
	}
	if kind == KindText || kind == KindMultiline {
		w.element = &Element{}
	}
	return w
}

// NewCombo creates a combo widget over options.
func NewCombo(name string, options []string, value string) *Widget {
	w := New(name, KindCombo, value)
	w.options = append([]string(nil), options...)
	return w
}

// Name returns the widget name
func (w *Widget) Name() string {
	return w.name
}

// Kind returns the widget kind
func (w *Widget) Kind() Kind {
	return w.kind
}

// Options returns a copy of the combo option list.
func (w *Widget) Options() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.options...)
}

// SetOptions replaces the combo option list.
func (w *Widget) SetOptions(options []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.options = append([]string(nil), options...)
}

// Element returns the input handle, or nil if the widget has none.
func (w *Widget) Element() *Element {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.element
}

// AttachElement sets (or clears, with nil) the input handle.
func (w *Widget) AttachElement(el *Element) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.element = el
}

// SetPlaceholder sets the element placeholder. No-op without an element.
func (w *Widget) SetPlaceholder(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.element != nil {
		w.element.Placeholder = text
	}
}

// SetDisabled sets the element disabled flag. No-op without an element.
func (w *Widget) SetDisabled(disabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.element != nil {
		w.element.Disabled = disabled
	}
}

// Disabled reports the element disabled flag; false without an element.
func (w *Widget) Disabled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.element != nil && w.element.Disabled
}

// Value returns the reported value. With an accessor installed the
// accessor decides what is reported.
func (w *Widget) Value() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.accessor != nil {
		return w.accessor.Read()
	}
	return w.value
}

// SetValue overwrites the value without invoking callbacks.
// It reports whether the write was accepted; only an installed accessor
// can refuse a write.
func (w *Widget) SetValue(v string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.accessor != nil {
		return w.accessor.Write(v)
	}
	w.value = v
	return true
}

// Interact simulates a user-driven change: the value is written and then
// every callback in the chain runs with v, in registration order.
func (w *Widget) Interact(v string) {
	w.SetValue(v)
	w.callbacks.Invoke(w, v)
}

// InstallAccessor routes reads and writes of the value through a.
// Passing nil restores plain storage.
func (w *Widget) InstallAccessor(a ValueAccessor) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.accessor = a
}

// OnChange appends cb to the widget's callback chain.
func (w *Widget) OnChange(cb Callback) {
	w.callbacks.Add(cb)
}

// Callbacks returns the widget's callback chain.
func (w *Widget) Callbacks() *CallbackChain {
	return &w.callbacks
}
