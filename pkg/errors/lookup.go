package errors

import (
	"fmt"
)

// LookupError records a failed name or id resolution against the graph.
//
// Lookups that fail are a normal condition for this layer (a node type may
// not expose every optional widget, a feedback event may race node
// teardown), so callers usually log and drop them. The error keeps enough
// context for that log line to be useful.
type LookupError struct {
	Operation  string // What was being resolved, e.g. "apply feedback"
	NodeID     string // Node being addressed
	WidgetName string // Widget being addressed (if applicable)
	Cause      error  // Underlying sentinel error
}

// NewLookupError creates a LookupError wrapping cause.
//
// Returns nil if cause is nil (no error to wrap).
//
// Example:
//
//	w, ok := node.Widget(name)
//	if !ok {
//	    return NewLookupError("apply feedback", nodeID, name, widget.ErrWidgetNotFound)
//	}
func NewLookupError(operation, nodeID, widgetName string, cause error) *LookupError {
	if cause == nil {
		return nil
	}

	return &LookupError{
		Operation:  operation,
		NodeID:     nodeID,
		WidgetName: widgetName,
		Cause:      cause,
	}
}

// Error implements the error interface.
//
// Format: "operation: node={id} widget={name}: {cause}"
// If widget name is empty, it's omitted from the message.
func (e *LookupError) Error() string {
	if e == nil {
		return "<nil LookupError>"
	}

	if e.WidgetName != "" {
		return fmt.Sprintf("%s: node=%s widget=%q: %v", e.Operation, e.NodeID, e.WidgetName, e.Cause)
	}
	return fmt.Sprintf("%s: node=%s: %v", e.Operation, e.NodeID, e.Cause)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *LookupError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
