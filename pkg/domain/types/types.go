// Package types defines core domain type aliases and identifiers for lumiwidgets.
package types

import "github.com/google/uuid"

// NodeID identifies a live node in the editor graph.
// The backend may address nodes with numbers or strings ("12", "5:3"), so
// ids are kept opaque and compared as strings.
type NodeID string

// NodeTypeName names a registered node type, e.g. "LumiWildcardProcessor".
type NodeTypeName string

// NewNodeID generates a new unique node ID.
func NewNodeID() NodeID {
	return NodeID(uuid.NewString())
}

// String returns the string representation of a NodeID.
func (id NodeID) String() string {
	return string(id)
}

// IsZero returns true if the NodeID is the zero value.
func (id NodeID) IsZero() bool {
	return id == ""
}

// String returns the string representation of a NodeTypeName.
func (n NodeTypeName) String() string {
	return string(n)
}
