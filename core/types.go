package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative or NaN weight was supplied.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")
)

// Status is the visualization state of a vertex during a search.
type Status uint8

const (
	// StatusDefault is the resting state; nothing has touched the vertex.
	StatusDefault Status = iota
	// StatusQueued marks a vertex discovered and waiting in a frontier.
	StatusQueued
	// StatusVisited marks a vertex taken off the frontier and expanded.
	StatusVisited
	// StatusPath marks a vertex on the reported start→end path.
	StatusPath
)

// String returns the upper-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusDefault:
		return "DEFAULT"
	case StatusQueued:
		return "QUEUED"
	case StatusVisited:
		return "VISITED"
	case StatusPath:
		return "PATH"
	default:
		return "UNKNOWN"
	}
}

// vertex is the per-identity record: outgoing weights, their insertion
// order and the current status.
type vertex[V comparable] struct {
	weights map[V]float64 // neighbor → edge weight
	order   []V           // neighbors in insertion order
	status  Status
}

func newVertex[V comparable]() *vertex[V] {
	return &vertex[V]{weights: make(map[V]float64)}
}

// Graph is a weighted adjacency-map graph over vertex identities of type V.
//
// mu guards vertices, order and every vertex record reachable from them.
type Graph[V comparable] struct {
	mu       sync.RWMutex
	vertices map[V]*vertex[V] // identity → record
	order    []V              // identities in insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[V comparable]() *Graph[V] {
	return &Graph[V]{
		vertices: make(map[V]*vertex[V]),
	}
}
