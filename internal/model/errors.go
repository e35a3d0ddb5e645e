package model

import (
	"errors"
	"fmt"
)

var (
	// Element construction failures
	ErrDuplicateNode     = errors.New("element needs to connect to two different nodes")
	ErrDegenerateElement = errors.New("element has zero length")
	ErrNonFiniteGeometry = errors.New("element geometry is not finite")
	ErrNodeCount         = errors.New("element needs exactly two nodes")

	// Property validation failures
	ErrInvalidMaterial = errors.New("invalid material")
	ErrInvalidSection  = errors.New("invalid section")

	// Registry failures
	ErrDuplicateIndex  = errors.New("duplicate index")
	ErrUnknownNode     = errors.New("unknown node")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrUnknownSection  = errors.New("unknown section")
	ErrSparseNodes     = errors.New("node indices are not dense and zero-based")
)

// ElementError reports a failed element construction
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// PropertyError reports material or section input outside its valid range
type PropertyError struct {
	Kind  error // ErrInvalidMaterial or ErrInvalidSection
	Index int
	Name  string
	msg   string
}

func (e *PropertyError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%v %d (%s): %s", e.Kind, e.Index, e.Name, e.msg)
	}
	return fmt.Sprintf("%v %d: %s", e.Kind, e.Index, e.msg)
}

func (e *PropertyError) Unwrap() error {
	return e.Kind
}
