package model

import (
	"fmt"
	"math"
)

// Section holds the cross-section properties used by beam elements
type Section struct {
	Index int
	Name  string
	A     float64 // cross-sectional area
	I     float64 // in-plane moment of inertia
}

// NewSection creates a validated section. A and I must both be positive and finite.
func NewSection(index int, name string, a, i float64) (*Section, error) {
	s := &Section{Index: index, Name: name, A: a, I: i}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the section properties
func (s *Section) Validate() error {
	if !(s.A > 0) || math.IsInf(s.A, 1) {
		return &PropertyError{Kind: ErrInvalidSection, Index: s.Index, Name: s.Name,
			msg: fmt.Sprintf("area must be positive and finite, got A=%g", s.A)}
	}
	if !(s.I > 0) || math.IsInf(s.I, 1) {
		return &PropertyError{Kind: ErrInvalidSection, Index: s.Index, Name: s.Name,
			msg: fmt.Sprintf("moment of inertia must be positive and finite, got I=%g", s.I)}
	}
	return nil
}

// RadiusOfGyration returns r = √(I/A)
func (s *Section) RadiusOfGyration() float64 {
	return math.Sqrt(s.I / s.A)
}
