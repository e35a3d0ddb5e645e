package model

import (
	"fmt"
	"math"
)

// Material holds the elastic and physical properties of a member
type Material struct {
	Index   int
	Name    string
	E       float64 // Young's modulus
	Density float64 // mass density (ρ)
	Poisson float64 // Poisson's ratio (ν)
}

// NewMaterial creates a validated material.
// E must be positive and ν must lie strictly between -1 and 0.5, otherwise the
// shear or bulk modulus would be undefined.
func NewMaterial(index int, name string, e, density, poisson float64) (*Material, error) {
	m := &Material{
		Index:   index,
		Name:    name,
		E:       e,
		Density: density,
		Poisson: poisson,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the material properties
func (m *Material) Validate() error {
	if !(m.E > 0) || math.IsInf(m.E, 1) {
		return m.invalid(fmt.Sprintf("elastic modulus must be positive and finite, got E=%g", m.E))
	}
	if !(m.Poisson > -1 && m.Poisson < 0.5) {
		return m.invalid(fmt.Sprintf("Poisson's ratio must satisfy -1 < ν < 0.5, got ν=%g", m.Poisson))
	}
	if !(m.Density >= 0) || math.IsInf(m.Density, 1) {
		return m.invalid(fmt.Sprintf("density must be finite and not negative, got ρ=%g", m.Density))
	}
	return nil
}

func (m *Material) invalid(msg string) error {
	return &PropertyError{Kind: ErrInvalidMaterial, Index: m.Index, Name: m.Name, msg: msg}
}

// ShearModulus returns G = E / 2(1+ν)
func (m *Material) ShearModulus() float64 {
	return m.E / (2 * (1 + m.Poisson))
}

// BulkModulus returns K = E / 3(1-2ν)
func (m *Material) BulkModulus() float64 {
	return m.E / (3 * (1 - 2*m.Poisson))
}
