package nscp

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/model"
)

// NSCP 2015 Material Constants
// Units follow the code: MPa for moduli, mm for lengths, so densities are in t/mm³

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Poisson's ratios
	NuSteel    = 0.30
	NuConcrete = 0.20

	// Densities
	RhoSteel    = 7.85e-9 // 7850 kg/m³
	RhoConcrete = 2.40e-9 // 2400 kg/m³, normal-weight

	// Lower bound of f'c for structural concrete (Section 419.2.1.1)
	FcMin = 17.0 // MPa
)

// ConcreteModulus calculates Ec for normal-weight concrete
// NSCP 2015 Section 419.2.2.1: Ec = 4700√f'c
func ConcreteModulus(fc float64) float64 {
	return 4700 * math.Sqrt(fc)
}

// Steel returns structural steel properties
func Steel(index int) *model.Material {
	// constants are within range, validation cannot fail
	m, _ := model.NewMaterial(index, "Steel", Es, RhoSteel, NuSteel)
	return m
}

// Concrete returns normal-weight concrete properties for a given f'c (MPa)
func Concrete(index int, fc float64) (*model.Material, error) {
	if fc < FcMin {
		return nil, fmt.Errorf("f'c = %.2f MPa is below the %.0f MPa minimum for structural concrete", fc, FcMin)
	}
	name := fmt.Sprintf("Concrete f'c=%g MPa", fc)
	return model.NewMaterial(index, name, ConcreteModulus(fc), RhoConcrete, NuConcrete)
}
