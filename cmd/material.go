package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/model"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/spf13/cobra"
)

// materialFlags are shared by commands that need a single material
type materialFlags struct {
	e          float64
	nu         float64
	density    float64
	steel      bool
	concreteFc float64
}

func (f *materialFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.e, "modulus", "E", 0, "Young's modulus E (MPa)")
	cmd.Flags().Float64VarP(&f.nu, "poisson", "v", 0.3, "Poisson's ratio ν")
	cmd.Flags().Float64Var(&f.density, "density", 0, "Mass density ρ (t/mm³)")
	cmd.Flags().BoolVar(&f.steel, "steel", false, "Use structural steel properties (E = 200 GPa, ν = 0.3)")
	cmd.Flags().Float64Var(&f.concreteFc, "concrete-fc", 0, "Use normal-weight concrete with this f'c (MPa), Ec = 4700√f'c")
	cmd.MarkFlagsMutuallyExclusive("modulus", "steel", "concrete-fc")
}

// resolve builds the material from presets or explicit values
func (f *materialFlags) resolve(index int) (*model.Material, error) {
	switch {
	case f.steel:
		return nscp.Steel(index), nil
	case f.concreteFc > 0:
		return nscp.Concrete(index, f.concreteFc)
	default:
		return model.NewMaterial(index, "User", f.e, f.density, f.nu)
	}
}

var matFlags materialFlags

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Derived elastic properties of a material",
	Long: `Calculate the shear modulus G = E/2(1+ν) and bulk modulus
K = E/3(1-2ν) of an isotropic material.

Poisson's ratio must satisfy -1 < ν < 0.5.

Examples:
  gobeam material -E 200000 -v 0.25
  gobeam material --steel
  gobeam material --concrete-fc 28`,
	Run: runMaterial,
}

func init() {
	rootCmd.AddCommand(materialCmd)
	matFlags.register(materialCmd)
}

func runMaterial(cmd *cobra.Command, args []string) {
	m, err := matFlags.resolve(0)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printHeader("MATERIAL PROPERTIES")

	printMaterial(m)

	fmt.Println("DERIVED PROPERTIES:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shear Modulus (G):\t%.2f MPa\n", m.ShearModulus())
	fmt.Fprintf(w, "  Bulk Modulus (K):\t%.2f MPa\n", m.BulkModulus())
	w.Flush()
	fmt.Println()
}

func printMaterial(m *model.Material) {
	fmt.Println("MATERIAL:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name:\t%s\n", m.Name)
	fmt.Fprintf(w, "  Young's Modulus (E):\t%.2f MPa\n", m.E)
	fmt.Fprintf(w, "  Poisson's Ratio (ν):\t%.3f\n", m.Poisson)
	if m.Density > 0 {
		fmt.Fprintf(w, "  Density (ρ):\t%.3e t/mm³\n", m.Density)
	}
	w.Flush()
	fmt.Println()
}
