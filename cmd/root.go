package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobeam/internal/model"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

// Tolerances shared by all commands
var (
	zeroLengthTol  float64
	coincidenceTol float64
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "2D Beam Element Stiffness Tool",
	Long: `gobeam - Go 2D Beam Element Stiffness Calculator

A CLI tool for computing element stiffness matrices of two-dimensional
Euler-Bernoulli beam elements for finite element structural analysis.

This tool helps structural engineers:
  - Build the 4x4 local bending stiffness of a beam element
  - Transform it into the 6x6 global stiffness (u, v, θ per node)
  - Obtain the DOF map used to scatter element matrices into a structure
  - Derive material (G, K) and section (r) properties

Assembly, supports, loads and solution are left to the analysis program
consuming these matrices.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go 2D Beam Element Stiffness Calculator                 ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Local bending and global element stiffness matrices")
		fmt.Println("    • JSON model files with nodes, materials, sections and elements")
		fmt.Println("    • Polygon cross-section properties")
		fmt.Println("    • XLSX / PDF stiffness reports and geometry diagrams")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().Float64Var(&zeroLengthTol, "zero-length-tol", model.DefaultZeroLength, "Minimum element length (model length units)")
	rootCmd.PersistentFlags().Float64Var(&coincidenceTol, "coincidence-tol", model.DefaultCoincidence, "Distance below which two nodes coincide (model length units)")
}

// tolerances returns the thresholds configured on the command line
func tolerances() model.Tolerances {
	return model.Tolerances{
		ZeroLength:  zeroLengthTol,
		Coincidence: coincidenceTol,
	}
}

const rule = "───────────────────────────────────────────────────────────────"

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}
