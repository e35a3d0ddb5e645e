package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/model"
	"github.com/spf13/cobra"
)

var (
	// Geometry inputs
	elemX1, elemY1 float64
	elemX2, elemY2 float64
	elemNode1      int
	elemNode2      int

	// Options
	elemLocalOnly bool

	elemMat materialFlags
	elemSec sectionFlags
)

var elementCmd = &cobra.Command{
	Use:   "element",
	Short: "Stiffness matrices of a single beam element",
	Long: `Compute the local and global stiffness matrices of a single 2D
Euler-Bernoulli beam element.

Local DOFs:  [v1, θ1, v2, θ2]          (4x4 bending stiffness)
Global DOFs: [u1, v1, θ1, u2, v2, θ2]  (6x6, including axial EA/L)

The node indices define where the global matrix scatters into a
structure (node n owns DOFs 3n, 3n+1, 3n+2).

Examples:
  # Inclined element of length 5 with steel and A=100, I=1000
  gobeam element --x2 3 --y2 4 --steel -A 100 -I 1000

  # Concrete rectangular member between nodes 4 and 7
  gobeam element --n1 4 --n2 7 --x2 6000 --concrete-fc 28 --width 300 --height 500`,
	Run: runElement,
}

func init() {
	rootCmd.AddCommand(elementCmd)

	// Geometry flags
	elementCmd.Flags().Float64Var(&elemX1, "x1", 0, "X coordinate of node 1")
	elementCmd.Flags().Float64Var(&elemY1, "y1", 0, "Y coordinate of node 1")
	elementCmd.Flags().Float64Var(&elemX2, "x2", 0, "X coordinate of node 2")
	elementCmd.Flags().Float64Var(&elemY2, "y2", 0, "Y coordinate of node 2")
	elementCmd.Flags().IntVar(&elemNode1, "n1", 0, "Index of node 1")
	elementCmd.Flags().IntVar(&elemNode2, "n2", 1, "Index of node 2")

	elemMat.register(elementCmd)
	elemSec.register(elementCmd)

	elementCmd.Flags().BoolVar(&elemLocalOnly, "local", false, "Only print the local stiffness matrix")
}

func runElement(cmd *cobra.Command, args []string) {
	mt, err := elemMat.resolve(0)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	sec, _, err := elemSec.resolve(0)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	n1 := model.NewNode(elemNode1, elemX1, elemY1)
	n2 := model.NewNode(elemNode2, elemX2, elemY2)
	e, err := model.NewElement(0, mt, sec, n1, n2, model.WithTolerances(tolerances()))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printHeader("2D BEAM ELEMENT STIFFNESS")
	printMaterial(mt)
	printSection(sec)
	printElement(e)

	fmt.Print(diagram.DrawMatrix("LOCAL STIFFNESS [v1, θ1, v2, θ2]", diagram.LocalLabels, e.LocalStiffness()))
	fmt.Println()

	if elemLocalOnly {
		return
	}

	fmt.Print(diagram.DrawMatrix("GLOBAL STIFFNESS [u1, v1, θ1, u2, v2, θ2]", diagram.GlobalLabels, e.GlobalStiffness()))
	dofs := e.DOFs()
	fmt.Print(diagram.DrawDOFMap(diagram.GlobalLabels, dofs[:]))
	fmt.Println()
}

func printElement(e *model.Element) {
	fmt.Printf("ELEMENT %d:\n", e.Index())
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	n1, n2 := e.Node1(), e.Node2()
	fmt.Fprintf(w, "  Node 1:\t%d (%.4g, %.4g)\n", n1.Index(), n1.X(), n1.Y())
	fmt.Fprintf(w, "  Node 2:\t%d (%.4g, %.4g)\n", n2.Index(), n2.X(), n2.Y())
	fmt.Fprintf(w, "  Length (L):\t%.4f\n", e.Length())
	fmt.Fprintf(w, "  Orientation (θ):\t%.2f°\n", e.Angle()*180/math.Pi)
	fmt.Fprintf(w, "  cos θ, sin θ:\t%.6f, %.6f\n", e.Cos(), e.Sin())
	fmt.Fprintf(w, "  EI/L³:\t%.4e\n", e.Material().E*e.Section().I/math.Pow(e.Length(), 3))
	fmt.Fprintf(w, "  EA/L:\t%.4e\n", e.Material().E*e.Section().A/e.Length())
	w.Flush()
	fmt.Println()
}
