package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/model"
	"github.com/alexiusacademia/gobeam/internal/shape"
	"github.com/spf13/cobra"
)

// sectionFlags are shared by commands that need a single section
type sectionFlags struct {
	area    float64
	inertia float64
	file    string
	width   float64
	height  float64
}

func (f *sectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.area, "area", "A", 0, "Cross-sectional area A (mm²)")
	cmd.Flags().Float64VarP(&f.inertia, "inertia", "I", 0, "Moment of inertia I (mm⁴)")
	cmd.Flags().StringVarP(&f.file, "section-file", "s", "", "Polygon section JSON file")
	cmd.Flags().Float64Var(&f.width, "width", 0, "Rectangular section width b (mm)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Rectangular section height h (mm)")
	cmd.MarkFlagsRequiredTogether("width", "height")
	cmd.MarkFlagsMutuallyExclusive("area", "section-file", "width")
	cmd.MarkFlagsMutuallyExclusive("inertia", "section-file", "width")
}

// resolve builds the section from a polygon file, a rectangle or explicit A and I
func (f *sectionFlags) resolve(index int) (*model.Section, *shape.Properties, error) {
	var poly *shape.Polygon
	switch {
	case f.file != "":
		p, err := shape.LoadFromFile(f.file)
		if err != nil {
			return nil, nil, fmt.Errorf("loading section: %w", err)
		}
		poly = p
	case f.width > 0 || f.height > 0:
		poly = shape.Rectangle(f.width, f.height)
	default:
		s, err := model.NewSection(index, "User", f.area, f.inertia)
		return s, nil, err
	}

	s, err := poly.ToSection(index)
	if err != nil {
		return nil, nil, err
	}
	return s, poly.CalculateProperties(), nil
}

var secFlags sectionFlags

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Geometric properties of a cross-section",
	Long: `Calculate the radius of gyration r = √(I/A) of a cross-section.

The section can be given directly by its area and moment of inertia, as
a rectangle, or as a polygon in a JSON file. For polygons the area,
centroid and centroidal moment of inertia are computed first.

Example JSON file structure:
{
  "name": "T-Beam",
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 300, "y": 0},
    {"x": 300, "y": 400},
    {"x": 450, "y": 400},
    {"x": 450, "y": 500},
    {"x": -150, "y": 500},
    {"x": -150, "y": 400},
    {"x": 0, "y": 400}
  ]
}

Examples:
  gobeam section -A 100 -I 1000
  gobeam section --width 300 --height 500
  gobeam section -s t-beam.json`,
	Run: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	secFlags.register(sectionCmd)
}

func runSection(cmd *cobra.Command, args []string) {
	s, props, err := secFlags.resolve(0)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printHeader("SECTION PROPERTIES")

	if props != nil {
		fmt.Println("SECTION GEOMETRY:")
		fmt.Println(rule)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Width (max):\t%.2f mm\n", props.Width)
		fmt.Fprintf(w, "  Height:\t%.2f mm\n", props.Height)
		fmt.Fprintf(w, "  Centroid (x, y):\t(%.2f, %.2f) mm\n", props.CentroidX, props.CentroidY)
		w.Flush()
		fmt.Println()
	}

	printSection(s)

	fmt.Println("DERIVED PROPERTIES:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Radius of Gyration (r):\t%.4f mm\n", s.RadiusOfGyration())
	w.Flush()
	fmt.Println()
}

func printSection(s *model.Section) {
	fmt.Println("SECTION:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name:\t%s\n", s.Name)
	fmt.Fprintf(w, "  Area (A):\t%.2f mm²\n", s.A)
	fmt.Fprintf(w, "  Moment of Inertia (I):\t%.4e mm⁴\n", s.I)
	w.Flush()
	fmt.Println()
}
