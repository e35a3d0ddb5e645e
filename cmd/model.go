package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/model"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/spf13/cobra"
)

var (
	modelFile        string
	modelElement     int
	modelXLSXFile    string
	modelPDFFile     string
	modelDiagramFile string
	modelQuiet       bool
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Element stiffness matrices of a model file",
	Long: `Load a model from a JSON file and compute the global stiffness
matrix and DOF map of every element.

The matrices are not assembled; each one is listed with the structure
DOFs its rows and columns belong to.

Example JSON file structure:
{
  "name": "Portal Frame",
  "tolerances": {"zero_length": 1e-10, "coincidence": 1e-6},
  "nodes": [
    {"index": 0, "x": 0, "y": 0},
    {"index": 1, "x": 0, "y": 3000},
    {"index": 2, "x": 4000, "y": 3000}
  ],
  "materials": [
    {"index": 0, "name": "Steel", "E": 200000, "density": 7.85e-9, "poisson": 0.3}
  ],
  "sections": [
    {"index": 0, "name": "W250", "A": 4740, "I": 7.1e7}
  ],
  "elements": [
    {"index": 0, "material": 0, "section": 0, "nodes": [0, 1]},
    {"index": 1, "material": 0, "section": 0, "nodes": [1, 2]}
  ]
}

Examples:
  gobeam model -f portal.json
  gobeam model -f portal.json --element 1
  gobeam model -f portal.json --xlsx k.xlsx --pdf k.pdf -o portal.png`,
	Run: runModel,
}

func init() {
	rootCmd.AddCommand(modelCmd)

	modelCmd.Flags().StringVarP(&modelFile, "file", "f", "", "Path to model JSON file [required]")
	modelCmd.MarkFlagRequired("file")

	modelCmd.Flags().IntVarP(&modelElement, "element", "e", -1, "Only print this element")
	modelCmd.Flags().BoolVarP(&modelQuiet, "quiet", "q", false, "Do not print matrices")

	// Export options
	modelCmd.Flags().StringVar(&modelXLSXFile, "xlsx", "", "Export stiffness matrices to an XLSX workbook")
	modelCmd.Flags().StringVar(&modelPDFFile, "pdf", "", "Export stiffness report to PDF")
	modelCmd.Flags().StringVarP(&modelDiagramFile, "output", "o", "", "Export geometry diagram to file (png, svg, pdf)")
}

func runModel(cmd *cobra.Command, args []string) {
	def, err := model.ReadFile(modelFile)
	if err != nil {
		fmt.Printf("Error loading model: %v\n", err)
		return
	}

	// tolerances given on the command line override the file
	flags := cmd.Flags()
	if flags.Changed("zero-length-tol") || flags.Changed("coincidence-tol") {
		t := model.DefaultTolerances()
		if def.Tolerances != nil {
			t = *def.Tolerances
		}
		if flags.Changed("zero-length-tol") {
			t.ZeroLength = zeroLengthTol
		}
		if flags.Changed("coincidence-tol") {
			t.Coincidence = coincidenceTol
		}
		def.Tolerances = &t
	}

	m, err := def.Build()
	if err != nil {
		fmt.Printf("Error building model: %v\n", err)
		return
	}

	stiffnesses, err := m.ElementStiffnesses(context.Background())
	if err != nil {
		fmt.Printf("Error computing stiffness: %v\n", err)
		return
	}

	printHeader("MODEL ELEMENT STIFFNESS")
	printModelSummary(m)

	if !modelQuiet {
		found := false
		for _, ks := range stiffnesses {
			if modelElement >= 0 && ks.Index != modelElement {
				continue
			}
			found = true
			e, _ := m.Element(ks.Index)
			printElement(e)
			fmt.Print(diagram.DrawMatrix(fmt.Sprintf("ELEMENT %d GLOBAL STIFFNESS", ks.Index), diagram.GlobalLabels, ks.K))
			fmt.Print(diagram.DrawDOFMap(diagram.GlobalLabels, ks.DOFs[:]))
			fmt.Println()
		}
		if modelElement >= 0 && !found {
			fmt.Printf("Error: element %d not found\n", modelElement)
		}
	}

	if modelXLSXFile != "" {
		if err := report.WriteXLSX(modelXLSXFile, m, stiffnesses); err != nil {
			fmt.Printf("Error exporting workbook: %v\n", err)
		} else {
			fmt.Printf("Workbook exported to: %s\n", modelXLSXFile)
		}
	}
	if modelPDFFile != "" {
		if err := report.WritePDF(modelPDFFile, m, stiffnesses); err != nil {
			fmt.Printf("Error exporting report: %v\n", err)
		} else {
			fmt.Printf("Report exported to: %s\n", modelPDFFile)
		}
	}
	if modelDiagramFile != "" {
		if err := diagram.ExportFrameDiagram(diagram.FromModel(m), modelDiagramFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", modelDiagramFile)
		}
	}
}

func printModelSummary(m *model.Model) {
	if m.Name != "" {
		fmt.Printf("  Model: %s\n", m.Name)
		fmt.Println()
	}

	fmt.Println("MODEL SUMMARY:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nodes:\t%d\n", len(m.Nodes()))
	fmt.Fprintf(w, "  Materials:\t%d\n", len(m.Materials()))
	fmt.Fprintf(w, "  Sections:\t%d\n", len(m.Sections()))
	fmt.Fprintf(w, "  Elements:\t%d\n", len(m.Elements()))
	fmt.Fprintf(w, "  Structure DOFs:\t%d\n", m.NumDOFs())
	w.Flush()
	fmt.Println()

	var warnings []string
	if err := m.CheckNodeNumbering(); err != nil {
		warnings = append(warnings, fmt.Sprintf("⚠ %v", err))
	}
	for _, p := range m.CoincidentNodes() {
		warnings = append(warnings, fmt.Sprintf("⚠ nodes %d and %d coincide", p.A.Index(), p.B.Index()))
	}
	if len(warnings) > 0 {
		fmt.Print(diagram.DrawSummaryBox("WARNINGS", warnings))
		fmt.Println()
	}
}
