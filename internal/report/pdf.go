package report

import (
	"fmt"
	"math"
	"time"

	"github.com/alexiusacademia/gobeam/internal/model"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/phpdave11/gofpdf"
)

// WritePDF writes a stiffness report: one block per element with its geometry,
// properties, DOF map and global stiffness matrix
func WritePDF(filename string, m *model.Model, stiffnesses []model.ElementStiffness) error {
	title := m.Name
	if title == "" {
		title = "Element Stiffness Report"
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator("gobeam v"+version.Version, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Nodes: %d   Elements: %d   DOFs: %d", len(m.Nodes()), len(m.Elements()), m.NumDOFs()))
	pdf.Ln(10)

	// gofpdf core fonts are cp1252, no Greek letters
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	labels := []string{"u1", "v1", "r1", "u2", "v2", "r2"}

	for _, ks := range stiffnesses {
		e, ok := m.Element(ks.Index)
		if !ok {
			return fmt.Errorf("element %d is not part of the model", ks.Index)
		}

		if pdf.GetY() > 140 {
			pdf.AddPage()
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Element %d  (node %d -> node %d)", e.Index(), e.Node1().Index(), e.Node2().Index()))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 5, tr(fmt.Sprintf("L = %.4g   angle = %.2f deg   %s: E = %.4g   %s: A = %.4g, I = %.4g",
			e.Length(), e.Angle()*180/math.Pi,
			e.Material().Name, e.Material().E,
			e.Section().Name, e.Section().A, e.Section().I)))
		pdf.Ln(5)
		pdf.Cell(0, 5, dofMap(labels, ks.DOFs))
		pdf.Ln(7)

		// Matrix table
		const w, h = 32.0, 6.0
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(12, h, "", "1", 0, "C", false, 0, "")
		for _, l := range labels {
			pdf.CellFormat(w, h, l, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		r, c := ks.K.Dims()
		for i := 0; i < r; i++ {
			pdf.SetFont("Helvetica", "B", 9)
			pdf.CellFormat(12, h, labels[i], "1", 0, "C", false, 0, "")
			pdf.SetFont("Courier", "", 8)
			for j := 0; j < c; j++ {
				pdf.CellFormat(w, h, fmt.Sprintf("%.5e", ks.K.At(i, j)), "1", 0, "R", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	return pdf.OutputFileAndClose(filename)
}

func dofMap(labels []string, dofs [model.GlobalDOFs]int) string {
	out := "DOF map:"
	for i, d := range dofs {
		out += fmt.Sprintf("  %s->%d", labels[i], d)
	}
	return out
}
