package report

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/model"
	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// SheetName returns the worksheet holding an element's stiffness matrix
func SheetName(element int) string {
	return fmt.Sprintf("E%d", element)
}

// WriteXLSX writes an element summary sheet plus one sheet per element with its
// DOF map and 6x6 global stiffness matrix
func WriteXLSX(filename string, m *model.Model, stiffnesses []model.ElementStiffness) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if err := writeSummary(f, m); err != nil {
		return err
	}

	for _, ks := range stiffnesses {
		if err := writeStiffness(f, ks); err != nil {
			return fmt.Errorf("element %d: %w", ks.Index, err)
		}
	}

	return f.SaveAs(filename)
}

func writeSummary(f *excelize.File, m *model.Model) error {
	header := []interface{}{"Element", "Node 1", "Node 2", "Length", "Angle (deg)", "Material", "E", "Section", "A", "I"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}

	for i, e := range m.Elements() {
		row := []interface{}{
			e.Index(),
			e.Node1().Index(),
			e.Node2().Index(),
			e.Length(),
			e.Angle() * 180 / math.Pi,
			e.Material().Name,
			e.Material().E,
			e.Section().Name,
			e.Section().A,
			e.Section().I,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeStiffness(f *excelize.File, ks model.ElementStiffness) error {
	sheet := SheetName(ks.Index)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	// Row 1: DOF map, row 2: labels, rows 3..8: matrix
	if err := f.SetCellValue(sheet, "A1", "DOF"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A2", "K"); err != nil {
		return err
	}
	for j, label := range diagram.GlobalLabels {
		if err := setCell(f, sheet, j+2, 1, ks.DOFs[j]); err != nil {
			return err
		}
		if err := setCell(f, sheet, j+2, 2, label); err != nil {
			return err
		}
		if err := setCell(f, sheet, 1, j+3, label); err != nil {
			return err
		}
	}

	r, c := ks.K.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := setCell(f, sheet, j+2, i+3, ks.K.At(i, j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, v)
}
