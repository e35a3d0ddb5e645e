package diagram

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Local and global DOF labels in matrix row order
var (
	LocalLabels  = []string{"v1", "θ1", "v2", "θ2"}
	GlobalLabels = []string{"u1", "v1", "θ1", "u2", "v2", "θ2"}
)

// DrawMatrix creates a labelled ASCII table of a stiffness matrix.
// labels name the rows and columns; missing labels fall back to indices.
func DrawMatrix(title string, labels []string, m mat.Matrix) string {
	var sb strings.Builder

	r, c := m.Dims()
	label := func(i int) string {
		if i < len(labels) {
			return labels[i]
		}
		return fmt.Sprintf("%d", i)
	}

	// Width of each cell from the widest formatted entry
	cells := make([][]string, r)
	width := 6
	for i := 0; i < r; i++ {
		cells[i] = make([]string, c)
		for j := 0; j < c; j++ {
			cells[i][j] = formatEntry(m.At(i, j))
			width = max(width, len(cells[i][j]))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", title))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(title)))))

	// Header
	sb.WriteString(fmt.Sprintf("  %-4s│", ""))
	for j := 0; j < c; j++ {
		sb.WriteString(fmt.Sprintf(" %*s", width, label(j)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s┼%s\n", strings.Repeat("─", 4), strings.Repeat("─", c*(width+1))))

	for i := 0; i < r; i++ {
		sb.WriteString(fmt.Sprintf("  %-4s│", label(i)))
		for j := 0; j < c; j++ {
			sb.WriteString(fmt.Sprintf(" %*s", width, cells[i][j]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatEntry(v float64) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%.4e", v)
}

// DrawDOFMap shows where each element row/column scatters in the structure
func DrawDOFMap(labels []string, dofs []int) string {
	var sb strings.Builder
	sb.WriteString("  DOF map: ")
	for i, d := range dofs {
		if i > 0 {
			sb.WriteString("  ")
		}
		l := fmt.Sprintf("%d", i)
		if i < len(labels) {
			l = labels[i]
		}
		sb.WriteString(fmt.Sprintf("%s→%d", l, d))
	}
	sb.WriteString("\n")
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; fmt widths count bytes, not runes
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
