package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gobeam/internal/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Point represents a 2D coordinate
type Point struct {
	X float64
	Y float64
}

// NodeMark is a labelled node of the diagram
type NodeMark struct {
	Index int
	Point
}

// Member is a labelled element drawn between two points
type Member struct {
	Index    int
	From, To Point
	Section  string
}

// FrameDiagramData holds data for drawing the model geometry
type FrameDiagramData struct {
	Title   string
	Nodes   []NodeMark
	Members []Member
}

// FromModel collects the drawable geometry of a model
func FromModel(m *model.Model) FrameDiagramData {
	data := FrameDiagramData{Title: m.Name}
	if data.Title == "" {
		data.Title = "Model Geometry"
	}

	for _, n := range m.Nodes() {
		data.Nodes = append(data.Nodes, NodeMark{Index: n.Index(), Point: Point{X: n.X(), Y: n.Y()}})
	}
	for _, e := range m.Elements() {
		n1, n2 := e.Node1(), e.Node2()
		data.Members = append(data.Members, Member{
			Index:   e.Index(),
			From:    Point{X: n1.X(), Y: n1.Y()},
			To:      Point{X: n2.X(), Y: n2.Y()},
			Section: e.Section().Name,
		})
	}
	return data
}

// ExportFrameDiagram exports the model geometry to an image file
func ExportFrameDiagram(data FrameDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	// Draw members
	for _, m := range data.Members {
		line, err := plotter.NewLine(plotter.XYs{
			{X: m.From.X, Y: m.From.Y},
			{X: m.To.X, Y: m.To.Y},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}

	// Draw nodes
	if len(data.Nodes) > 0 {
		pts := make(plotter.XYs, len(data.Nodes))
		for i, n := range data.Nodes {
			pts[i] = plotter.XY{X: n.X, Y: n.Y}
		}
		nodes, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		nodes.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		nodes.GlyphStyle.Radius = vg.Points(4)
		nodes.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(nodes)
	}

	// Add annotations
	var xys []plotter.XY
	var text []string
	for _, n := range data.Nodes {
		xys = append(xys, plotter.XY{X: n.X, Y: n.Y})
		text = append(text, fmt.Sprintf("N%d", n.Index))
	}
	for _, m := range data.Members {
		xys = append(xys, plotter.XY{X: (m.From.X + m.To.X) / 2, Y: (m.From.Y + m.To.Y) / 2})
		lbl := fmt.Sprintf("E%d", m.Index)
		if m.Section != "" {
			lbl += " " + m.Section
		}
		text = append(text, lbl)
	}
	if len(xys) > 0 {
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
		if err != nil {
			return err
		}
		labels.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(4)}
		p.Add(labels)
	}

	p.Add(plotter.NewGrid())

	// Determine file format from extension
	ext := filepath.Ext(filename)
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
