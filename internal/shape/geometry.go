package shape

import (
	"math"

	"github.com/alexiusacademia/gobeam/internal/model"
)

// CalculateProperties computes geometric properties of the polygon
func (p *Polygon) CalculateProperties() *Properties {
	props := &Properties{}

	if len(p.Vertices) < 3 {
		return props
	}

	// Find bounding box
	minX, maxX := p.Vertices[0].X, p.Vertices[0].X
	minY, maxY := p.Vertices[0].Y, p.Vertices[0].Y

	for _, v := range p.Vertices {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}

	props.Width = maxX - minX
	props.Height = maxY - minY

	props.Area, props.CentroidX, props.CentroidY = p.areaAndCentroid()
	props.Ixx = p.centroidalIxx(props.Area, props.CentroidY)

	return props
}

// areaAndCentroid uses the shoelace formula
func (p *Polygon) areaAndCentroid() (area, cx, cy float64) {
	n := len(p.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		signedArea += cross
		sumX += (p.Vertices[i].X + p.Vertices[j].X) * cross
		sumY += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// centroidalIxx returns ∫(y - cy)² dA, shifting the second moment about the
// x-axis to the centroid with the parallel axis theorem
func (p *Polygon) centroidalIxx(area, cy float64) float64 {
	n := len(p.Vertices)
	if n < 3 || area == 0 {
		return 0
	}

	var sum, signedArea float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := p.Vertices[i], p.Vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		signedArea += cross
		sum += (vi.Y*vi.Y + vi.Y*vj.Y + vj.Y*vj.Y) * cross
	}

	// clockwise vertices give negative sums
	ix := sum / 12
	if signedArea < 0 {
		ix = -ix
	}

	return ix - area*cy*cy
}

// ToSection builds a beam section from the polygon's area and centroidal inertia
func (p *Polygon) ToSection(index int) (*model.Section, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	props := p.CalculateProperties()
	return model.NewSection(index, p.Name, props.Area, props.Ixx)
}
