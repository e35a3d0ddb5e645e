package shape

import (
	"encoding/json"
	"fmt"
	"os"
)

// Polygon is a cross-section outline defined by its vertices.
// The section is defined in a local coordinate system where:
// - Y-axis points upward, in the plane of bending
// - X-axis points to the right
// - Origin can be at any convenient location
type Polygon struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Vertices of a simple polygon (no holes), clockwise or counter-clockwise
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64
	Height float64
	Area   float64

	// Centroid location
	CentroidX float64
	CentroidY float64

	// Second moment of area about the horizontal axis through the centroid
	Ixx float64
}

// Rectangle returns a b x h rectangle with its lower-left corner at the origin
func Rectangle(b, h float64) *Polygon {
	return &Polygon{
		Name: fmt.Sprintf("Rectangle %gx%g", b, h),
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: b, Y: 0},
			{X: b, Y: h},
			{X: 0, Y: h},
		},
	}
}

// LoadFromFile loads a polygon definition from a JSON file
func LoadFromFile(filepath string) (*Polygon, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var p Polygon
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks if the polygon definition is valid
func (p *Polygon) Validate() error {
	if len(p.Vertices) < 3 {
		return &ValidationError{"polygon must have at least 3 vertices"}
	}
	if area, _, _ := p.areaAndCentroid(); area == 0 {
		return &ValidationError{"polygon has zero area"}
	}
	return nil
}

// ValidationError represents a polygon validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
