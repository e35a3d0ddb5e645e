package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Number of degrees of freedom of a two-node beam element
const (
	LocalDOFs  = 4 // v1, θ1, v2, θ2
	GlobalDOFs = 6 // u1, v1, θ1, u2, v2, θ2
)

// positions of the bending DOFs (v, θ) and the axial DOFs (u) inside the
// expanded 6x6 local matrix
var (
	bendingDOFs = [LocalDOFs]int{1, 2, 4, 5}
	axialDOFs   = [2]int{0, 3}
)

// Element is a 2D Euler-Bernoulli beam element between two nodes.
//
//	        v1                       v2
//	        ^                        ^
//	        |   θ1                   |   θ2
//	       (1)-----------------------(2)------> local axis
//	     node1                     node2
//
// Geometry and the local bending stiffness are derived once at construction.
// Nodes, material and section are referenced, not copied, and are assumed not
// to change while the element is in use.
type Element struct {
	index    int
	material *Material
	section  *Section
	node1    *Node
	node2    *Node

	// derived geometry
	dx, dy float64
	length float64
	cos    float64
	sin    float64

	kl *mat.Dense // local bending stiffness [4][4]
}

type elementConfig struct {
	tol Tolerances
}

// ElementOption customizes element construction
type ElementOption func(*elementConfig)

// WithTolerances sets the thresholds used to reject degenerate elements
func WithTolerances(t Tolerances) ElementOption {
	return func(c *elementConfig) {
		c.tol = t.withDefaults()
	}
}

// NewElement creates a beam element connecting node1 to node2.
// It fails when both ends refer to the same node index, when a node coordinate
// is NaN or infinite, or when the element is shorter than the zero-length
// tolerance. No element exists on failure.
func NewElement(index int, material *Material, section *Section, node1, node2 *Node, opts ...ElementOption) (*Element, error) {
	cfg := elementConfig{tol: DefaultTolerances()}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case node1 == nil || node2 == nil:
		return nil, &ElementError{Index: index, Err: ErrUnknownNode}
	case material == nil:
		return nil, &ElementError{Index: index, Err: ErrUnknownMaterial}
	case section == nil:
		return nil, &ElementError{Index: index, Err: ErrUnknownSection}
	}

	e := &Element{
		index:    index,
		material: material,
		section:  section,
		node1:    node1,
		node2:    node2,
	}

	// Calculate length and orientation
	e.dx = node2.x - node1.x
	e.dy = node2.y - node1.y
	e.length = math.Hypot(e.dx, e.dy)

	if node1.index == node2.index {
		return nil, &ElementError{Index: index, Err: ErrDuplicateNode}
	}
	if math.IsNaN(e.length) || math.IsInf(e.length, 0) {
		return nil, &ElementError{Index: index, Err: ErrNonFiniteGeometry}
	}
	if !(e.length >= cfg.tol.ZeroLength) {
		return nil, &ElementError{Index: index, Err: ErrDegenerateElement}
	}

	e.cos = e.dx / e.length
	e.sin = e.dy / e.length

	e.kl = e.localStiffness()

	return e, nil
}

// Index returns the element number
func (e *Element) Index() int { return e.index }

// Material returns the material assigned to the element
func (e *Element) Material() *Material { return e.material }

// Section returns the cross-section assigned to the element
func (e *Element) Section() *Section { return e.section }

// Node1 returns the start node
func (e *Element) Node1() *Node { return e.node1 }

// Node2 returns the end node
func (e *Element) Node2() *Node { return e.node2 }

// Length returns the distance between the two nodes
func (e *Element) Length() float64 { return e.length }

// Cos returns the direction cosine of the element axis with the global x-axis
func (e *Element) Cos() float64 { return e.cos }

// Sin returns the direction sine of the element axis with the global x-axis
func (e *Element) Sin() float64 { return e.sin }

// Angle returns the orientation of the element axis in radians, measured
// counter-clockwise from the global x-axis
func (e *Element) Angle() float64 {
	return math.Atan2(e.dy, e.dx)
}

// DOFs returns the assembly map of the element: the global DOFs of node1
// followed by those of node2, in the row order of GlobalStiffness
func (e *Element) DOFs() [GlobalDOFs]int {
	d1, d2 := e.node1.DOFs(), e.node2.DOFs()
	return [GlobalDOFs]int{d1[0], d1[1], d1[2], d2[0], d2[1], d2[2]}
}

// LocalStiffness returns the 4x4 bending stiffness in local coordinates.
// DOFs are [v1, θ1, v2, θ2]: transverse displacement and rotation at each end.
// The returned matrix is a copy and may be modified by the caller.
func (e *Element) LocalStiffness() *mat.Dense {
	return mat.DenseCopyOf(e.kl)
}

func (e *Element) localStiffness() *mat.Dense {
	L := e.length
	k := e.material.E * e.section.I / (L * L * L)

	kl := mat.NewDense(LocalDOFs, LocalDOFs, []float64{
		12, -6 * L, -12, -6 * L,
		-6 * L, 4 * L * L, 6 * L, 2 * L * L,
		-12, 6 * L, 12, 6 * L,
		-6 * L, 2 * L * L, 6 * L, 4 * L * L,
	})
	kl.Scale(k, kl)
	return kl
}

// ExpandedLocalStiffness returns the 6x6 local stiffness with DOFs
// [u1, v1, θ1, u2, v2, θ2]: the bending matrix embedded at the v and θ rows and
// columns plus the axial terms EA/L at the u rows and columns
func (e *Element) ExpandedLocalStiffness() *mat.Dense {
	ke := mat.NewDense(GlobalDOFs, GlobalDOFs, nil)

	// Insert bending terms
	for i, ii := range bendingDOFs {
		for j, jj := range bendingDOFs {
			ke.Set(ii, jj, e.kl.At(i, j))
		}
	}

	// Add axial stiffness terms
	ea := e.material.E * e.section.A / e.length
	a1, a2 := axialDOFs[0], axialDOFs[1]
	ke.Set(a1, a1, ea)
	ke.Set(a2, a2, ea)
	ke.Set(a1, a2, -ea)
	ke.Set(a2, a1, -ea)

	return ke
}

// Transformation returns the 6x6 rotation matrix T that maps global element-end
// DOFs [u1, v1, θ1, u2, v2, θ2] into the local frame. Each node contributes the
// block
//
//	[  c  s  0 ]
//	[ -s  c  0 ]
//	[  0  0  1 ]
//
// so translations are projected onto the element axis and its normal and
// rotations pass through unchanged. T is orthogonal.
func (e *Element) Transformation() *mat.Dense {
	c, s := e.cos, e.sin
	t := mat.NewDense(GlobalDOFs, GlobalDOFs, nil)
	for _, b := range [2]int{0, DOFsPerNode} {
		t.Set(b, b, c)
		t.Set(b, b+1, s)
		t.Set(b+1, b, -s)
		t.Set(b+1, b+1, c)
		t.Set(b+2, b+2, 1)
	}
	return t
}

// GlobalStiffness returns the 6x6 element stiffness in global coordinates,
// Kg = Tᵀ·Ke·T, with rows and columns ordered as DOFs()
func (e *Element) GlobalStiffness() *mat.Dense {
	t := e.Transformation()
	ke := e.ExpandedLocalStiffness()

	var tk, kg mat.Dense
	tk.Mul(t.T(), ke)
	kg.Mul(&tk, t)
	return &kg
}
