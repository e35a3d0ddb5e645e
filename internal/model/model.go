package model

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Model owns the nodes, materials, sections and elements of a structure and
// guarantees unique indices within each kind. Elements are built from indices
// resolved against the model, so every element refers to entities the model
// owns.
//
// A Model is not safe for concurrent mutation. Once built, all queries are
// read-only and may run concurrently.
type Model struct {
	Name string

	tol       Tolerances
	nodes     map[int]*Node
	materials map[int]*Material
	sections  map[int]*Section
	elements  map[int]*Element
}

// Option configures a Model
type Option func(*Model)

// WithModelTolerances sets the tolerances used by the model and its elements
func WithModelTolerances(t Tolerances) Option {
	return func(m *Model) {
		m.tol = t.withDefaults()
	}
}

// New creates an empty model
func New(name string, opts ...Option) *Model {
	m := &Model{
		Name:      name,
		tol:       DefaultTolerances(),
		nodes:     make(map[int]*Node),
		materials: make(map[int]*Material),
		sections:  make(map[int]*Section),
		elements:  make(map[int]*Element),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Tolerances returns the thresholds in effect for the model
func (m *Model) Tolerances() Tolerances {
	return m.tol
}

// AddNode creates and registers a node
func (m *Model) AddNode(index int, x, y float64) (*Node, error) {
	if _, ok := m.nodes[index]; ok {
		return nil, fmt.Errorf("node %d: %w", index, ErrDuplicateIndex)
	}
	n := NewNode(index, x, y)
	m.nodes[index] = n
	return n, nil
}

// AddMaterial creates and registers a material
func (m *Model) AddMaterial(index int, name string, e, density, poisson float64) (*Material, error) {
	if _, ok := m.materials[index]; ok {
		return nil, fmt.Errorf("material %d: %w", index, ErrDuplicateIndex)
	}
	mt, err := NewMaterial(index, name, e, density, poisson)
	if err != nil {
		return nil, err
	}
	m.materials[index] = mt
	return mt, nil
}

// AddSection creates and registers a section
func (m *Model) AddSection(index int, name string, a, i float64) (*Section, error) {
	if _, ok := m.sections[index]; ok {
		return nil, fmt.Errorf("section %d: %w", index, ErrDuplicateIndex)
	}
	s, err := NewSection(index, name, a, i)
	if err != nil {
		return nil, err
	}
	m.sections[index] = s
	return s, nil
}

// AddElement resolves the given indices and registers a new beam element
func (m *Model) AddElement(index, material, section, node1, node2 int) (*Element, error) {
	if _, ok := m.elements[index]; ok {
		return nil, fmt.Errorf("element %d: %w", index, ErrDuplicateIndex)
	}
	mt, ok := m.materials[material]
	if !ok {
		return nil, &ElementError{Index: index, Err: fmt.Errorf("material %d: %w", material, ErrUnknownMaterial)}
	}
	sec, ok := m.sections[section]
	if !ok {
		return nil, &ElementError{Index: index, Err: fmt.Errorf("section %d: %w", section, ErrUnknownSection)}
	}
	n1, ok := m.nodes[node1]
	if !ok {
		return nil, &ElementError{Index: index, Err: fmt.Errorf("node %d: %w", node1, ErrUnknownNode)}
	}
	n2, ok := m.nodes[node2]
	if !ok {
		return nil, &ElementError{Index: index, Err: fmt.Errorf("node %d: %w", node2, ErrUnknownNode)}
	}

	e, err := NewElement(index, mt, sec, n1, n2, WithTolerances(m.tol))
	if err != nil {
		return nil, err
	}
	m.elements[index] = e
	return e, nil
}

// Node looks up a node by index
func (m *Model) Node(index int) (*Node, bool) {
	n, ok := m.nodes[index]
	return n, ok
}

// Material looks up a material by index
func (m *Model) Material(index int) (*Material, bool) {
	mt, ok := m.materials[index]
	return mt, ok
}

// Section looks up a section by index
func (m *Model) Section(index int) (*Section, bool) {
	s, ok := m.sections[index]
	return s, ok
}

// Element looks up an element by index
func (m *Model) Element(index int) (*Element, bool) {
	e, ok := m.elements[index]
	return e, ok
}

// Nodes returns all nodes ordered by index
func (m *Model) Nodes() []*Node {
	return sortedValues(m.nodes)
}

// Materials returns all materials ordered by index
func (m *Model) Materials() []*Material {
	return sortedValues(m.materials)
}

// Sections returns all sections ordered by index
func (m *Model) Sections() []*Section {
	return sortedValues(m.sections)
}

// Elements returns all elements ordered by index
func (m *Model) Elements() []*Element {
	return sortedValues(m.elements)
}

func sortedValues[T any](byIndex map[int]T) []T {
	keys := make([]int, 0, len(byIndex))
	for k := range byIndex {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]T, len(keys))
	for i, k := range keys {
		out[i] = byIndex[k]
	}
	return out
}

// NumDOFs returns the size of the structure-wide DOF space
func (m *Model) NumDOFs() int {
	return DOFsPerNode * len(m.nodes)
}

// CheckNodeNumbering verifies that node indices are exactly 0..n-1, which the
// DOF numbering of Node.DOFs relies on
func (m *Model) CheckNodeNumbering() error {
	for i := 0; i < len(m.nodes); i++ {
		if _, ok := m.nodes[i]; !ok {
			return fmt.Errorf("missing node %d of %d: %w", i, len(m.nodes), ErrSparseNodes)
		}
	}
	return nil
}

// NodePair is a pair of distinct nodes at the same location
type NodePair struct {
	A, B *Node
}

// CoincidentNodes returns every pair of nodes closer than the coincidence tolerance
func (m *Model) CoincidentNodes() []NodePair {
	nodes := m.Nodes()
	var pairs []NodePair
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i].IsSameLocationTol(nodes[j], m.tol.Coincidence) {
				pairs = append(pairs, NodePair{A: nodes[i], B: nodes[j]})
			}
		}
	}
	return pairs
}

// ElementStiffness is the global stiffness of one element together with the
// structure DOFs its rows and columns scatter to
type ElementStiffness struct {
	Index int
	DOFs  [GlobalDOFs]int
	K     *mat.Dense
}

// ElementStiffnesses computes the global stiffness of every element, ordered by
// element index. Elements are independent, so they are evaluated in parallel.
func (m *Model) ElementStiffnesses(ctx context.Context) ([]ElementStiffness, error) {
	elements := m.Elements()
	out := make([]ElementStiffness, len(elements))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range elements {
		i, e := i, e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = ElementStiffness{
				Index: e.Index(),
				DOFs:  e.DOFs(),
				K:     e.GlobalStiffness(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
