package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// File is the JSON representation of a model
type File struct {
	Name       string        `json:"name"`
	Tolerances *Tolerances   `json:"tolerances,omitempty"`
	Nodes      []NodeDef     `json:"nodes"`
	Materials  []MaterialDef `json:"materials"`
	Sections   []SectionDef  `json:"sections"`
	Elements   []ElementDef  `json:"elements"`
}

// NodeDef describes a node of the model file
type NodeDef struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// MaterialDef describes a material of the model file
type MaterialDef struct {
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	E       float64 `json:"E"`
	Density float64 `json:"density"`
	Poisson float64 `json:"poisson"`
}

// SectionDef describes a section of the model file
type SectionDef struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	A     float64 `json:"A"`
	I     float64 `json:"I"`
}

// ElementDef describes an element of the model file by the indices it refers
// to. Nodes must list exactly the start and end node.
type ElementDef struct {
	Index    int   `json:"index"`
	Material int   `json:"material"`
	Section  int   `json:"section"`
	Nodes    []int `json:"nodes"`
}

// LoadFromFile loads a model definition from a JSON file and builds the model
func LoadFromFile(filepath string) (*Model, error) {
	def, err := ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return def.Build()
}

// ReadFile reads a JSON model definition without building it
func ReadFile(filepath string) (*File, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readDef(f)
}

// Decode reads a JSON model definition and builds the model
func Decode(r io.Reader) (*Model, error) {
	def, err := readDef(r)
	if err != nil {
		return nil, err
	}
	return def.Build()
}

func readDef(r io.Reader) (*File, error) {
	var def File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}
	return &def, nil
}

// Build creates the model described by the file. Entities are registered in
// dependency order so elements can resolve their references.
func (f *File) Build() (*Model, error) {
	var opts []Option
	if f.Tolerances != nil {
		opts = append(opts, WithModelTolerances(*f.Tolerances))
	}
	m := New(f.Name, opts...)

	for _, n := range f.Nodes {
		if _, err := m.AddNode(n.Index, n.X, n.Y); err != nil {
			return nil, err
		}
	}
	for _, mt := range f.Materials {
		if _, err := m.AddMaterial(mt.Index, mt.Name, mt.E, mt.Density, mt.Poisson); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Sections {
		if _, err := m.AddSection(s.Index, s.Name, s.A, s.I); err != nil {
			return nil, err
		}
	}
	for _, e := range f.Elements {
		if len(e.Nodes) != 2 {
			return nil, &ElementError{Index: e.Index, Err: fmt.Errorf("got %d: %w", len(e.Nodes), ErrNodeCount)}
		}
		if _, err := m.AddElement(e.Index, e.Material, e.Section, e.Nodes[0], e.Nodes[1]); err != nil {
			return nil, err
		}
	}

	return m, nil
}
