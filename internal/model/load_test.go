package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cantilever = `{
  "name": "Cantilever",
  "tolerances": {"zero_length": 1e-8},
  "nodes": [
    {"index": 0, "x": 0, "y": 0},
    {"index": 1, "x": 3, "y": 4}
  ],
  "materials": [
    {"index": 0, "name": "Steel", "E": 200000, "density": 7.85e-9, "poisson": 0.3}
  ],
  "sections": [
    {"index": 0, "name": "S1", "A": 100, "I": 1000}
  ],
  "elements": [
    {"index": 0, "material": 0, "section": 0, "nodes": [0, 1]}
  ]
}`

func TestDecode(t *testing.T) {
	m, err := Decode(strings.NewReader(cantilever))
	require.NoError(t, err)

	assert.Equal(t, "Cantilever", m.Name)
	assert.Equal(t, 1e-8, m.Tolerances().ZeroLength)
	assert.Equal(t, DefaultCoincidence, m.Tolerances().Coincidence)

	e, ok := m.Element(0)
	require.True(t, ok)
	assert.InDelta(t, 5.0, e.Length(), 1e-12)
	assert.InDelta(t, 19200000.0, e.LocalStiffness().At(0, 0), 1e-6)
	assert.Equal(t, "Steel", e.Material().Name)
	assert.Equal(t, "S1", e.Section().Name)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want error
	}{
		{"duplicate node", strings.Replace(cantilever, `"nodes": [0, 1]`, `"nodes": [1, 1]`, 1), ErrDuplicateNode},
		{"unknown section", strings.Replace(cantilever, `"section": 0,`, `"section": 4,`, 1), ErrUnknownSection},
		{"invalid material", strings.Replace(cantilever, `"poisson": 0.3`, `"poisson": 0.5`, 1), ErrInvalidMaterial},
		{"degenerate", strings.Replace(cantilever, `"x": 3, "y": 4`, `"x": 0, "y": 0`, 1), ErrDegenerateElement},
		{"one node", strings.Replace(cantilever, `"nodes": [0, 1]`, `"nodes": [1]`, 1), ErrNodeCount},
		{"three nodes", strings.Replace(cantilever, `"nodes": [0, 1]`, `"nodes": [0, 1, 2]`, 1), ErrNodeCount},
		{"no nodes", strings.Replace(cantilever, `, "nodes": [0, 1]`, ``, 1), ErrNodeCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Decode(strings.NewReader(tt.json))
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("node count reports element", func(t *testing.T) {
		_, err := Decode(strings.NewReader(strings.Replace(cantilever, `"nodes": [0, 1]`, `"nodes": [1]`, 1)))
		var eerr *ElementError
		require.ErrorAs(t, err, &eerr)
		assert.Equal(t, 0, eerr.Index)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Decode(strings.NewReader(strings.Replace(cantilever, `"poisson": 0.3`, `"v": 0.3`, 1)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown field "v"`)
	})

	_, err := Decode(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(cantilever), 0o644))

	m, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, m.Elements(), 1)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
