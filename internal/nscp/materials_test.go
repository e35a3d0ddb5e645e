package nscp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcreteModulus(t *testing.T) {
	assert.InDelta(t, 4700*math.Sqrt(28), ConcreteModulus(28), 1e-9)
	assert.InDelta(t, 24870.06, ConcreteModulus(28), 0.01)
}

func TestSteel(t *testing.T) {
	s := Steel(2)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.Index)
	assert.Equal(t, Es, s.E)
	assert.InDelta(t, 200000/2.6, s.ShearModulus(), 1e-9)
}

func TestConcrete(t *testing.T) {
	c, err := Concrete(0, 28)
	require.NoError(t, err)
	assert.Equal(t, ConcreteModulus(28), c.E)
	assert.Equal(t, NuConcrete, c.Poisson)
	assert.Contains(t, c.Name, "28")

	_, err = Concrete(0, 10)
	assert.Error(t, err)
}
