package model

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const (
	testE = 200000.0
	testA = 100.0
	testI = 1000.0
)

func newTestElement(t *testing.T, x1, y1, x2, y2 float64) *Element {
	t.Helper()
	m, err := NewMaterial(0, "Steel", testE, 7.85e-9, 0.3)
	require.NoError(t, err)
	s, err := NewSection(0, "S1", testA, testI)
	require.NoError(t, err)

	e, err := NewElement(0, m, s, NewNode(0, x1, y1), NewNode(1, x2, y2))
	require.NoError(t, err)
	return e
}

// scale returns a magnitude used to build absolute tolerances for k
func scale(k mat.Matrix) float64 {
	return mat.Norm(k, math.Inf(1))
}

func assertSymmetric(t *testing.T, k mat.Matrix) {
	t.Helper()
	assert.True(t, mat.EqualApprox(k, k.T(), 1e-9*scale(k)), "matrix is not symmetric:\n%v", mat.Formatted(k))
}

func assertNullVector(t *testing.T, k mat.Matrix, v []float64) {
	t.Helper()
	var f mat.VecDense
	f.MulVec(k, mat.NewVecDense(len(v), v))
	tol := 1e-9 * scale(k)
	for i := 0; i < f.Len(); i++ {
		assert.InDelta(t, 0, f.AtVec(i), tol, "row %d of K·%v", i, v)
	}
}

func sortedEigenvalues(t *testing.T, k mat.Matrix) []float64 {
	t.Helper()
	n, _ := k.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, (k.At(i, j)+k.At(j, i))/2)
		}
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(sym, false))
	vals := es.Values(nil)
	sort.Float64s(vals)
	return vals
}

func TestElementGeometry(t *testing.T) {
	e := newTestElement(t, 0, 0, 3, 4)

	assert.InDelta(t, 5.0, e.Length(), 1e-12)
	assert.InDelta(t, 0.6, e.Cos(), 1e-12)
	assert.InDelta(t, 0.8, e.Sin(), 1e-12)
	assert.InDelta(t, math.Atan2(4, 3), e.Angle(), 1e-12)
	assert.Equal(t, [6]int{0, 1, 2, 3, 4, 5}, e.DOFs())
}

func TestElementDOFsFollowNodes(t *testing.T) {
	m, _ := NewMaterial(0, "", testE, 0, 0.3)
	s, _ := NewSection(0, "", testA, testI)
	e, err := NewElement(7, m, s, NewNode(5, 0, 0), NewNode(2, 1, 0))
	require.NoError(t, err)

	assert.Equal(t, [6]int{15, 16, 17, 6, 7, 8}, e.DOFs())
}

func TestLocalStiffness(t *testing.T) {
	e := newTestElement(t, 0, 0, 3, 4)
	kl := e.LocalStiffness()

	r, c := kl.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)

	L := 5.0
	k := testE * testI / (L * L * L)
	assert.InDelta(t, 19200000.0, kl.At(0, 0), 1e-6)

	want := mat.NewDense(4, 4, []float64{
		12, -6 * L, -12, -6 * L,
		-6 * L, 4 * L * L, 6 * L, 2 * L * L,
		-12, 6 * L, 12, 6 * L,
		-6 * L, 2 * L * L, 6 * L, 4 * L * L,
	})
	want.Scale(k, want)
	assert.True(t, mat.EqualApprox(want, kl, 1e-9))

	assertSymmetric(t, kl)

	// rigid translation and rigid rotation carry no strain energy
	assertNullVector(t, kl, []float64{1, 0, 1, 0})
	assertNullVector(t, kl, []float64{0, 1, -L, 1})
}

func TestLocalStiffnessIsACopy(t *testing.T) {
	e := newTestElement(t, 0, 0, 2, 0)
	first := e.LocalStiffness()
	first.Set(0, 0, 0)

	again := e.LocalStiffness()
	assert.NotZero(t, again.At(0, 0))
	assert.True(t, mat.Equal(again, e.localStiffness()))
}

func TestHorizontalElementGlobalEqualsLocal(t *testing.T) {
	e := newTestElement(t, 1, 2, 6, 2)

	assert.True(t, mat.EqualApprox(e.ExpandedLocalStiffness(), e.GlobalStiffness(), 1e-9))
}

func TestExpandedLocalStiffness(t *testing.T) {
	e := newTestElement(t, 0, 0, 3, 4)
	ke := e.ExpandedLocalStiffness()
	kl := e.LocalStiffness()

	ea := testE * testA / 5
	assert.InDelta(t, ea, ke.At(0, 0), 1e-9)
	assert.InDelta(t, ea, ke.At(3, 3), 1e-9)
	assert.InDelta(t, -ea, ke.At(0, 3), 1e-9)
	assert.InDelta(t, -ea, ke.At(3, 0), 1e-9)

	idx := []int{1, 2, 4, 5}
	for i, ii := range idx {
		for j, jj := range idx {
			assert.Equal(t, kl.At(i, j), ke.At(ii, jj))
		}
		assert.Zero(t, ke.At(ii, 0))
		assert.Zero(t, ke.At(0, ii))
	}
}

func TestTransformationIsOrthogonal(t *testing.T) {
	e := newTestElement(t, 0, 0, -2, 7)
	tm := e.Transformation()

	var id mat.Dense
	id.Mul(tm.T(), tm)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, id.At(i, j), 1e-12)
		}
	}
}

func TestGlobalStiffness(t *testing.T) {
	angles := []float64{0, 30, 45, 90, 135, 180, 233, 300}
	const L = 5.0

	for _, deg := range angles {
		t.Run(fmt.Sprintf("%g deg", deg), func(t *testing.T) {
			th := deg * math.Pi / 180
			x1, y1 := 1.5, -2.0
			x2, y2 := x1+L*math.Cos(th), y1+L*math.Sin(th)
			e := newTestElement(t, x1, y1, x2, y2)
			kg := e.GlobalStiffness()

			r, c := kg.Dims()
			require.Equal(t, 6, r)
			require.Equal(t, 6, c)
			assertSymmetric(t, kg)

			// trace is preserved by the orthogonal transformation
			assert.InEpsilon(t, mat.Trace(e.ExpandedLocalStiffness()), mat.Trace(kg), 1e-12)

			// rigid translations in x and y
			assertNullVector(t, kg, []float64{1, 0, 0, 1, 0, 0})
			assertNullVector(t, kg, []float64{0, 1, 0, 0, 1, 0})

			// rigid rotation, clockwise positive: u = (y, -x), θ = 1
			assertNullVector(t, kg, []float64{y1, -x1, 1, y2, -x2, 1})
		})
	}
}

func TestGlobalStiffnessTraceExample(t *testing.T) {
	e := newTestElement(t, 0, 0, 3, 4)
	L := 5.0
	k := testE * testI / (L * L * L)
	want := 2*testE*testA/L + k*(12+4*L*L+12+4*L*L)

	assert.InEpsilon(t, want, mat.Trace(e.GlobalStiffness()), 1e-12)
}

func TestGlobalStiffnessRigidMotionInvariance(t *testing.T) {
	ref := newTestElement(t, 0, 0, 3, 4)
	want := sortedEigenvalues(t, ref.GlobalStiffness())
	tol := 1e-9 * want[len(want)-1]

	moves := []struct {
		name   string
		angle  float64
		cx, cy float64
		tx, ty float64
	}{
		{"translation", 0, 0, 0, 10, -7},
		{"rotation about origin", 1.1, 0, 0, 0, 0},
		{"rotation about point", -2.3, 4, 5, 0, 0},
		{"rotation and translation", 0.7, -1, 2, 3.5, 100},
	}
	for _, mv := range moves {
		t.Run(mv.name, func(t *testing.T) {
			move := func(x, y float64) (float64, float64) {
				c, s := math.Cos(mv.angle), math.Sin(mv.angle)
				x, y = x-mv.cx, y-mv.cy
				return mv.cx + c*x - s*y + mv.tx, mv.cy + s*x + c*y + mv.ty
			}
			x1, y1 := move(0, 0)
			x2, y2 := move(3, 4)
			e := newTestElement(t, x1, y1, x2, y2)

			got := sortedEigenvalues(t, e.GlobalStiffness())
			for i := range want {
				assert.InDelta(t, want[i], got[i], tol)
			}
		})
	}
}

func TestGlobalStiffnessIsRecomputed(t *testing.T) {
	e := newTestElement(t, 0, 0, 1, 1)
	a := e.GlobalStiffness()
	a.Set(0, 0, -1)

	assert.True(t, mat.Equal(e.GlobalStiffness(), e.GlobalStiffness()))
	assert.NotEqual(t, -1.0, e.GlobalStiffness().At(0, 0))
}

func TestNewElementErrors(t *testing.T) {
	m, _ := NewMaterial(0, "", testE, 0, 0.3)
	s, _ := NewSection(0, "", testA, testI)

	t.Run("duplicate node", func(t *testing.T) {
		for _, xy := range [][4]float64{{0, 0, 0, 0}, {0, 0, 10, 0}, {-3, 2, 8, 8}} {
			e, err := NewElement(4, m, s, NewNode(2, xy[0], xy[1]), NewNode(2, xy[2], xy[3]))
			assert.Nil(t, e)
			require.ErrorIs(t, err, ErrDuplicateNode)

			var eerr *ElementError
			require.ErrorAs(t, err, &eerr)
			assert.Equal(t, 4, eerr.Index)
			assert.Contains(t, err.Error(), "element 4")
		}
	})

	t.Run("degenerate", func(t *testing.T) {
		e, err := NewElement(9, m, s, NewNode(0, 1, 1), NewNode(1, 1+5e-11, 1))
		assert.Nil(t, e)
		require.ErrorIs(t, err, ErrDegenerateElement)
		assert.Contains(t, err.Error(), "element 9")
	})

	t.Run("non-finite coordinates", func(t *testing.T) {
		nan, inf := math.NaN(), math.Inf(1)
		for _, n2 := range []*Node{
			NewNode(1, nan, 0),
			NewNode(1, 0, nan),
			NewNode(1, inf, 0),
			NewNode(1, 0, -inf),
		} {
			e, err := NewElement(6, m, s, NewNode(0, 0, 0), n2)
			assert.Nil(t, e)
			require.ErrorIs(t, err, ErrNonFiniteGeometry)
			assert.Contains(t, err.Error(), "element 6")
		}

		// both ends at infinity give NaN differences
		_, err := NewElement(6, m, s, NewNode(0, inf, 0), NewNode(1, inf, 1))
		assert.ErrorIs(t, err, ErrNonFiniteGeometry)
	})

	t.Run("custom zero length tolerance", func(t *testing.T) {
		n1, n2 := NewNode(0, 0, 0), NewNode(1, 0.5, 0)
		_, err := NewElement(1, m, s, n1, n2)
		require.NoError(t, err)

		_, err = NewElement(1, m, s, n1, n2, WithTolerances(Tolerances{ZeroLength: 1}))
		assert.ErrorIs(t, err, ErrDegenerateElement)
	})

	t.Run("missing references", func(t *testing.T) {
		n1, n2 := NewNode(0, 0, 0), NewNode(1, 1, 0)
		_, err := NewElement(1, nil, s, n1, n2)
		assert.ErrorIs(t, err, ErrUnknownMaterial)
		_, err = NewElement(1, m, nil, n1, n2)
		assert.ErrorIs(t, err, ErrUnknownSection)
		_, err = NewElement(1, m, s, nil, n2)
		assert.ErrorIs(t, err, ErrUnknownNode)
	})
}
