package paper

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecArithmetic(t *testing.T) {
	a, b := Vec(1, 2), Vec(3, -4)
	diff(t, Vec(4, -2), a.Add(b))
	diff(t, Vec(-2, 6), a.Sub(b))
	diff(t, Vec(1, -2), a.Conj())
	diff(t, Vec(0, 2), a.MirrorH())
	// (1+2i)(3-4i) = 3 - 4i + 6i + 8 = 11 + 2i
	diff(t, Vec(11, 2), a.RotateScale(b))
	assert.Equal(t, -10.0, a.Cross(b))
}

func TestVecDiv(t *testing.T) {
	a, b := Vec(1, 2), Vec(3, -4)
	q, err := a.RotateScale(b).Div(b)
	require.NoError(t, err)
	assert.True(t, near(a, q), "got %v, want %v", q, a)

	_, err = a.Div(Vec(0, 0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestMirrorHInvolution(t *testing.T) {
	for _, v := range []Vec2{Vec(0, 0), Vec(1, 1), Vec(0.25, 0.75), Vec(-3, 2)} {
		diff(t, v, v.MirrorH().MirrorH())
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := Vec(rng.Float64()*4-2, rng.Float64()*4-2)
		got := v.MirrorH().MirrorH()
		assert.True(t, near(v, got), "mirror twice: got %v, want %v", got, v)
	}
}

func TestVecLerp(t *testing.T) {
	a, b := Vec(0, 0), Vec(2, 4)
	diff(t, a, a.Lerp(b, 0))
	diff(t, Vec(1, 2), a.Lerp(b, 0.5))
	diff(t, b, a.Lerp(b, 1))
}
