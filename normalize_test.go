package angles

import (
	"github.com/stretchr/testify/require"
	"math/rand/v2"
	"testing"
)

func TestAngle_NormalizeZeroToOneTurn(t *testing.T) {
	require.Equal(t, 10.0, Deg(370.0).NormalizeZeroToOneTurn().Value())
	require.Equal(t, 350.0, Deg(-10.0).NormalizeZeroToOneTurn().Value())
	require.Equal(t, 0.0, Deg(720.0).NormalizeZeroToOneTurn().Value())
	require.Equal(t, int32(300), Grad[int32](-100).NormalizeZeroToOneTurn().Value())

	t.Run("keeps the unit", func(t *testing.T) {
		require.Equal(t, Gradians, Grad(900.0).Normalize(ZeroToOneTurn).Unit())
	})
}

func TestAngle_NormalizeZeroToOneTurn_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for range 1000 {
		unit := Unit(rng.IntN(3))

		a := New(rng.Float64()*2e4-1e4, unit).NormalizeZeroToOneTurn()
		require.Equal(t, a, a.NormalizeZeroToOneTurn())
		require.GreaterOrEqual(t, a.Value(), 0.0)
		require.Less(t, a.Value(), doublePrecision.oneTurn(unit))

		f := New(float32(rng.Float64()*2e4-1e4), unit).NormalizeZeroToOneTurn()
		require.Equal(t, f, f.NormalizeZeroToOneTurn())
		require.GreaterOrEqual(t, f.Value(), float32(0))
		require.Less(t, float64(f.Value()), floatPrecision.oneTurn(unit))
	}
}

func TestAngle_NormalizeMinusHalfToHalf(t *testing.T) {
	require.Equal(t, -170.0, Deg(190.0).NormalizeMinusHalfToHalf().Value())
	require.Equal(t, 90.0, Deg(90.0).NormalizeMinusHalfToHalf().Value())
	require.Equal(t, 180.0, Deg(180.0).NormalizeMinusHalfToHalf().Value())

	t.Run("values at or below half a turn are unchanged", func(t *testing.T) {
		require.Equal(t, -400.0, Deg(-400.0).NormalizeMinusHalfToHalf().Value())
	})

	t.Run("large values are not folded onto their terminal side", func(t *testing.T) {
		require.Equal(t, -170.0, Deg(370.0).Normalize(MinusHalfTurnToHalfTurn).Value())
	})
}

func TestAngle_Quadrant(t *testing.T) {
	for value, quadrant := range map[float64]int{
		0:   1,
		45:  1,
		90:  1,
		135: 2,
		180: 2,
		225: 3,
		270: 3,
		300: 4,
		-45: 4,
		405: 1,
	} {
		require.Equal(t, quadrant, Deg(value).Quadrant(), "%v degrees", value)
	}
}

func TestAngle_Reference(t *testing.T) {
	require.Equal(t, 30.0, Deg(30.0).Reference())
	require.Equal(t, 45.0, Deg(135.0).Reference())
	require.Equal(t, 45.0, Deg(225.0).Reference())
	require.Equal(t, 60.0, Deg(300.0).Reference())
	require.Equal(t, 45.0, Deg(-45.0).Reference())
}

func TestAngle_ComplementarySupplementary(t *testing.T) {
	require.Equal(t, 60.0, Deg(30.0).Complementary())
	require.Equal(t, 150.0, Deg(30.0).Supplementary())
	require.Equal(t, 50.0, Deg(400.0).Complementary())
	require.Equal(t, int32(-10), Deg[int32](100).Complementary())
}
