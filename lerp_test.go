package angles

import (
	"github.com/stretchr/testify/require"
	"math/rand/v2"
	"testing"
)

func TestAngle_DifferenceTo(t *testing.T) {
	require.Equal(t, 20.0, Deg(10.0).DifferenceTo(Deg(350.0)).Value())
	require.Equal(t, -20.0, Deg(350.0).DifferenceTo(Deg(10.0)).Value())
	require.Equal(t, 180.0, Deg(180.0).DifferenceTo(Deg(0.0)).Value())
}

func TestLerp(t *testing.T) {
	a, b := Deg(350.0), Deg(10.0)

	require.Equal(t, a, Lerp(0, a, b))
	require.InDelta(t, 360, Lerp(0.5, a, b).Value(), 1e-9)
	require.True(t, Lerp(1, a, b).IsCoterminalTo(b))

	t.Run("mixed units", func(t *testing.T) {
		l := Lerp(0.5, Deg(0.0), Grad(100.0))
		require.Equal(t, Degrees, l.Unit())
		require.InDelta(t, 45, l.Value(), 1e-9)
	})
}

func TestRandom(t *testing.T) {
	for range 1000 {
		a := Random[int32](Degrees)
		require.GreaterOrEqual(t, a.Value(), int32(0))
		require.Less(t, a.Value(), int32(360))

		r := Random[float64](Radians)
		require.Less(t, r.Value(), doublePrecision.oneTurn(Radians))
	}

	t.Run("seeded", func(t *testing.T) {
		require.Equal(t, 90.0, RandomWith[float64](func() float64 { return 0.25 }, Degrees).Value())

		rng := rand.New(rand.NewPCG(1, 2))
		a := RandomWith[float32](rng.Float64, Gradians)
		require.Equal(t, Gradians, a.Unit())
	})

	t.Run("float", func(t *testing.T) {
		for range 1000 {
			a := Random[float32](Gradians)
			require.GreaterOrEqual(t, a.Value(), float32(0))
			require.Less(t, a.Value(), float32(400))
		}
	})

	t.Run("rounding never reaches one turn", func(t *testing.T) {
		a := RandomWith[int32](func() float64 { return 0.9999 }, Degrees)
		require.Equal(t, int32(0), a.Value())
	})
}
