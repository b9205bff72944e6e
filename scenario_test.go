package angles

import (
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestScenarios(t *testing.T) {
	t.Run("90 degrees to radians", func(t *testing.T) {
		a := Deg(90.0).ToRadians()
		require.InDelta(t, 1.5707963267948966, a.Value(), 1e-12)
		require.Equal(t, Radians, a.Unit())
	})

	t.Run("370 degrees normalized", func(t *testing.T) {
		require.Equal(t, 10.0, Deg(370.0).NormalizeZeroToOneTurn().Value())
	})

	t.Run("45 and 135 degrees", func(t *testing.T) {
		require.False(t, AreComplementary(Deg(45.0), Deg(135.0)))
		require.True(t, AreSupplementary(Deg(45.0), Deg(135.0)))
	})

	t.Run("half pi radians equals 90 degrees", func(t *testing.T) {
		require.True(t, Rad(math.Pi/2).Equal(Deg(90.0)))
	})

	t.Run("delta between 10 and 350 degrees", func(t *testing.T) {
		require.Equal(t, 20.0, Delta(Deg(10.0), Deg(350.0), Degrees))
	})

	t.Run("max of a sequence", func(t *testing.T) {
		max, err := Max(Deg(10.0), Deg(-400.0), Deg(50.0))
		require.NoError(t, err)
		require.Equal(t, 50.0, max.Value())
	})
}

func BenchmarkAngle_Equal(b *testing.B) {
	lhs, rhs := Deg(90.0), Rad(math.Pi/2)

	for b.Loop() {
		lhs.Equal(rhs)
	}
}

func BenchmarkAngle_NormalizeZeroToOneTurn(b *testing.B) {
	a := Deg[float32](-1234.5)

	for b.Loop() {
		a.NormalizeZeroToOneTurn()
	}
}

func BenchmarkDelta(b *testing.B) {
	lhs, rhs := Deg(10.0), Grad[int32](389)

	for b.Loop() {
		Delta(lhs, rhs, Radians)
	}
}

func BenchmarkAngle_Sin(b *testing.B) {
	a := Deg[float32](123.4)

	for b.Loop() {
		a.Sin()
	}
}
