package angles

import (
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	a := New(90.0, Degrees)
	require.Equal(t, 90.0, a.Value())
	require.Equal(t, Degrees, a.Unit())
	require.Equal(t, KindDouble, a.Kind())

	require.Panics(t, func() { New(1.0, Unit(7)) })
}

func TestAngle_ZeroValue(t *testing.T) {
	var a Double
	require.Equal(t, Radians, a.Unit())
	require.True(t, a.IsZero())
}

func TestAngle_Kind(t *testing.T) {
	require.Equal(t, KindInt, Deg[int32](1).Kind())
	require.Equal(t, KindFloat, Deg[float32](1).Kind())
	require.Equal(t, KindDouble, Deg(1.0).Kind())
	require.Equal(t, "AngleFloat", KindFloat.String())
}

func TestAngle_SetValue(t *testing.T) {
	a := Deg(10.0)
	b := a.SetValue(20)

	require.Equal(t, 10.0, a.Value())
	require.Equal(t, 20.0, b.Value())
	require.Equal(t, Degrees, b.Unit())

	c := a.SetAngle(math.Pi, Radians)
	require.True(t, c.Identical(Rad(math.Pi)))
}

func TestAngle_Identical(t *testing.T) {
	require.True(t, Deg(90.0).Identical(Deg(90.0)))
	require.False(t, Deg(360.0).Identical(Grad(400.0)))
	require.True(t, Deg(360.0).Equal(Grad(400.0)))
}

func TestNamedConstants(t *testing.T) {
	t.Run("double", func(t *testing.T) {
		require.Equal(t, Radians, RightAngle[float64]().Unit())
		require.Equal(t, math.Pi, StraightAngle[float64]().Value())
		require.True(t, CompleteAngle[float64]().Equal(Deg(360.0)))
		require.True(t, OneRadian[float64]().Equal(Deg(180 / math.Pi)))
	})

	t.Run("int constants are whole degrees", func(t *testing.T) {
		require.True(t, RightAngle[int32]().Identical(Deg[int32](90)))
		require.True(t, StraightAngle[int32]().Identical(Deg[int32](180)))
		require.True(t, CompleteAngle[int32]().Identical(Deg[int32](360)))
		require.True(t, Zero[int32]().Identical(Deg[int32](0)))
	})

	t.Run("float", func(t *testing.T) {
		require.True(t, RightAngle[float32]().Equal(Deg[float32](90)))
		require.True(t, OneGradian[float32]().Equal(Deg[float32](0.9)))
		require.True(t, OneDegree[float32]().Identical(Deg[float32](1)))
	})
}

func TestAngle_Revolutions(t *testing.T) {
	require.Equal(t, 0.25, Deg(90.0).Revolutions())
	require.Equal(t, 0.25, Rad(math.Pi/2).Revolutions())
	require.Equal(t, -1.5, Grad(-600.0).Revolutions())

	// Int angles keep the fraction of a turn
	require.Equal(t, 0.25, Deg[int32](90).Revolutions())
}
