package angles

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestMaxMin(t *testing.T) {
	a, b, c := Deg(10.0), Deg(-400.0), Deg(50.0)

	max, err := Max(a, b, c)
	require.NoError(t, err)
	require.Equal(t, c, max)

	min, err := Min(a, b, c)
	require.NoError(t, err)
	require.Equal(t, b, min)

	t.Run("compares revolutions across units", func(t *testing.T) {
		max, err := Max(Deg(350.0), Rad(6.2))
		require.NoError(t, err)
		require.Equal(t, Radians, max.Unit())
	})

	t.Run("ties keep the first angle", func(t *testing.T) {
		max, err := Max(Deg(360.0), Grad(400.0))
		require.NoError(t, err)
		require.Equal(t, Degrees, max.Unit())
	})
}

func TestMagnitude(t *testing.T) {
	max, err := MaxMagnitude(Deg(10.0), Deg(-400.0), Deg(50.0))
	require.NoError(t, err)
	require.Equal(t, -400.0, max.Value())

	min, err := MinMagnitude(Deg(10.0), Deg(-5.0), Deg(5.0))
	require.NoError(t, err)
	require.Equal(t, -5.0, min.Value())
}

func TestMaxMin_Empty(t *testing.T) {
	_, err := Max[float64]()
	require.ErrorIs(t, err, ErrEmptySequence)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = MinMagnitude[int32]()
	require.ErrorIs(t, err, ErrEmptySequence)
}
