package gm

import (
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestRoundInt32(t *testing.T) {
	t.Run("halfway cases round away from zero", func(t *testing.T) {
		require.Equal(t, int32(3), RoundInt32(2.5))
		require.Equal(t, int32(-3), RoundInt32(-2.5))
		require.Equal(t, int32(1), RoundInt32(0.5))
		require.Equal(t, int32(2), RoundInt32(1.575))
	})

	t.Run("saturates", func(t *testing.T) {
		require.Equal(t, int32(math.MaxInt32), RoundInt32(1e20))
		require.Equal(t, int32(math.MinInt32), RoundInt32(math.Inf(-1)))
		require.Equal(t, int32(0), RoundInt32(math.NaN()))
	})
}

func TestTryRoundInt32(t *testing.T) {
	value, ok := TryRoundInt32(-7.4)
	require.True(t, ok)
	require.Equal(t, int32(-7), value)

	_, ok = TryRoundInt32(math.Inf(1))
	require.False(t, ok)

	_, ok = TryRoundInt32(3e9)
	require.False(t, ok)
}
