package runner

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBarrier_Passes(t *testing.T) {
	if testing.Short() {
		t.Skip("differential timing check skipped in short mode")
	}

	check, err := CheckBarrier(context.Background())
	require.NoError(t, err)
	require.NotNil(t, check)

	assert.True(t, check.OK)
	assert.GreaterOrEqual(t, check.Ratio, minRatio)
}

func TestCheckBarrier_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CheckBarrier(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewBarrierCheck_ZeroSmallClamped(t *testing.T) {
	check := newBarrierCheck(0, 64*time.Microsecond)

	assert.Equal(t, time.Nanosecond, check.Small)
	assert.False(t, math.IsInf(check.Ratio, 1))
	assert.False(t, math.IsNaN(check.Ratio))
	assert.True(t, check.OK)
}

func TestNewBarrierCheck_FlatTimingFails(t *testing.T) {
	check := newBarrierCheck(100*time.Nanosecond, 110*time.Nanosecond)

	assert.False(t, check.OK)
	assert.InDelta(t, 1.1, check.Ratio, 0.001)
}

func TestElisionError_Message(t *testing.T) {
	err := &ElisionError{Check: BarrierCheck{Small: 100, Large: 110, Ratio: 1.1}}
	assert.Contains(t, err.Error(), "escape barrier ineffective")
}
