package moore_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	moore "github.com/wg469282/Moore-s-Automatons"
)

func newRegister(t *testing.T, bits int) *moore.Automaton {
	t.Helper()
	a, err := moore.NewSimple(bits, bits, func(next, in, _ []uint64, _, s int) {
		copy(next, in[:moore.Words(s)])
	})
	require.NoError(t, err)
	return a
}

func TestConnect_validation(t *testing.T) {
	src, err := moore.NewSimple(0, 4, inc)
	require.NoError(t, err)
	dst := newRegister(t, 4)

	td := []struct {
		name  string
		in    int
		out   int
		count int
	}{
		{"zero count", 0, 0, 0},
		{"negative count", 0, 0, -1},
		{"input index out of range", 4, 0, 1},
		{"negative input index", -1, 0, 1},
		{"output index out of range", 0, 4, 1},
		{"input range too long", 2, 0, 3},
		{"output range too long", 0, 2, 3},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			err := dst.Connect(d.in, src, d.out, d.count)
			assert.True(t, errors.Is(err, moore.ErrInvalidArgument), "got %v", err)
		})
	}

	assert.True(t, errors.Is(dst.Connect(0, nil, 0, 1), moore.ErrInvalidArgument))
	deleted, err := moore.NewSimple(0, 4, inc)
	require.NoError(t, err)
	deleted.Delete()
	assert.True(t, errors.Is(dst.Connect(0, deleted, 0, 1), moore.ErrInvalidArgument))
}

func TestConnect_overridesManualInput(t *testing.T) {
	src, err := moore.NewSimple(0, 1, hold)
	require.NoError(t, err)
	require.NoError(t, src.SetState([]uint64{0}))
	dst := newRegister(t, 1)

	// Manual input says 1, the connected source says 0: the source wins.
	require.NoError(t, dst.SetInput([]uint64{1}))
	require.NoError(t, dst.Connect(0, src, 0, 1))
	require.NoError(t, moore.Step(dst))
	out, err := dst.Output()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), out[0])

	// After disconnecting, the stored manual value takes effect again.
	require.NoError(t, dst.Disconnect(0, 1))
	require.NoError(t, moore.Step(dst))
	out, err = dst.Output()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), out[0])
}

func TestConnect_rangeMapping(t *testing.T) {
	src, err := moore.NewSimple(0, 8, hold)
	require.NoError(t, err)
	require.NoError(t, src.SetState([]uint64{0xB4}))
	dst := newRegister(t, 4)

	// dst[0..3] <- src[4..7], i.e. the high nibble of 0xB4.
	require.NoError(t, dst.Connect(0, src, 4, 4))
	require.NoError(t, moore.Step(dst))
	out, err := dst.Output()
	require.NoError(t, err)
	assert.Equal(t, uint64(0xB), out[0])
}

func TestDisconnect_validation(t *testing.T) {
	dst := newRegister(t, 4)
	assert.True(t, errors.Is(dst.Disconnect(0, 0), moore.ErrInvalidArgument))
	assert.True(t, errors.Is(dst.Disconnect(4, 1), moore.ErrInvalidArgument))
	assert.True(t, errors.Is(dst.Disconnect(2, 3), moore.ErrInvalidArgument))

	var nilA *moore.Automaton
	assert.True(t, errors.Is(nilA.Disconnect(0, 1), moore.ErrInvalidArgument))
}

func TestDisconnect_unconnectedSlotIsNoop(t *testing.T) {
	dst := newRegister(t, 4)
	require.NoError(t, dst.SetInput([]uint64{0x5}))
	require.NoError(t, dst.Disconnect(0, 4))
	require.NoError(t, moore.Step(dst))
	out, err := dst.Output()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x5), out[0], "disconnecting nothing changes nothing")
}

func TestConnect_replacedSourceFallsOut(t *testing.T) {
	first, err := moore.NewSimple(0, 1, hold)
	require.NoError(t, err)
	second, err := moore.NewSimple(0, 1, hold)
	require.NoError(t, err)
	require.NoError(t, second.SetState([]uint64{1}))
	dst := newRegister(t, 1)

	require.NoError(t, dst.Connect(0, first, 0, 1))
	require.NoError(t, dst.Connect(0, second, 0, 1))

	// Deleting the replaced source must not disturb dst's connection to
	// the new one: its dependents entry for dst was already dropped.
	first.Delete()
	require.NoError(t, moore.Step(dst))
	out, err := dst.Output()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), out[0])
}
