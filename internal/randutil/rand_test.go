package randutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for range 100 {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(42)
	b := New(43)
	same := 0
	for range 16 {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	require.Less(t, same, 16)
}

func TestRestoreContinuesSequence(t *testing.T) {
	src := NewPCG(7)
	for range 10 {
		src.Uint64()
	}
	state, err := src.MarshalBinary()
	require.NoError(t, err)

	restored, err := Restore(state)
	require.NoError(t, err)
	for range 50 {
		require.Equal(t, src.Uint64(), restored.Uint64())
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	_, err := Restore([]byte("nope"))
	require.Error(t, err)
}
