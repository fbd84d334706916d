// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/kronmv/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewStridedVec_Bounds(t *testing.T) {
	t.Parallel()
	buf := make([]float64, 10)

	cases := []struct {
		name           string
		off, n, stride int
		wantErr        bool
	}{
		{"full contiguous", 0, 10, 1, false},
		{"fits", 1, 3, 4, false}, // 1,5,9
		{"single element at end", 9, 1, 7, false},
		{"one past end", 1, 4, 3, true}, // 1,4,7,10
		{"zero length", 0, 0, 1, true},
		{"zero stride", 0, 2, 0, true},
		{"negative offset", -1, 2, 1, true},
		{"offset past end", 10, 1, 1, true},
		{"runs past end", 2, 5, 2, true}, // 2,4,6,8,10
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewStridedVec(buf, tc.off, tc.n, tc.stride)
			if tc.wantErr {
				require.ErrorIs(t, err, matrix.ErrBadShape)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStridedVec_AtSetWriteThrough(t *testing.T) {
	t.Parallel()
	buf := []float64{0, 1, 2, 3, 4, 5}
	v, err := matrix.NewStridedVec(buf, 1, 3, 2) // 1,3,5
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.Equal(t, 2, v.Stride())
	require.Equal(t, 1, v.Offset())

	got, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, 5.0, got)

	require.NoError(t, v.Set(1, 30))
	require.Equal(t, 30.0, buf[3])

	_, err = v.At(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(-1, 0), matrix.ErrOutOfRange)
}

func TestStridedVec_GatherScatter(t *testing.T) {
	t.Parallel()
	buf := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	v, err := matrix.NewStridedVec(buf, 0, 4, 2) // 0,2,4,6
	require.NoError(t, err)

	tmp := make([]float64, 4)
	require.NoError(t, v.Gather(tmp))
	require.Equal(t, []float64{0, 2, 4, 6}, tmp)

	require.NoError(t, v.Scatter([]float64{-1, -2, -3, -4}))
	require.Equal(t, []float64{-1, 1, -2, 3, -3, 5, -4, 7}, buf)

	require.ErrorIs(t, v.Gather(make([]float64, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, v.Scatter(make([]float64, 5)), matrix.ErrDimensionMismatch)
}

func TestStridedVec_Rebase(t *testing.T) {
	t.Parallel()
	buf := make([]float64, 8)
	v, err := matrix.NewStridedVec(buf, 0, 2, 4) // 0,4
	require.NoError(t, err)

	require.NoError(t, v.Rebase(3)) // 3,7
	require.Equal(t, 3, v.Offset())
	require.NoError(t, v.Set(1, 9))
	require.Equal(t, 9.0, buf[7])

	require.ErrorIs(t, v.Rebase(4), matrix.ErrBadShape) // 4,8 → out
	require.Equal(t, 3, v.Offset())                     // unchanged on error
}
