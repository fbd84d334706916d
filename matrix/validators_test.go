// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/kronmv/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidatePositiveShape(t *testing.T) {
	require.NoError(t, matrix.ValidatePositiveShape(1, 1))
	require.ErrorIs(t, matrix.ValidatePositiveShape(0, 1), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidatePositiveShape(1, -2), matrix.ErrInvalidDimensions)
}

func TestValidateMulCompatible(t *testing.T) {
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateMulCompatible(a, MustDense(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, MustDense(t, 2, 1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}

func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
