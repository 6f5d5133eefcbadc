package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBoard(t *testing.T) {
	assert.NoError(t, ValidateBoard([]float64{1, 0, -1, 0, 1, 0, 0, -1, 0}))
	assert.NoError(t, ValidateBoard(make([]float64, BoardSize)))
}

func TestValidateBoardFlagsOutOfDomainCell(t *testing.T) {
	board := []float64{1, 0, -1, 0.5, 1, 0, 0, -1, 0}
	err := ValidateBoard(board)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 3, domainErr.Cell)
	assert.Equal(t, 0.5, domainErr.Value)
}

func TestValidateBoardRejectsWrongLength(t *testing.T) {
	err := ValidateBoard(make([]float64, 10))
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "board", shapeErr.Tensor)
}

func TestLegalMoves(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5, 6, 8}, LegalMoves([]float64{1, 0, -1, 0, 1, 0, 0, -1, 0}))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, LegalMoves(make([]float64, BoardSize)))
	assert.Empty(t, LegalMoves([]float64{1, -1, 1, -1, 1, -1, 1, -1, 1}))
}
