package nn

import "strconv"

// Numeric cell values as seen by the network. The board is a length-9 slice
// in row-major scan order (positions 0..8).
const (
	CellO     = -1.0
	CellEmpty = 0.0
	CellX     = 1.0
)

// BoardSize is the number of cells on the board, which is also the number of
// network inputs and outputs.
const BoardSize = 9

// ValidateBoard checks that a board has exactly 9 cells and that every cell
// holds one of the three legal values. Callers that construct boards from
// untrusted input should run this before Propagate; Propagate itself only
// enforces the length, since the arithmetic is well-defined for any values.
func ValidateBoard(board []float64) error {
	if len(board) != BoardSize {
		return &ShapeError{Tensor: "board", Want: "9", Got: strconv.Itoa(len(board))}
	}
	for i, v := range board {
		if v != CellO && v != CellEmpty && v != CellX {
			return &DomainError{Cell: i, Value: v}
		}
	}
	return nil
}

// LegalMoves returns the indices of empty cells in scan order.
func LegalMoves(board []float64) []int {
	moves := make([]int, 0, len(board))
	for i, v := range board {
		if v == CellEmpty {
			moves = append(moves, i)
		}
	}
	return moves
}
