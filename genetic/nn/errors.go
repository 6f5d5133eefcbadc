package nn

import "fmt"

// ShapeError reports a tensor or vector whose dimensions do not match the
// fixed 9-9-9 topology. It is always surfaced to the caller; the codec never
// pads or truncates a mismatched input.
type ShapeError struct {
	Tensor string // which input was malformed, e.g. "weights", "W1", "board"
	Want   string
	Got    string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape mismatch for %s: want %s, got %s", e.Tensor, e.Want, e.Got)
}

// DomainError reports a board cell whose value is outside {-1, 0, 1}.
// Propagation itself is agnostic to cell values, so this is only returned by
// the opt-in ValidateBoard check, never by Propagate.
type DomainError struct {
	Cell  int
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("board cell %d holds %v, want one of -1, 0, 1", e.Cell, e.Value)
}
