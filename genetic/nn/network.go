// Package nn implements the fixed-topology phenotype network evolved by the
// genetic package: a two-layer perceptron mapping the 9 board cells to 9 move
// scores, plus the flat-vector codec that lets a whole network live in one
// row of the population matrix.
package nn

import (
	"math"
	"strconv"
)

// Fixed network topology. The flat 180-value layout below is the
// interoperability contract with every producer and consumer of population
// rows, so none of these may change independently.
const (
	NumInputs  = 9
	NumHidden  = 9
	NumOutputs = 9

	// ParameterCount is the length of the flat weight vector:
	// W1 (9x9) + b1 (9) + W2 (9x9) + b2 (9).
	ParameterCount = NumInputs*NumHidden + NumHidden + NumHidden*NumOutputs + NumOutputs
)

// Cut points of the flat layout.
const (
	w1End = NumInputs * NumHidden // 81
	b1End = w1End + NumHidden     // 90
	w2End = b1End + NumHidden*NumOutputs
)

// NoMove is returned by ChooseMove when the board has no empty cell. A full
// board is a normal terminal state, not an error.
const NoMove = -1

// Network is the decoded, structured form of one individual's weights.
// The fixed-size array fields make the 9x9/9 shape contract enforceable at
// construction; Decode copies into them, so a Network never aliases the
// source vector.
type Network struct {
	W1 [NumInputs][NumHidden]float64  // input -> hidden weights, row-major
	B1 [NumHidden]float64             // hidden biases
	W2 [NumHidden][NumOutputs]float64 // hidden -> output weights, row-major
	B2 [NumOutputs]float64            // output biases
}

// Decode slices a flat 180-value weight vector into the four tensors of a
// Network. Layout:
//
//	weights[0:81]    -> W1 (9x9, row-major: flat offset r*9+c is W1[r][c])
//	weights[81:90]   -> b1
//	weights[90:171]  -> W2 (9x9, row-major)
//	weights[171:180] -> b2
//
// The result owns its storage; mutating the source vector afterwards does not
// affect the returned Network, and vice versa.
func Decode(weights []float64) (*Network, error) {
	if len(weights) != ParameterCount {
		return nil, &ShapeError{Tensor: "weights", Want: strconv.Itoa(ParameterCount), Got: strconv.Itoa(len(weights))}
	}

	net := &Network{}
	for r := 0; r < NumInputs; r++ {
		for c := 0; c < NumHidden; c++ {
			net.W1[r][c] = weights[r*NumHidden+c]
		}
	}
	copy(net.B1[:], weights[w1End:b1End])
	for r := 0; r < NumHidden; r++ {
		for c := 0; c < NumOutputs; c++ {
			net.W2[r][c] = weights[b1End+r*NumOutputs+c]
		}
	}
	copy(net.B2[:], weights[w2End:])
	return net, nil
}

// NewNetwork builds a Network from dynamically sized containers, validating
// that the tensors are shaped (9x9, 9, 9x9, 9). It is the constructor for
// callers that assemble weights outside the flat-vector form; callers that
// already hold fixed-size arrays can fill a Network directly.
func NewNetwork(w1 [][]float64, b1 []float64, w2 [][]float64, b2 []float64) (*Network, error) {
	if err := checkMatrix("W1", w1, NumInputs, NumHidden); err != nil {
		return nil, err
	}
	if len(b1) != NumHidden {
		return nil, &ShapeError{Tensor: "b1", Want: strconv.Itoa(NumHidden), Got: strconv.Itoa(len(b1))}
	}
	if err := checkMatrix("W2", w2, NumHidden, NumOutputs); err != nil {
		return nil, err
	}
	if len(b2) != NumOutputs {
		return nil, &ShapeError{Tensor: "b2", Want: strconv.Itoa(NumOutputs), Got: strconv.Itoa(len(b2))}
	}

	net := &Network{}
	for r := range w1 {
		copy(net.W1[r][:], w1[r])
	}
	copy(net.B1[:], b1)
	for r := range w2 {
		copy(net.W2[r][:], w2[r])
	}
	copy(net.B2[:], b2)
	return net, nil
}

func checkMatrix(name string, m [][]float64, rows, cols int) error {
	if len(m) != rows {
		return &ShapeError{Tensor: name, Want: dims(rows, cols), Got: strconv.Itoa(len(m)) + " rows"}
	}
	for r := range m {
		if len(m[r]) != cols {
			return &ShapeError{Tensor: name, Want: dims(rows, cols), Got: dims(len(m), len(m[r]))}
		}
	}
	return nil
}

func dims(rows, cols int) string {
	return strconv.Itoa(rows) + "x" + strconv.Itoa(cols)
}

// Encode flattens the network back into the 180-value vector form, the exact
// inverse of Decode: W1 row-major, then b1, then W2 row-major, then b2.
// Genetic operators use this to write mutated weights back into a population
// row. The shapes are fixed by the Network type, so Encode cannot fail.
func (net *Network) Encode() []float64 {
	weights := make([]float64, ParameterCount)
	for r := 0; r < NumInputs; r++ {
		for c := 0; c < NumHidden; c++ {
			weights[r*NumHidden+c] = net.W1[r][c]
		}
	}
	copy(weights[w1End:b1End], net.B1[:])
	for r := 0; r < NumHidden; r++ {
		for c := 0; c < NumOutputs; c++ {
			weights[b1End+r*NumOutputs+c] = net.W2[r][c]
		}
	}
	copy(weights[w2End:], net.B2[:])
	return weights
}

// Propagate runs the forward pass for one board state and returns the raw
// linear score of each position:
//
//	z1[j] = sum_i board[i]*W1[i][j] + b1[j]
//	h[j]  = tanh(z1[j])
//	score[k] = sum_j h[j]*W2[j][k] + b2[k]
//
// The summation order is fixed (ascending i, then ascending j), so identical
// inputs always produce bit-for-bit identical scores. The only failure mode
// is a board of the wrong length; cell values are not inspected here, see
// ValidateBoard.
func (net *Network) Propagate(board []float64) ([]float64, error) {
	if len(board) != NumInputs {
		return nil, &ShapeError{Tensor: "board", Want: strconv.Itoa(NumInputs), Got: strconv.Itoa(len(board))}
	}

	var hidden [NumHidden]float64
	for j := 0; j < NumHidden; j++ {
		sum := net.B1[j]
		for i := 0; i < NumInputs; i++ {
			sum += board[i] * net.W1[i][j]
		}
		hidden[j] = math.Tanh(sum)
	}

	scores := make([]float64, NumOutputs)
	for k := 0; k < NumOutputs; k++ {
		sum := net.B2[k]
		for j := 0; j < NumHidden; j++ {
			sum += hidden[j] * net.W2[j][k]
		}
		scores[k] = sum
	}
	return scores, nil
}

// ChooseMove picks the empty cell with the highest score. Occupied cells are
// ineligible no matter how they score. Exact ties go to the lowest index --
// zero or symmetric weights produce exactly equal scores, so the tie-break
// must be deterministic for reproducible play. Returns NoMove when the board
// is full.
func ChooseMove(board, scores []float64) (int, error) {
	if len(board) != NumInputs {
		return NoMove, &ShapeError{Tensor: "board", Want: strconv.Itoa(NumInputs), Got: strconv.Itoa(len(board))}
	}
	if len(scores) != NumOutputs {
		return NoMove, &ShapeError{Tensor: "scores", Want: strconv.Itoa(NumOutputs), Got: strconv.Itoa(len(scores))}
	}

	best := NoMove
	bestScore := math.Inf(-1)
	for i, v := range board {
		if v != CellEmpty {
			continue
		}
		if best == NoMove || scores[i] > bestScore {
			best = i
			bestScore = scores[i]
		}
	}
	return best, nil
}

// SelectMove is the composed convenience operation: propagate the board
// through the network, then pick a legal move from the scores.
func (net *Network) SelectMove(board []float64) (int, error) {
	scores, err := net.Propagate(board)
	if err != nil {
		return NoMove, err
	}
	return ChooseMove(board, scores)
}
