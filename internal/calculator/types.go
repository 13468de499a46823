package calculator

import (
	"encoding/json"
	"math"
)

// Operation names a supported arithmetic operation. The value is the name
// echoed in the "operation" field of every success response.
type Operation string

const (
	Addition       Operation = "addition"
	Subtraction    Operation = "subtraction"
	Multiplication Operation = "multiplication"
	Division       Operation = "division"
	Exponentiation Operation = "exponentiation"
	SquareRoot     Operation = "square root"
	Modulo         Operation = "modulo"
)

// Operations lists every supported operation in the order they are routed
// and shown on the index page.
var Operations = []Operation{
	Addition,
	Subtraction,
	Multiplication,
	Division,
	Exponentiation,
	SquareRoot,
	Modulo,
}

// OperationRequest is a validated request: no operand is NaN and the operand
// count matches the operation's arity.
type OperationRequest struct {
	Operation Operation
	Operands  []float64
}

// OperationResult is only built after validation and computation succeed.
type OperationResult struct {
	Operation Operation
	Operands  []float64
	Result    float64
}

// Number serializes non-finite values as JSON null instead of failing the
// whole encode, and negative zero as 0.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if !isFinite(f) {
		return []byte("null"), nil
	}
	if f == 0 {
		f = 0
	}
	return json.Marshal(f)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

type binaryResponse struct {
	Operation Operation `json:"operation"`
	Num1      Number    `json:"num1"`
	Num2      Number    `json:"num2"`
	Result    Number    `json:"result"`
}

type unaryResponse struct {
	Operation Operation `json:"operation"`
	Num       Number    `json:"num"`
	Result    Number    `json:"result"`
}

// MarshalJSON renders {operation, num1, num2, result} for binary operations
// and {operation, num, result} for square root.
func (r OperationResult) MarshalJSON() ([]byte, error) {
	if r.Operation.Unary() {
		return json.Marshal(unaryResponse{
			Operation: r.Operation,
			Num:       Number(r.operand(0)),
			Result:    Number(r.Result),
		})
	}

	return json.Marshal(binaryResponse{
		Operation: r.Operation,
		Num1:      Number(r.operand(0)),
		Num2:      Number(r.operand(1)),
		Result:    Number(r.Result),
	})
}

func (r OperationResult) operand(i int) float64 {
	if i < len(r.Operands) {
		return r.Operands[i]
	}
	return 0
}
