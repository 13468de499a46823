package calculator

import (
	"fmt"
	"math"
	"strconv"
)

// operationSpec describes how one operation is routed, validated, logged and
// computed. compute receives exactly arity operands.
type operationSpec struct {
	path    string
	params  []string
	symbol  string
	example string
	compute func(operands []float64) (float64, error)
}

var specs = map[Operation]operationSpec{
	Addition: {
		path:    "/add",
		params:  []string{"num1", "num2"},
		symbol:  "+",
		example: "num1=5&num2=3",
		compute: func(x []float64) (float64, error) { return x[0] + x[1], nil },
	},
	Subtraction: {
		path:    "/subtract",
		params:  []string{"num1", "num2"},
		symbol:  "-",
		example: "num1=10&num2=4",
		compute: func(x []float64) (float64, error) { return x[0] - x[1], nil },
	},
	Multiplication: {
		path:    "/multiply",
		params:  []string{"num1", "num2"},
		symbol:  "*",
		example: "num1=6&num2=7",
		compute: func(x []float64) (float64, error) { return x[0] * x[1], nil },
	},
	Division: {
		path:    "/divide",
		params:  []string{"num1", "num2"},
		symbol:  "/",
		example: "num1=20&num2=5",
		compute: func(x []float64) (float64, error) {
			if x[1] == 0 {
				return 0, ErrDivisionByZero
			}
			return x[0] / x[1], nil
		},
	},
	Exponentiation: {
		path:    "/exponent",
		params:  []string{"num1", "num2"},
		symbol:  "^",
		example: "num1=2&num2=3",
		compute: func(x []float64) (float64, error) { return math.Pow(x[0], x[1]), nil },
	},
	SquareRoot: {
		path:    "/sqrt",
		params:  []string{"num"},
		symbol:  "sqrt",
		example: "num=9",
		compute: func(x []float64) (float64, error) {
			if x[0] < 0 {
				return 0, ErrNegativeRadicand
			}
			return math.Sqrt(x[0]), nil
		},
	},
	Modulo: {
		path:    "/modulo",
		params:  []string{"num1", "num2"},
		symbol:  "%",
		example: "num1=10&num2=3",
		// math.Mod: the remainder takes the sign of the dividend.
		compute: func(x []float64) (float64, error) {
			if x[1] == 0 {
				return 0, ErrModuloByZero
			}
			return math.Mod(x[0], x[1]), nil
		},
	},
}

func (o Operation) spec() operationSpec {
	s, ok := specs[o]
	if !ok {
		panic(fmt.Sprintf("calculator: unknown operation %q", string(o)))
	}
	return s
}

// Valid reports whether o is a supported operation.
func (o Operation) Valid() bool {
	_, ok := specs[o]
	return ok
}

// Path is the route the operation is served on.
func (o Operation) Path() string { return o.spec().path }

// Params lists the query parameters holding the operands, in operand order.
func (o Operation) Params() []string { return o.spec().params }

// Unary reports whether the operation takes a single operand.
func (o Operation) Unary() bool { return len(o.spec().params) == 1 }

// ExampleURL is a working request for the index page.
func (o Operation) ExampleURL() string { return o.Path() + "?" + o.spec().example }

// Compute applies the operation to already validated operands.
func (o Operation) Compute(operands ...float64) (float64, error) {
	s := o.spec()
	if len(operands) != len(s.params) {
		return 0, fmt.Errorf("%s takes %d operand(s), got %d", o, len(s.params), len(operands))
	}
	return s.compute(operands)
}

// Expression renders the computation for log messages, e.g. "5 + 3 = 8" or
// "sqrt(9) = 3".
func (o Operation) Expression(operands []float64, result float64) string {
	s := o.spec()
	if len(operands) == 1 {
		return fmt.Sprintf("%s(%s) = %s", s.symbol, formatFloat(operands[0]), formatFloat(result))
	}
	if len(operands) == 2 {
		return fmt.Sprintf("%s %s %s = %s", formatFloat(operands[0]), s.symbol, formatFloat(operands[1]), formatFloat(result))
	}
	return fmt.Sprintf("%s%v = %s", s.symbol, operands, formatFloat(result))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
