package calculator

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

var (
	errMissingOperand = errors.New("missing")
	errNotANumber     = errors.New("not a number")
)

// ParseOperand parses a single query value. The returned error explains why
// the text is not a usable operand; it never yields NaN. Infinite values,
// including overflowing input such as 1e400, are kept as ±Inf.
func ParseOperand(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errMissingOperand
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("parse %q: %w", raw, err)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("parse %q: %w", raw, errNotANumber)
	}

	return v, nil
}

// ParseRequest extracts and validates the operands of op from query.
func ParseRequest(op Operation, query url.Values) (OperationRequest, error) {
	params := op.Params()
	operands := make([]float64, 0, len(params))
	var errs []error

	for _, name := range params {
		v, err := ParseOperand(query.Get(name))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		operands = append(operands, v)
	}

	if len(errs) > 0 {
		sentinel := ErrInvalidOperands
		if op.Unary() {
			sentinel = ErrInvalidOperand
		}
		return OperationRequest{}, &CalcError{
			Kind:    sentinel.Kind,
			Message: sentinel.Message,
			Cause:   errors.Join(errs...),
		}
	}

	return OperationRequest{Operation: op, Operands: operands}, nil
}

// Evaluate computes the request. A result is returned only when the
// computation is defined for the operands.
func (r OperationRequest) Evaluate() (OperationResult, error) {
	result, err := r.Operation.Compute(r.Operands...)
	if err != nil {
		return OperationResult{}, err
	}

	return OperationResult{
		Operation: r.Operation,
		Operands:  r.Operands,
		Result:    result,
	}, nil
}
