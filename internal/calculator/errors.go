package calculator

import (
	"errors"
	"net/http"
)

// ErrorKind classifies calculator failures.
type ErrorKind int

const (
	InvalidInput ErrorKind = iota + 1
	DivisionByZero
	ModuloByZero
	NegativeRadicand
	InternalFault
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case DivisionByZero:
		return "division_by_zero"
	case ModuloByZero:
		return "modulo_by_zero"
	case NegativeRadicand:
		return "negative_radicand"
	case InternalFault:
		return "internal_fault"
	default:
		return "unknown"
	}
}

// Status is the HTTP status a failure of this kind is surfaced with.
func (k ErrorKind) Status() int {
	if k == InternalFault {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// CalcError is a request-local failure. Message is safe to return to the
// caller; Cause is only ever logged.
type CalcError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *CalcError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *CalcError) Unwrap() error { return e.Cause }

// Is matches on kind and message so wrapped copies compare equal to the
// sentinels below.
func (e *CalcError) Is(target error) bool {
	t, ok := target.(*CalcError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

var (
	ErrInvalidOperands  = &CalcError{Kind: InvalidInput, Message: "Parameters must be valid numbers"}
	ErrInvalidOperand   = &CalcError{Kind: InvalidInput, Message: "Parameter must be a valid number"}
	ErrDivisionByZero   = &CalcError{Kind: DivisionByZero, Message: "Cannot divide by zero"}
	ErrModuloByZero     = &CalcError{Kind: ModuloByZero, Message: "Cannot perform modulo by zero"}
	ErrNegativeRadicand = &CalcError{Kind: NegativeRadicand, Message: "Cannot calculate square root of a negative number"}
	ErrInternalFault    = &CalcError{Kind: InternalFault, Message: "Internal server error"}
)

// AsCalcError unwraps err to a *CalcError. Anything unrecognised is reported
// as an internal fault carrying err as its cause.
func AsCalcError(err error) *CalcError {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce
	}
	return &CalcError{Kind: InternalFault, Message: ErrInternalFault.Message, Cause: err}
}
