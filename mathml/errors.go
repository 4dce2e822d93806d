package mathml

import (
	"math/big"
	"strconv"
	"strings"
)

// SyntaxError is an error indicating input that is not well-formed XML or
// that does not have the shape of an expression. It implements InputError.
type SyntaxError struct {
	// Offset is the byte offset in the input at which the problem was found.
	Offset int64
	// Msg describes the problem.
	Msg string
	// Err is the underlying error, if any.
	Err error
}

func (err *SyntaxError) Error() string {
	if err.Err != nil {
		return errpos(err.Offset, err.Msg+": "+err.Err.Error())
	}
	return errpos(err.Offset, err.Msg)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

func (err *SyntaxError) Pos() int64 {
	return err.Offset
}

// ElementError is an error indicating an element whose tag is not part of
// the expression vocabulary. It implements InputError.
type ElementError struct {
	// Offset is the byte offset of the end of the element's start tag.
	Offset int64
	// Name is the tag name.
	Name string
}

func (err *ElementError) Error() string {
	return errpos(err.Offset, "unknown element <"+err.Name+">")
}

func (err *ElementError) Pos() int64 {
	return err.Offset
}

// OperatorError is an error indicating an apply element whose first child is
// not a known operator. It implements InputError.
type OperatorError struct {
	// Offset is the byte offset of the end of the operator's start tag.
	Offset int64
	// Name is the tag name in operator position.
	Name string
}

func (err *OperatorError) Error() string {
	return errpos(err.Offset, "unknown operator <"+err.Name+"/>")
}

func (err *OperatorError) Pos() int64 {
	return err.Offset
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int64, msg string) string {
	return strconv.FormatInt(pos, 10) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// malformed input during parsing implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset in the input near which the error occurred.
	Pos() int64
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*ElementError)(nil)
	_ InputError = (*OperatorError)(nil)
)

// ArityError is an error indicating an operator applied to the wrong number
// of arguments.
type ArityError struct {
	Op Op
	// Want is the list of argument counts the operator accepts.
	Want []int
	// Got is the number of arguments it was given.
	Got int
}

func (err *ArityError) Error() string {
	w := make([]string, len(err.Want))
	for i, n := range err.Want {
		w[i] = strconv.Itoa(n)
	}
	return "cannot apply " + err.Op.String() + " to " + strconv.Itoa(err.Got) + " arguments (want " + strings.Join(w, " or ") + ")"
}

// ArgumentError is an error indicating a misplaced degree or logbase
// argument.
type ArgumentError struct {
	Op Op
	// Arg is the 1-based index of the offending argument.
	Arg int
	// Reason describes the problem.
	Reason string
}

func (err *ArgumentError) Error() string {
	return err.Op.String() + " argument " + strconv.Itoa(err.Arg) + ": " + err.Reason
}

// TypeError is an error indicating a list where a number is required or the
// reverse.
type TypeError struct {
	// Want and Got are "number" or "list".
	Want, Got string
}

func (err *TypeError) Error() string {
	return "expected " + err.Want + ", got " + err.Got
}

// VariableError is an error indicating a variable other than x.
type VariableError struct {
	Name string
}

func (err *VariableError) Error() string {
	return "invalid variable " + strconv.Quote(err.Name) + " (only x is bound)"
}

// ExactError is an error indicating that an operator has no exact result for
// its arguments.
type ExactError struct {
	Op Op
	// Reason describes why, if there is a reason beyond the operator itself.
	Reason string
}

func (err *ExactError) Error() string {
	if err.Reason == "" {
		return "no exact value for " + err.Op.String()
	}
	return "no exact value for " + err.Op.String() + ": " + err.Reason
}

// NoExactValueError is an error indicating exact evaluation of an expression
// that contains a free variable.
type NoExactValueError struct {
	Name string
}

func (err *NoExactValueError) Error() string {
	return "variable " + strconv.Quote(err.Name) + " has no exact value"
}

// DomainError is an error returned when an operator is applied to arguments
// outside its domain during arbitrary-precision evaluation. DomainError
// unwraps to big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Arg is the 1-based index of the argument.
	Arg int
	// Op is the operator.
	Op Op
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain of " + err.Op.String()
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return big.ErrNaN{}
}
