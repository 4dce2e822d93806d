package rational

import "strconv"

// ValueError is an error indicating a malformed number or tuple, a zero
// denominator, or a value outside the representable range.
type ValueError struct {
	// Value is the text or value that was rejected.
	Value string
	// Reason describes what is wrong with it.
	Reason string
}

func (err *ValueError) Error() string {
	if err.Value == "" {
		return "invalid value: " + err.Reason
	}
	return "invalid value " + strconv.Quote(err.Value) + ": " + err.Reason
}

// SymbolError is an error indicating an operation whose operands carry
// incompatible symbolic factors, e.g. π + e or π × e.
type SymbolError struct {
	// Op is the operation that was attempted.
	Op string
	// X and Y are the operands.
	X, Y Rational
}

func (err *SymbolError) Error() string {
	return "incompatible symbols: " + err.X.String() + " " + err.Op + " " + err.Y.String()
}

// OperationError is an error indicating an operation that is not supported on
// its operands, e.g. a fractional or symbolic exponent.
type OperationError struct {
	// Op is the operation that was attempted.
	Op string
	// Arg is the unsupported operand.
	Arg Rational
}

func (err *OperationError) Error() string {
	return "unsupported operation: " + err.Op + " with " + err.Arg.String()
}
