package rational

import (
	"regexp"
	"strconv"
	"strings"
)

// tuple matches a parenthesized list of at least two comma-separated
// elements with no nesting.
var tuple = regexp.MustCompile(`^\([^(),]+(,[^(),]+)+\)$`)

// Tuple is a fixed-length, ordered sequence of at least two Rationals, used
// for points and ranges. Tuples are immutable.
type Tuple struct {
	xs []Rational
}

// NewTuple creates a tuple of the given values in order.
func NewTuple(xs ...Rational) (Tuple, error) {
	if len(xs) < 2 {
		return Tuple{}, &ValueError{Value: strconv.Itoa(len(xs)) + " elements", Reason: "tuple needs at least two elements"}
	}
	return Tuple{xs: append([]Rational(nil), xs...)}, nil
}

// ParseTuple parses a tuple like "(-10, 10)" or "(1, pi/2)". Whitespace is
// ignored, and each element is parsed as by Parse.
func ParseTuple(s string) (Tuple, error) {
	t := strings.Join(strings.Fields(s), "")
	if !tuple.MatchString(t) {
		return Tuple{}, &ValueError{Value: s, Reason: "not a tuple"}
	}
	parts := strings.Split(t[1:len(t)-1], ",")
	xs := make([]Rational, len(parts))
	for i, p := range parts {
		x, err := Parse(p)
		if err != nil {
			return Tuple{}, err
		}
		xs[i] = x
	}
	return Tuple{xs: xs}, nil
}

// Len returns the number of elements in t.
func (t Tuple) Len() int {
	return len(t.xs)
}

// At returns the i-th element of t.
func (t Tuple) At(i int) Rational {
	return t.xs[i]
}

// Values returns a copy of the elements of t.
func (t Tuple) Values() []Rational {
	return append([]Rational(nil), t.xs...)
}

// Approx returns the approximations of the elements of t in order.
func (t Tuple) Approx() []float64 {
	r := make([]float64, len(t.xs))
	for i, x := range t.xs {
		r[i] = x.Approx()
	}
	return r
}

// String formats t as a parenthesized list.
func (t Tuple) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range t.xs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(x.String())
	}
	b.WriteByte(')')
	return b.String()
}
