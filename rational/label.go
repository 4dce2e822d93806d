package rational

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Measurer measures text as the drawing layer would render it.
type Measurer interface {
	Measure(text string) (width, height float64)
}

// FractionGap is the vertical space between numerator and denominator that
// holds the fraction bar, in the same units a Measurer reports.
const FractionGap = 4.0

// Label is the drawable form of a Rational: an optional sign and a numerator
// over an optional denominator, with symbols written as glyphs.
type Label struct {
	Negative bool
	// Numerator is the magnitude of the numerator, e.g. "2π" or "3".
	Numerator string
	// Denominator is empty when the label is not a fraction.
	Denominator string
}

// Label returns the drawable form of x. A negative symbol factor moves the
// symbol into the denominator.
func (x Rational) Label() Label {
	l := Label{Negative: x.num < 0}
	n, d := abs64(x.num), x.d()
	switch {
	case x.factor > 0:
		l.Numerator = term(n, x.sym, x.factor)
	default:
		l.Numerator = strconv.FormatInt(n, 10)
	}
	switch {
	case x.factor < 0:
		l.Denominator = term(d, x.sym, -x.factor)
	case d != 1:
		l.Denominator = strconv.FormatInt(d, 10)
	}
	return l
}

// term writes k·sym^f, omitting a coefficient of 1 and an exponent of 1.
func term(k int64, sym Symbol, f int64) string {
	var b strings.Builder
	if k != 1 {
		b.WriteString(strconv.FormatInt(k, 10))
	}
	b.WriteString(sym.String())
	if f != 1 {
		b.WriteByte('^')
		b.WriteString(strconv.FormatInt(f, 10))
	}
	return b.String()
}

// IsFraction reports whether the label is drawn with a fraction bar.
func (l Label) IsFraction() bool {
	return l.Denominator != ""
}

// Width returns the horizontal space the label needs.
func (l Label) Width(m Measurer) float64 {
	w, _ := m.Measure(l.Numerator)
	if l.IsFraction() {
		if d, _ := m.Measure(l.Denominator); d > w {
			w = d
		}
	}
	if l.Negative {
		s, _ := m.Measure("-")
		w += s
	}
	return w
}

// Height returns the vertical space the label needs.
func (l Label) Height(m Measurer) float64 {
	_, h := m.Measure(l.Numerator)
	if l.IsFraction() {
		_, d := m.Measure(l.Denominator)
		h += d + FractionGap
	}
	return h
}

// String writes the label on one line. Compound denominators are
// parenthesized so that "3/(2π)" is not read as "(3/2)π".
func (l Label) String() string {
	var b strings.Builder
	if l.Negative {
		b.WriteByte('-')
	}
	b.WriteString(l.Numerator)
	if l.IsFraction() {
		b.WriteByte('/')
		if simple(l.Denominator) {
			b.WriteString(l.Denominator)
		} else {
			b.WriteByte('(')
			b.WriteString(l.Denominator)
			b.WriteByte(')')
		}
	}
	return b.String()
}

// simple reports whether a denominator reads unambiguously without brackets.
func simple(s string) bool {
	if utf8.RuneCountInString(s) == 1 {
		return true
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}
