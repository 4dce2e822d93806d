package rational

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DecimalDigits is the number of fractional decimal digits kept when a float
// is converted to a Rational. Digits beyond it are rounded away.
const DecimalDigits = 9

// token matches a single number: optional sign, optional magnitude, optional
// symbol. At least one of magnitude and symbol must be present.
var token = regexp.MustCompile(`^(-)?([0-9]+(?:\.[0-9]+)?|\.[0-9]+)?(pi|e)?$`)

// Parse parses a number written either as a single token like "2", "-pi",
// "3e", or "1.5", or as a fraction of two tokens like "pi/2" or "3/4".
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return parseToken(s)
	}
	if strings.Contains(den, "/") {
		return Rational{}, &ValueError{Value: s, Reason: "more than one fraction bar"}
	}
	return parseFrac(s, num, den)
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Rational {
	return Must(Parse(s))
}

// ParseSymbolic parses the fraction num/den of tokens and scales it by
// sym^factor. Any symbols in the tokens combine with the explicit one, so
// ParseSymbolic("1", "2", Pi, 1) and ParseSymbolic("pi", "2", None, 0) are
// both π/2.
func ParseSymbolic(num, den string, sym Symbol, factor int64) (Rational, error) {
	if den == "" {
		den = "1"
	}
	r, err := parseFrac(num+"/"+den, num, den)
	if err != nil {
		return Rational{}, err
	}
	u, err := NewSymbolic(1, 1, sym, factor)
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(u)
}

func parseFrac(s, num, den string) (Rational, error) {
	n, err := parseToken(strings.TrimSpace(num))
	if err != nil {
		return Rational{}, err
	}
	d, err := parseToken(strings.TrimSpace(den))
	if err != nil {
		return Rational{}, err
	}
	if d.IsZero() {
		return Rational{}, &ValueError{Value: s, Reason: "zero denominator"}
	}
	return n.Quo(d)
}

func parseToken(s string) (Rational, error) {
	m := token.FindStringSubmatch(s)
	if m == nil {
		return Rational{}, &ValueError{Value: s, Reason: "not a number"}
	}
	neg, digits, sym := m[1] != "", m[2], m[3]
	if digits == "" && sym == "" {
		return Rational{}, &ValueError{Value: s, Reason: "no magnitude or symbol"}
	}
	r := Int(1)
	switch {
	case digits == "":
		// A bare symbol has magnitude 1.
	case strings.ContainsRune(digits, '.'):
		f, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return Rational{}, &ValueError{Value: s, Reason: err.Error()}
		}
		if r, err = FromFloat(f); err != nil {
			return Rational{}, err
		}
	default:
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return Rational{}, &ValueError{Value: s, Reason: "magnitude out of range"}
		}
		r = Int(n)
	}
	if neg {
		r = r.Neg()
	}
	switch sym {
	case "pi":
		r = normalize(r.num, r.d(), Pi, 1)
	case "e":
		r = normalize(r.num, r.d(), E, 1)
	}
	return r, nil
}

// FromFloat converts f to a Rational by rounding it to DecimalDigits
// fractional digits and using the power of ten given by the length of the
// remaining decimal mantissa as the denominator. Values with long or
// repeating expansions are therefore approximated.
func FromFloat(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, &ValueError{Value: strconv.FormatFloat(f, 'g', -1, 64), Reason: "not finite"}
	}
	scale := math.Pow10(DecimalDigits)
	r := math.Round(f*scale) / scale
	if r == math.Trunc(r) {
		if math.Abs(r) >= 1<<63 {
			return Rational{}, &ValueError{Value: strconv.FormatFloat(f, 'g', -1, 64), Reason: "out of range"}
		}
		return Int(int64(r)), nil
	}
	s := strconv.FormatFloat(r, 'f', -1, 64)
	_, frac, _ := strings.Cut(s, ".")
	k := len(frac)
	if k > DecimalDigits {
		k = DecimalDigits
	}
	den := math.Pow10(k)
	num := math.Round(r * den)
	if math.Abs(num) >= 1<<63 {
		return Rational{}, &ValueError{Value: strconv.FormatFloat(f, 'g', -1, 64), Reason: "out of range"}
	}
	return normalize(int64(num), int64(den), None, 0), nil
}
