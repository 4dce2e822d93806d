package rational

import (
	"math"
	"strconv"
)

// MaxStepSearch bounds the number of candidates Step examines and the number
// of ticks Ticks produces.
const MaxStepSearch = 1 << 20

// Step finds the smallest step between axis ticks whose projection onto the
// screen is at least minSpacing pixels, given scale pixels per unit. Steps
// are of the form unit·n or unit/n for positive integers n, where unit is π
// if piUnits is set and 1 otherwise.
//
// The search is linear. If the unit is already wide enough, Step divides it
// by increasing n until the projection falls short of minSpacing and then
// backs off by one; otherwise it multiplies by increasing n until the
// projection suffices.
func Step(scale, minSpacing float64, piUnits bool) (Rational, error) {
	if !finitePositive(scale) {
		return Rational{}, &ValueError{Value: strconv.FormatFloat(scale, 'g', -1, 64), Reason: "scale must be positive and finite"}
	}
	if !finitePositive(minSpacing) {
		return Rational{}, &ValueError{Value: strconv.FormatFloat(minSpacing, 'g', -1, 64), Reason: "spacing must be positive and finite"}
	}
	unit := Int(1)
	if piUnits {
		unit = normalize(1, 1, Pi, 1)
	}
	px := func(r Rational) float64 { return r.Approx() * scale }
	if px(unit) >= minSpacing {
		for n := int64(2); n <= MaxStepSearch; n++ {
			if px(scaled(unit, 1, n)) < minSpacing {
				return scaled(unit, 1, n-1), nil
			}
		}
	} else {
		for n := int64(2); n <= MaxStepSearch; n++ {
			if c := scaled(unit, n, 1); px(c) >= minSpacing {
				return c, nil
			}
		}
	}
	return Rational{}, &ValueError{Value: strconv.FormatFloat(scale, 'g', -1, 64), Reason: "no step within search bound"}
}

func finitePositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}

// scaled returns x·m/n. Step keeps m and n within MaxStepSearch and x is 1
// or π, so the products cannot overflow.
func scaled(x Rational, m, n int64) Rational {
	return normalize(x.num*m, x.d()*n, x.sym, x.factor)
}

// Ticks returns every integer multiple of step that lies in [lo, hi], in
// ascending order.
func Ticks(lo, hi float64, step Rational) ([]Rational, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return nil, &ValueError{
			Value:  "(" + strconv.FormatFloat(lo, 'g', -1, 64) + ", " + strconv.FormatFloat(hi, 'g', -1, 64) + ")",
			Reason: "range is not increasing",
		}
	}
	s := step.Approx()
	if !finitePositive(s) {
		return nil, &ValueError{Value: step.String(), Reason: "step must be positive"}
	}
	// Allow for rounding in the division so that endpoints that are exact
	// multiples of the step are kept.
	const slack = 1e-9
	first := math.Ceil(lo/s - slack)
	last := math.Floor(hi/s + slack)
	// Tick indices must be exact integers to convert.
	const maxIndex = 1 << 53
	if first < -maxIndex || last > maxIndex {
		return nil, &ValueError{
			Value:  "(" + strconv.FormatFloat(lo, 'g', -1, 64) + ", " + strconv.FormatFloat(hi, 'g', -1, 64) + ")",
			Reason: "range too far from zero for step " + step.String(),
		}
	}
	if last-first+1 > MaxStepSearch {
		return nil, &ValueError{Value: step.String(), Reason: "too many ticks"}
	}
	var r []Rational
	for k := first; k <= last; k++ {
		t, err := step.Mul(Int(int64(k)))
		if err != nil {
			return nil, err
		}
		r = append(r, t)
	}
	return r, nil
}
