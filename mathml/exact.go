package mathml

import (
	"github.com/zephyrtronium/plotcore/rational"
)

// Rational evaluates the expression exactly. The expression must not contain
// a variable or be a list, and it may only use operators with exact results:
// plus, minus, times, divide, power, abs, and root of perfect powers.
func (e *Expr) Rational() (rational.Rational, error) {
	v, err := visit[exact](e.root, exacter{})
	if err != nil {
		return rational.Rational{}, err
	}
	if v.tuple {
		return rational.Rational{}, &TypeError{Want: "number", Got: "list"}
	}
	return v.r, nil
}

// Tuple evaluates a list expression exactly. The list must have at least two
// items, each of which evaluates as by Rational.
func (e *Expr) Tuple() (rational.Tuple, error) {
	v, err := visit[exact](e.root, exacter{})
	if err != nil {
		return rational.Tuple{}, err
	}
	if !v.tuple {
		return rational.Tuple{}, &TypeError{Want: "list", Got: "number"}
	}
	return v.t, nil
}

// exact is an exact value, either a number or a tuple.
type exact struct {
	r     rational.Rational
	t     rational.Tuple
	tuple bool
}

// exacter evaluates nodes exactly.
type exacter struct{}

func (v exacter) scalar(n node) (rational.Rational, error) {
	r, err := visit[exact](n, v)
	if err != nil {
		return rational.Rational{}, err
	}
	if r.tuple {
		return rational.Rational{}, &TypeError{Want: "number", Got: "list"}
	}
	return r.r, nil
}

func (v exacter) visitApply(n *apply) (exact, error) {
	if err := n.check(); err != nil {
		return exact{}, err
	}
	o := &operators[n.op]
	if len(n.args) == 1 && o.exact1 == nil || len(n.args) == 2 && o.exact2 == nil {
		return exact{}, &ExactError{Op: n.op}
	}
	a, err := v.scalar(n.args[0])
	if err != nil {
		return exact{}, err
	}
	if len(n.args) == 1 {
		r, err := o.exact1(a)
		return exact{r: r}, err
	}
	b, err := v.scalar(n.args[1])
	if err != nil {
		return exact{}, err
	}
	r, err := o.exact2(a, b)
	return exact{r: r}, err
}

func (v exacter) visitVariable(n *variable) (exact, error) {
	return exact{}, &NoExactValueError{Name: n.name}
}

func (v exacter) visitConstant(n *constant) (exact, error) {
	r, err := rational.FromFloat(n.value)
	return exact{r: r}, err
}

func (v exacter) visitSymbol(n *symbol) (exact, error) {
	r, err := rational.NewSymbolic(1, 1, n.sym, 1)
	return exact{r: r}, err
}

func (v exacter) visitDegree(n *degree) (exact, error) {
	return visit[exact](n.x, v)
}

func (v exacter) visitLogbase(n *logbase) (exact, error) {
	return visit[exact](n.x, v)
}

func (v exacter) visitList(n *list) (exact, error) {
	xs := make([]rational.Rational, len(n.items))
	for i, item := range n.items {
		r, err := v.scalar(item)
		if err != nil {
			return exact{}, err
		}
		xs[i] = r
	}
	t, err := rational.NewTuple(xs...)
	if err != nil {
		return exact{}, err
	}
	return exact{t: t, tuple: true}, nil
}
