package mathml

import (
	"errors"
	"math/big"

	"github.com/zephyrtronium/plotcore/rational"
)

// Context is a context for evaluating expressions at arbitrary precision. It
// caches constants parsed at its precision, so it is not safe to use a
// Context concurrently.
//
// sin, cos, and tan are computed at float64 precision and then widened, so
// results involving them carry at most 53 significant bits whatever the
// context's precision. All other operators are computed at full precision.
type Context struct {
	nums map[string]*big.Float
	syms map[rational.Symbol]*big.Float
	prec uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{
		nums: make(map[string]*big.Float),
		syms: make(map[rational.Symbol]*big.Float),
		prec: 64,
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			// do nothing
		case precopt:
			if opt != 0 {
				ctx.prec = uint(opt)
			}
		default:
			panic("mathml: unknown option type")
		}
	}
	return &ctx
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates the expression at x. A nil x is 0. The expression must not
// be a list. See Context for the precision of trigonometric operators.
func (ctx *Context) Eval(e *Expr, x *big.Float) (*big.Float, error) {
	v, err := visit[bigValue](e.root, bigEval{ctx: ctx, x: ctx.arg(x)})
	if err != nil {
		return nil, err
	}
	if v.list != nil {
		return nil, &TypeError{Want: "number", Got: "list"}
	}
	return v.f, nil
}

// EvalList evaluates each item of a list expression at x. A nil x is 0.
func (ctx *Context) EvalList(e *Expr, x *big.Float) ([]*big.Float, error) {
	v, err := visit[bigValue](e.root, bigEval{ctx: ctx, x: ctx.arg(x)})
	if err != nil {
		return nil, err
	}
	if v.list == nil {
		return nil, &TypeError{Want: "list", Got: "number"}
	}
	return v.list, nil
}

func (ctx *Context) arg(x *big.Float) *big.Float {
	r := new(big.Float).SetPrec(ctx.prec)
	if x != nil {
		r.Set(x)
	}
	return r
}

// num gets a possibly cached number from its text.
func (ctx *Context) num(s string, v float64) *big.Float {
	if r := ctx.nums[s]; r != nil {
		return r
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 0)
	if err != nil {
		// strconv accepted the text, but big.Float has different syntax for
		// some forms. Fall back to the float64 value.
		r = new(big.Float).SetPrec(ctx.prec).SetFloat64(v)
	}
	ctx.nums[s] = r
	return r
}

// sym gets a cached symbol value.
func (ctx *Context) sym(s rational.Symbol) *big.Float {
	if r := ctx.syms[s]; r != nil {
		return r
	}
	r := rational.SymbolFloat(s, ctx.prec)
	ctx.syms[s] = r
	return r
}

// bigValue is a number or a list of numbers.
type bigValue struct {
	f    *big.Float
	list []*big.Float
}

// bigEval evaluates nodes at x. Results are always fresh values that callers
// may modify.
type bigEval struct {
	ctx *Context
	x   *big.Float
}

func (v bigEval) scalar(n node) (*big.Float, error) {
	r, err := visit[bigValue](n, v)
	if err != nil {
		return nil, err
	}
	if r.list != nil {
		return nil, &TypeError{Want: "number", Got: "list"}
	}
	return r.f, nil
}

func (v bigEval) visitApply(n *apply) (r bigValue, err error) {
	if err := n.check(); err != nil {
		return bigValue{}, err
	}
	o := &operators[n.op]
	a, err := v.scalar(n.args[0])
	if err != nil {
		return bigValue{}, err
	}
	var b *big.Float
	if len(n.args) == 2 {
		if b, err = v.scalar(n.args[1]); err != nil {
			return bigValue{}, err
		}
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		e := p.(error) // panic if not error
		if errors.As(e, &big.ErrNaN{}) {
			r, err = bigValue{}, &DomainError{X: a, Arg: 1, Op: n.op}
			return
		}
		panic(e)
	}()
	z := new(big.Float).SetPrec(v.ctx.prec)
	if b == nil {
		err = o.big1(v.ctx, z, a)
	} else {
		err = o.big2(v.ctx, z, a, b)
	}
	if err != nil {
		return bigValue{}, err
	}
	return bigValue{f: z}, nil
}

func (v bigEval) visitVariable(n *variable) (bigValue, error) {
	if n.name != "x" {
		return bigValue{}, &VariableError{Name: n.name}
	}
	return bigValue{f: new(big.Float).Copy(v.x)}, nil
}

func (v bigEval) visitConstant(n *constant) (bigValue, error) {
	return bigValue{f: new(big.Float).Copy(v.ctx.num(n.text, n.value))}, nil
}

func (v bigEval) visitSymbol(n *symbol) (bigValue, error) {
	return bigValue{f: new(big.Float).Copy(v.ctx.sym(n.sym))}, nil
}

func (v bigEval) visitDegree(n *degree) (bigValue, error) {
	return visit[bigValue](n.x, v)
}

func (v bigEval) visitLogbase(n *logbase) (bigValue, error) {
	return visit[bigValue](n.x, v)
}

func (v bigEval) visitList(n *list) (bigValue, error) {
	r := make([]*big.Float, len(n.items))
	for i, item := range n.items {
		f, err := v.scalar(item)
		if err != nil {
			return bigValue{}, err
		}
		r[i] = f
	}
	return bigValue{list: r}, nil
}
