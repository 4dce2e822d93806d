package mathml

// Func is an expression compiled to a function of x.
type Func func(x float64) float64

// ListFunc is a list expression compiled to a function of x.
type ListFunc func(x float64) []float64

// Exec compiles the expression to a function of x. The expression must not
// be a list.
func (e *Expr) Exec() (Func, error) {
	c, err := visit[compiled](e.root, compiler{})
	if err != nil {
		return nil, err
	}
	if c.list != nil {
		return nil, &TypeError{Want: "number", Got: "list"}
	}
	return c.f, nil
}

// ExecList compiles a list expression to a function of x returning the value
// of each item in order.
func (e *Expr) ExecList() (ListFunc, error) {
	c, err := visit[compiled](e.root, compiler{})
	if err != nil {
		return nil, err
	}
	if c.list == nil {
		return nil, &TypeError{Want: "list", Got: "number"}
	}
	fs := c.list
	return func(x float64) []float64 {
		r := make([]float64, len(fs))
		for i, f := range fs {
			r[i] = f(x)
		}
		return r
	}, nil
}

// compiled is a compiled node: a scalar function, or the functions of the
// items of a list.
type compiled struct {
	f    Func
	list []Func
}

// compiler compiles nodes into closures.
type compiler struct{}

// scalar compiles n, rejecting lists.
func (c compiler) scalar(n node) (Func, error) {
	r, err := visit[compiled](n, c)
	if err != nil {
		return nil, err
	}
	if r.list != nil {
		return nil, &TypeError{Want: "number", Got: "list"}
	}
	return r.f, nil
}

func (c compiler) visitApply(n *apply) (compiled, error) {
	if err := n.check(); err != nil {
		return compiled{}, err
	}
	o := &operators[n.op]
	a, err := c.scalar(n.args[0])
	if err != nil {
		return compiled{}, err
	}
	if len(n.args) == 1 {
		f := o.num1
		return compiled{f: func(x float64) float64 { return f(a(x)) }}, nil
	}
	b, err := c.scalar(n.args[1])
	if err != nil {
		return compiled{}, err
	}
	f := o.num2
	return compiled{f: func(x float64) float64 { return f(a(x), b(x)) }}, nil
}

func (c compiler) visitVariable(n *variable) (compiled, error) {
	if n.name != "x" {
		return compiled{}, &VariableError{Name: n.name}
	}
	return compiled{f: func(x float64) float64 { return x }}, nil
}

func (c compiler) visitConstant(n *constant) (compiled, error) {
	v := n.value
	return compiled{f: func(float64) float64 { return v }}, nil
}

func (c compiler) visitSymbol(n *symbol) (compiled, error) {
	v := n.sym.Value()
	return compiled{f: func(float64) float64 { return v }}, nil
}

func (c compiler) visitDegree(n *degree) (compiled, error) {
	return visit[compiled](n.x, c)
}

func (c compiler) visitLogbase(n *logbase) (compiled, error) {
	return visit[compiled](n.x, c)
}

func (c compiler) visitList(n *list) (compiled, error) {
	fs := make([]Func, len(n.items))
	for i, item := range n.items {
		f, err := c.scalar(item)
		if err != nil {
			return compiled{}, err
		}
		fs[i] = f
	}
	return compiled{list: fs}, nil
}
