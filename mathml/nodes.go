package mathml

import (
	"strings"

	"github.com/zephyrtronium/plotcore/rational"
)

// node is a node in the abstract syntax tree of an expression. The set of
// node kinds is closed: every kind is handled through visit, and every
// evaluator implements visitor for all of them.
type node interface {
	isNode()
}

type (
	// apply is an operator applied to arguments.
	apply struct {
		op   Op
		args []node
	}
	// variable is the free variable.
	variable struct {
		name string
	}
	// constant is a numeric literal. text is kept for evaluation at higher
	// precision than float64.
	constant struct {
		text  string
		value float64
	}
	// symbol is π or e.
	symbol struct {
		sym rational.Symbol
	}
	// degree wraps the index of a root.
	degree struct {
		x node
	}
	// logbase wraps the base of a logarithm.
	logbase struct {
		x node
	}
	// list is an ordered sequence of expressions.
	list struct {
		items []node
	}
)

func (*apply) isNode()    {}
func (*variable) isNode() {}
func (*constant) isNode() {}
func (*symbol) isNode()   {}
func (*degree) isNode()   {}
func (*logbase) isNode()  {}
func (*list) isNode()     {}

// visitor is an evaluation of expression trees producing T. Adding a node
// kind means adding a method here, which every evaluator must then implement.
type visitor[T any] interface {
	visitApply(n *apply) (T, error)
	visitVariable(n *variable) (T, error)
	visitConstant(n *constant) (T, error)
	visitSymbol(n *symbol) (T, error)
	visitDegree(n *degree) (T, error)
	visitLogbase(n *logbase) (T, error)
	visitList(n *list) (T, error)
}

// visit dispatches n to the method of v for its kind.
func visit[T any](n node, v visitor[T]) (T, error) {
	switch n := n.(type) {
	case *apply:
		return v.visitApply(n)
	case *variable:
		return v.visitVariable(n)
	case *constant:
		return v.visitConstant(n)
	case *symbol:
		return v.visitSymbol(n)
	case *degree:
		return v.visitDegree(n)
	case *logbase:
		return v.visitLogbase(n)
	case *list:
		return v.visitList(n)
	default:
		panic("mathml: invalid AST node")
	}
}

// printer formats nodes with alternating round and square brackets grouping
// each argument list.
type printer struct {
	square bool
}

func (p printer) inner() printer {
	return printer{square: !p.square}
}

func (p printer) group(b *strings.Builder, name string, args []node) {
	var l, r byte = '(', ')'
	if p.square {
		l, r = '[', ']'
	}
	b.WriteString(name)
	b.WriteByte(l)
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		s, _ := visit[string](a, p.inner())
		b.WriteString(s)
	}
	b.WriteByte(r)
}

func (p printer) visitApply(n *apply) (string, error) {
	var b strings.Builder
	p.group(&b, n.op.String(), n.args)
	return b.String(), nil
}

func (p printer) visitVariable(n *variable) (string, error) {
	return n.name, nil
}

func (p printer) visitConstant(n *constant) (string, error) {
	return n.text, nil
}

func (p printer) visitSymbol(n *symbol) (string, error) {
	return n.sym.String(), nil
}

func (p printer) visitDegree(n *degree) (string, error) {
	var b strings.Builder
	p.group(&b, "degree", []node{n.x})
	return b.String(), nil
}

func (p printer) visitLogbase(n *logbase) (string, error) {
	var b strings.Builder
	p.group(&b, "logbase", []node{n.x})
	return b.String(), nil
}

func (p printer) visitList(n *list) (string, error) {
	var b strings.Builder
	p.group(&b, "list", n.items)
	return b.String(), nil
}
