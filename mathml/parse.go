package mathml

import (
	"encoding/xml"
	"errors"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/zephyrtronium/plotcore/rational"
)

// Grammar, by element:
//
//	math    = expr
//	apply   = operator expr...
//	ci      = text
//	cn      = text
//	pi      = (empty)
//	exponentiale, e = (empty)
//	degree  = expr
//	logbase = expr
//	list    = expr...
//
// where operator is one of the empty elements plus, minus, times, divide,
// power, root, sin, cos, tan, abs, ln, or log.

// Expr is a parsed expression. An Expr is immutable and safe for concurrent
// use; compiling or evaluating it does not modify it.
type Expr struct {
	// root is the root node of the expression.
	root node
	// names is the list of variable names used in the expression.
	names []string
}

// parser holds the decoder and the variable names seen so far.
type parser struct {
	d     *xml.Decoder
	names map[string]bool
}

// Parse parses an expression from XML with a single root element.
func Parse(src io.Reader) (*Expr, error) {
	p := parser{d: xml.NewDecoder(src), names: make(map[string]bool)}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	start, ok := tok.(xml.StartElement)
	if !ok {
		return nil, &SyntaxError{Offset: p.d.InputOffset(), Msg: "no expression"}
	}
	n, err := p.element(start)
	if err != nil {
		return nil, err
	}
	tok, err = p.next()
	if err != nil {
		return nil, err
	}
	if tok != nil {
		return nil, &SyntaxError{Offset: p.d.InputOffset(), Msg: "content after root element"}
	}
	ex := Expr{
		root:  n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	slices.Sort(ex.names)
	return &ex, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// next returns the next start or end element, skipping whitespace, comments,
// and processing instructions. At the end of input, the result is nil with no
// error.
func (p *parser) next() (xml.Token, error) {
	for {
		tok, err := p.d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, &SyntaxError{Offset: p.d.InputOffset(), Msg: "malformed XML", Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement, xml.EndElement:
			return t, nil
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) != 0 {
				return nil, &SyntaxError{Offset: p.d.InputOffset(), Msg: "unexpected text " + strconv.Quote(strings.TrimSpace(string(t)))}
			}
		}
	}
}

// children parses elements until the end of the element started by start.
func (p *parser) children(start xml.StartElement) ([]node, error) {
	var r []node
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n, err := p.element(t)
			if err != nil {
				return nil, err
			}
			r = append(r, n)
		case xml.EndElement:
			return r, nil
		case nil:
			return nil, &SyntaxError{Offset: p.d.InputOffset(), Msg: "unclosed <" + start.Name.Local + ">"}
		}
	}
}

// only parses the single child of the element started by start.
func (p *parser) only(start xml.StartElement) (node, error) {
	c, err := p.children(start)
	if err != nil {
		return nil, err
	}
	if len(c) != 1 {
		return nil, &SyntaxError{Offset: p.d.InputOffset(), Msg: "<" + start.Name.Local + "> needs exactly one child, has " + strconv.Itoa(len(c))}
	}
	return c[0], nil
}

// text reads the character content of the element started by start.
func (p *parser) text(start xml.StartElement) (string, error) {
	var b strings.Builder
	for {
		tok, err := p.d.Token()
		if err != nil {
			return "", &SyntaxError{Offset: p.d.InputOffset(), Msg: "malformed XML", Err: err}
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			return "", &SyntaxError{Offset: p.d.InputOffset(), Msg: "<" + t.Name.Local + "> inside <" + start.Name.Local + ">"}
		case xml.EndElement:
			return strings.TrimSpace(b.String()), nil
		}
	}
}

// empty consumes the end of an element that must have no content.
func (p *parser) empty(start xml.StartElement) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if _, ok := tok.(xml.EndElement); !ok {
		return &SyntaxError{Offset: p.d.InputOffset(), Msg: "<" + start.Name.Local + "> must be empty"}
	}
	return nil
}

// element parses the element started by start through its end.
func (p *parser) element(start xml.StartElement) (node, error) {
	switch start.Name.Local {
	case "math":
		return p.only(start)
	case "apply":
		return p.apply(start)
	case "ci":
		name, err := p.text(start)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, &SyntaxError{Offset: p.d.InputOffset(), Msg: "empty <ci>"}
		}
		p.names[name] = true
		return &variable{name: name}, nil
	case "cn":
		text, err := p.text(start)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(v) {
			return nil, &SyntaxError{
				Offset: p.d.InputOffset(),
				Msg:    "bad <cn>",
				Err:    &rational.ValueError{Value: text, Reason: "not a number"},
			}
		}
		return &constant{text: text, value: v}, nil
	case "pi":
		if err := p.empty(start); err != nil {
			return nil, err
		}
		return &symbol{sym: rational.Pi}, nil
	case "exponentiale", "e":
		if err := p.empty(start); err != nil {
			return nil, err
		}
		return &symbol{sym: rational.E}, nil
	case "degree":
		x, err := p.only(start)
		if err != nil {
			return nil, err
		}
		return &degree{x: x}, nil
	case "logbase":
		x, err := p.only(start)
		if err != nil {
			return nil, err
		}
		return &logbase{x: x}, nil
	case "list":
		items, err := p.children(start)
		if err != nil {
			return nil, err
		}
		return &list{items: items}, nil
	default:
		return nil, &ElementError{Offset: p.d.InputOffset(), Name: start.Name.Local}
	}
}

// apply parses an operator and its arguments. Arity is checked when the
// expression is evaluated, not here.
func (p *parser) apply(start xml.StartElement) (node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	o, ok := tok.(xml.StartElement)
	if !ok {
		return nil, &SyntaxError{Offset: p.d.InputOffset(), Msg: "<apply> without operator"}
	}
	op, ok := lookupOp(o.Name.Local)
	if !ok {
		return nil, &OperatorError{Offset: p.d.InputOffset(), Name: o.Name.Local}
	}
	if err := p.empty(o); err != nil {
		return nil, err
	}
	args, err := p.children(start)
	if err != nil {
		return nil, err
	}
	return &apply{op: op, args: args}, nil
}

// Vars returns the variable names used in the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// HasVariable reports whether the expression uses any variable.
func (e *Expr) HasVariable() bool {
	return len(e.names) != 0
}

// IsList reports whether the expression is a list.
func (e *Expr) IsList() bool {
	_, ok := e.root.(*list)
	return ok
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each argument list.
func (e *Expr) String() string {
	s, _ := visit[string](e.root, printer{})
	return s
}
