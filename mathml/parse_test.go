package mathml

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/zephyrtronium/plotcore/rational"
)

var allowNodes = cmp.AllowUnexported(apply{}, variable{}, constant{}, symbol{}, degree{}, logbase{}, list{})

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want node
		vars []string
	}{
		{"cn", "<cn>2</cn>", &constant{text: "2", value: 2}, nil},
		{"cn-space", "<cn> -1.5 </cn>", &constant{text: "-1.5", value: -1.5}, nil},
		{"ci", "<ci>x</ci>", &variable{name: "x"}, []string{"x"}},
		{"math", "<math><ci> x </ci></math>", &variable{name: "x"}, []string{"x"}},
		{"pi", "<pi/>", &symbol{sym: rational.Pi}, nil},
		{"exponentiale", "<exponentiale/>", &symbol{sym: rational.E}, nil},
		{"e", "<e></e>", &symbol{sym: rational.E}, nil},
		{
			"apply",
			"<apply><times/><cn>2</cn><pi/></apply>",
			&apply{op: Times, args: []node{&constant{text: "2", value: 2}, &symbol{sym: rational.Pi}}},
			nil,
		},
		{
			"nested",
			`<apply>
				<plus/>
				<apply><power/><ci>x</ci><cn>2</cn></apply>
				<!-- constant term -->
				<ci>y</ci>
			</apply>`,
			&apply{op: Plus, args: []node{
				&apply{op: Power, args: []node{&variable{name: "x"}, &constant{text: "2", value: 2}}},
				&variable{name: "y"},
			}},
			[]string{"x", "y"},
		},
		{
			"root",
			"<apply><root/><degree><cn>3</cn></degree><cn>64</cn></apply>",
			&apply{op: Root, args: []node{&degree{x: &constant{text: "3", value: 3}}, &constant{text: "64", value: 64}}},
			nil,
		},
		{
			"log",
			"<apply><log/><logbase><cn>3</cn></logbase><cn>27</cn></apply>",
			&apply{op: Log, args: []node{&logbase{x: &constant{text: "3", value: 3}}, &constant{text: "27", value: 27}}},
			nil,
		},
		{
			"list",
			"<list><cn>1</cn><pi/></list>",
			&list{items: []node{&constant{text: "1", value: 1}, &symbol{sym: rational.Pi}}},
			nil,
		},
		{"empty-list", "<list/>", &list{}, nil},
		{
			// Arity is not checked when parsing.
			"bad-arity",
			"<apply><plus/><cn>1</cn></apply>",
			&apply{op: Plus, args: []node{&constant{text: "1", value: 1}}},
			nil,
		},
		{"xml-decl", `<?xml version="1.0"?><cn>1</cn>`, &constant{text: "1", value: 1}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := ParseString(c.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, e.root, allowNodes); diff != "" {
				t.Errorf("tree (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(c.vars, e.Vars(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("vars (-want +got):\n%s", diff)
			}
			if e.HasVariable() != (len(c.vars) != 0) {
				t.Errorf("HasVariable is %t", e.HasVariable())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	type kind int
	const (
		syntax kind = iota
		element
		operator
	)
	cases := []struct {
		name string
		src  string
		kind kind
	}{
		{"empty", "", syntax},
		{"space", "  \n ", syntax},
		{"text", "hello", syntax},
		{"unknown", "<foo/>", element},
		{"operator-outside-apply", "<plus/>", element},
		{"unknown-operator", "<apply><foo/><cn>1</cn></apply>", operator},
		{"non-operator", "<apply><cn>1</cn></apply>", operator},
		{"no-operator", "<apply></apply>", syntax},
		{"operator-content", "<apply><plus><cn>1</cn></plus></apply>", syntax},
		{"bad-cn", "<cn>abc</cn>", syntax},
		{"nan-cn", "<cn>NaN</cn>", syntax},
		{"empty-ci", "<ci> </ci>", syntax},
		{"element-in-cn", "<cn><pi/></cn>", syntax},
		{"two-roots", "<cn>1</cn><cn>2</cn>", syntax},
		{"trailing-text", "<cn>1</cn>x", syntax},
		{"unclosed", "<apply><plus/><cn>1</cn>", syntax},
		{"unclosed-cn", "<cn>1", syntax},
		{"mismatched", "<apply><plus/></list>", syntax},
		{"pi-content", "<pi>3</pi>", syntax},
		{"degree-empty", "<degree></degree>", syntax},
		{"degree-two", "<degree><cn>1</cn><cn>2</cn></degree>", syntax},
		{"math-two", "<math><cn>1</cn><cn>2</cn></math>", syntax},
		{"nested-unknown", "<apply><plus/><cn>1</cn><mi>x</mi></apply>", element},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseString(c.src)
			if err == nil {
				t.Fatal("no error")
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Errorf("%v does not implement InputError", err)
			}
			var (
				se *SyntaxError
				ee *ElementError
				oe *OperatorError
			)
			switch c.kind {
			case syntax:
				if !errors.As(err, &se) {
					t.Errorf("want SyntaxError, got %v", err)
				}
			case element:
				if !errors.As(err, &ee) {
					t.Errorf("want ElementError, got %v", err)
				}
			case operator:
				if !errors.As(err, &oe) {
					t.Errorf("want OperatorError, got %v", err)
				}
			}
		})
	}
}

func TestParseErrorDetails(t *testing.T) {
	_, err := ParseString("<apply><plus/><cn>1</cn><mi>x</mi></apply>")
	var ee *ElementError
	if !errors.As(err, &ee) {
		t.Fatalf("want ElementError, got %v", err)
	}
	if ee.Name != "mi" || ee.Pos() <= 0 {
		t.Errorf("wrong details: %+v", ee)
	}
	_, err = ParseString("<cn>abc</cn>")
	var ve *rational.ValueError
	if !errors.As(err, &ve) {
		t.Errorf("bad cn does not unwrap to ValueError: %v", err)
	}
}

func TestOperatorTable(t *testing.T) {
	exact := map[Op]bool{Plus: true, Minus: true, Times: true, Divide: true, Power: true, Root: true, Abs: true}
	for op := opNone + 1; op < opCount; op++ {
		o := &operators[op]
		if o.name == "" {
			t.Errorf("Op(%d) has no name", op)
			continue
		}
		if l, ok := lookupOp(o.name); !ok || l != op {
			t.Errorf("%s: lookup gives %v, %t", o.name, l, ok)
		}
		if o.num1 == nil && o.num2 == nil {
			t.Errorf("%s has no numeric form", o.name)
		}
		if (o.num1 == nil) != (o.big1 == nil) || (o.num2 == nil) != (o.big2 == nil) {
			t.Errorf("%s: numeric and big-float arities differ", o.name)
		}
		if o.exact1 != nil && o.num1 == nil || o.exact2 != nil && o.num2 == nil {
			t.Errorf("%s: exact form with no numeric form", o.name)
		}
		if has := o.exact1 != nil || o.exact2 != nil; has != exact[op] {
			t.Errorf("%s: exact form is %t", o.name, has)
		}
		if o.idx != noIndex && o.num2 == nil {
			t.Errorf("%s: takes an index but has no binary form", o.name)
		}
	}
	if _, ok := lookupOp("apply"); ok {
		t.Error("apply is an operator")
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"<cn>2</cn>", "2"},
		{"<apply><times/><cn>2</cn><pi/></apply>", "times(2, π)"},
		{"<apply><plus/><apply><power/><ci>x</ci><cn>2</cn></apply><cn>1</cn></apply>", "plus(power[x, 2], 1)"},
		{"<apply><root/><degree><cn>3</cn></degree><cn>64</cn></apply>", "root(degree[3], 64)"},
		{"<list><cn>1</cn><apply><minus/><exponentiale/></apply></list>", "list(1, minus[e])"},
	}
	for _, c := range cases {
		e, err := ParseString(c.src)
		if err != nil {
			t.Errorf("%s: %v", c.src, err)
			continue
		}
		if got := e.String(); got != c.want {
			t.Errorf("%s: want %q, got %q", c.src, c.want, got)
		}
	}
}

func FuzzParse(f *testing.F) {
	f.Add("<cn>1</cn>")
	f.Add("<apply><times/><cn>2</cn><pi/></apply>")
	f.Add("<apply><root/><degree><cn>3</cn></degree><cn>64</cn></apply>")
	f.Add("<list><ci>x</ci><exponentiale/></list>")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := ParseString(s)
		if err != nil {
			return
		}
		_ = e.String()
		if fn, err := e.Exec(); err == nil {
			fn(0.5)
		}
		if fn, err := e.ExecList(); err == nil {
			fn(0.5)
		}
		e.Rational()
		e.Tuple()
	})
}
