package mathml_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/zephyrtronium/plotcore/mathml"
	"github.com/zephyrtronium/plotcore/rational"
)

func TestRational(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"int", "<cn>3</cn>", "3"},
		{"decimal", "<cn>0.5</cn>", "1/2"},
		{"pi", "<pi/>", "pi"},
		{"e", "<e/>", "e"},
		{"2pi", "<apply><times/><cn>2</cn><pi/></apply>", "2pi"},
		{"neg", "<apply><minus/><cn>1</cn></apply>", "-1"},
		{"sub", "<apply><minus/><pi/><apply><divide/><pi/><cn>4</cn></apply></apply>", "3pi/4"},
		{"add-zero", "<apply><plus/><cn>0</cn><exponentiale/></apply>", "e"},
		{"divide", "<apply><divide/><pi/><cn>2</cn></apply>", "pi/2"},
		{"divide-symbols", "<apply><divide/><pi/><pi/></apply>", "1"},
		{"power", "<apply><power/><cn>2</cn><cn>-1</cn></apply>", "1/2"},
		{"power-pi", "<apply><power/><pi/><cn>2</cn></apply>", "pi^2"},
		{"sqrt", "<apply><root/><cn>9</cn></apply>", "3"},
		{"sqrt-fraction", "<apply><root/><apply><divide/><cn>9</cn><cn>4</cn></apply></apply>", "3/2"},
		{"sqrt-pi-squared", "<apply><root/><apply><power/><pi/><cn>2</cn></apply></apply>", "pi"},
		{"cbrt", "<apply><root/><degree><cn>3</cn></degree><cn>64</cn></apply>", "4"},
		{"cbrt-neg", "<apply><root/><degree><cn>3</cn></degree><cn>-8</cn></apply>", "-2"},
		{"abs", "<apply><abs/><apply><minus/><pi/></apply></apply>", "pi"},
		{"math", "<math><apply><times/><cn>1.5</cn><exponentiale/></apply></math>", "3e/2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			want, err := parseRational(c.want)
			if err != nil {
				t.Fatal(err)
			}
			got, err := mustParse(t, c.src).Rational()
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(want) {
				t.Errorf("want %v, got %v", want, got)
			}
		})
	}
}

// parseRational accepts the rational text syntax plus sym^k factors.
func parseRational(s string) (rational.Rational, error) {
	switch s {
	case "pi^2":
		return rational.NewSymbolic(1, 1, rational.Pi, 2)
	}
	return rational.Parse(s)
}

func TestRationalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"sin", "<apply><sin/><cn>0</cn></apply>", &mathml.ExactError{Op: mathml.Sin}},
		{"cos", "<apply><cos/><cn>0</cn></apply>", &mathml.ExactError{Op: mathml.Cos}},
		{"tan", "<apply><tan/><cn>0</cn></apply>", &mathml.ExactError{Op: mathml.Tan}},
		{"ln", "<apply><ln/><exponentiale/></apply>", &mathml.ExactError{Op: mathml.Ln}},
		{"log", "<apply><log/><cn>100</cn></apply>", &mathml.ExactError{Op: mathml.Log}},
		{"logbase", "<apply><log/><logbase><cn>3</cn></logbase><cn>27</cn></apply>", &mathml.ExactError{Op: mathml.Log}},
		{"sqrt-2", "<apply><root/><cn>2</cn></apply>", &mathml.ExactError{Op: mathml.Root}},
		{"sqrt-neg", "<apply><root/><cn>-4</cn></apply>", &mathml.ExactError{Op: mathml.Root}},
		{"sqrt-pi", "<apply><root/><pi/></apply>", &mathml.ExactError{Op: mathml.Root}},
		{"fractional-degree", "<apply><root/><degree><cn>0.5</cn></degree><cn>4</cn></apply>", &mathml.ExactError{Op: mathml.Root}},
		{"variable", "<ci>x</ci>", &mathml.NoExactValueError{Name: "x"}},
		{"nested-variable", "<apply><plus/><cn>1</cn><ci>x</ci></apply>", &mathml.NoExactValueError{Name: "x"}},
		{"list", "<list><cn>1</cn><cn>2</cn></list>", &mathml.TypeError{Want: "number", Got: "list"}},
		{"arity-first", "<apply><sin/><cn>0</cn><cn>1</cn></apply>", &mathml.ArityError{Op: mathml.Sin, Want: []int{1}, Got: 2}},
	}
	ignore := cmpopts.IgnoreFields(mathml.ExactError{}, "Reason")
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := mustParse(t, c.src).Rational()
			if err == nil {
				t.Fatal("no error")
			}
			if diff := cmp.Diff(c.want, err, ignore); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRationalArithmeticErrors(t *testing.T) {
	_, err := mustParse(t, "<apply><plus/><pi/><exponentiale/></apply>").Rational()
	var se *rational.SymbolError
	if !errors.As(err, &se) {
		t.Errorf("pi + e: want SymbolError, got %v", err)
	}
	_, err = mustParse(t, "<apply><power/><cn>2</cn><cn>0.5</cn></apply>").Rational()
	var oe *rational.OperationError
	if !errors.As(err, &oe) {
		t.Errorf("2^(1/2): want OperationError, got %v", err)
	}
	_, err = mustParse(t, "<apply><divide/><cn>1</cn><cn>0</cn></apply>").Rational()
	var ve *rational.ValueError
	if !errors.As(err, &ve) {
		t.Errorf("1/0: want ValueError, got %v", err)
	}
}

func TestRationalOutOfRange(t *testing.T) {
	srcs := []string{
		"<apply><power/><cn>2</cn><cn>64</cn></apply>",
		"<apply><power/><cn>10</cn><cn>19</cn></apply>",
		"<apply><power/><cn>2</cn><cn>-63</cn></apply>",
		"<apply><times/><cn>4000000000</cn><cn>4000000000</cn></apply>",
		"<apply><times/><cn>-4000000000</cn><cn>4000000000</cn></apply>",
		"<apply><plus/><cn>9000000000000000000</cn><cn>9000000000000000000</cn></apply>",
		"<apply><minus/><cn>-9000000000000000000</cn><cn>9000000000000000000</cn></apply>",
		"<apply><divide/><cn>1</cn><apply><times/><cn>5000000000</cn><cn>5000000000</cn></apply></apply>",
	}
	for _, src := range srcs {
		_, err := mustParse(t, src).Rational()
		var ve *rational.ValueError
		if !errors.As(err, &ve) {
			t.Errorf("%s: want ValueError, got %v", src, err)
		}
	}
}

func TestTuple(t *testing.T) {
	e := mustParse(t, "<list><cn>1</cn><pi/><apply><divide/><cn>-1</cn><cn>2</cn></apply></list>")
	tup, err := e.Tuple()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tup.String(), "(1, π, -1/2)"; got != want {
		t.Errorf("want %s, got %s", want, got)
	}
	if _, err := mustParse(t, "<list><cn>1</cn></list>").Tuple(); err == nil {
		t.Error("one-item list gave no error")
	}
	var te *mathml.TypeError
	if _, err := mustParse(t, "<cn>1</cn>").Tuple(); !errors.As(err, &te) {
		t.Errorf("want TypeError, got %v", err)
	}
	if _, err := mustParse(t, "<list><cn>1</cn><apply><sin/><cn>1</cn></apply></list>").Tuple(); err == nil {
		t.Error("inexact item gave no error")
	}
}
