package rational_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zephyrtronium/plotcore/rational"
)

func TestStep(t *testing.T) {
	cases := []struct {
		name  string
		scale float64
		min   float64
		pi    bool
		want  rational.Rational
	}{
		{"unit", 40, 30, false, rational.Int(1)},
		{"exact", 30, 30, false, rational.Int(1)},
		{"third", 100, 30, false, rational.MustParse("1/3")},
		{"half", 60, 30, false, rational.MustParse("1/2")},
		{"multiple", 10, 30, false, rational.Int(3)},
		{"many", 1, 50, false, rational.Int(50)},
		{"pi-unit", 10, 30, true, rational.MustParse("pi")},
		{"pi-tenth", 100, 30, true, rational.MustParse("pi/10")},
		{"pi-multiple", 1, 30, true, rational.MustParse("10pi")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rational.Step(c.scale, c.min, c.pi)
			if err != nil {
				t.Fatal(err)
			}
			if !r.Equal(c.want) {
				t.Errorf("want %v, got %v", c.want, r)
			}
			if px := r.Approx() * c.scale; px < c.min {
				t.Errorf("step %v projects to %g < %g", r, px, c.min)
			}
		})
	}
}

func TestStepInvalid(t *testing.T) {
	cases := []struct {
		name       string
		scale, min float64
	}{
		{"zero-scale", 0, 30},
		{"negative-scale", -1, 30},
		{"nan-scale", math.NaN(), 30},
		{"inf-scale", math.Inf(1), 30},
		{"zero-min", 10, 0},
		{"too-small", 1e-300, 30},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := rational.Step(c.scale, c.min, false)
			var ve *rational.ValueError
			if !errors.As(err, &ve) {
				t.Errorf("want ValueError, got %v", err)
			}
		})
	}
}

func TestTicks(t *testing.T) {
	p := rational.MustParse
	cases := []struct {
		name   string
		lo, hi float64
		step   rational.Rational
		want   []string
	}{
		{"halves", -1, 1, p("1/2"), []string{"-1", "-1/2", "0", "1/2", "1"}},
		{"pi", -4, 4, p("pi"), []string{"-π", "0", "π"}},
		{"pi-halves", 0, 4, p("pi/2"), []string{"0", "π/2", "π"}},
		{"offset", 0.5, 3.5, p("1"), []string{"1", "2", "3"}},
		{"empty", 0.1, 0.2, p("1"), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ticks, err := rational.Ticks(c.lo, c.hi, c.step)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, r := range ticks {
				got = append(got, r.String())
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("ticks (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTicksInvalid(t *testing.T) {
	var ve *rational.ValueError
	if _, err := rational.Ticks(1, 0, rational.Int(1)); !errors.As(err, &ve) {
		t.Errorf("decreasing range: want ValueError, got %v", err)
	}
	if _, err := rational.Ticks(0, 1, rational.Int(0)); !errors.As(err, &ve) {
		t.Errorf("zero step: want ValueError, got %v", err)
	}
	if _, err := rational.Ticks(0, 1, rational.Int(-1)); !errors.As(err, &ve) {
		t.Errorf("negative step: want ValueError, got %v", err)
	}
	if _, err := rational.Ticks(0, 1e12, rational.Int(1)); !errors.As(err, &ve) {
		t.Errorf("huge range: want ValueError, got %v", err)
	}
}

func TestTicksFarFromZero(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi float64
		step   rational.Rational
	}{
		{"beyond-index", 1e30, 1e30 + 1, rational.Int(1)},
		{"negative", -1e30, -1e30 + 1, rational.Int(1)},
		{"infinite", math.Inf(-1), math.Inf(1), rational.Int(1)},
		{"tick-overflow", 0x1p92, 0x1p92, rational.Int(1 << 40)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rational.Ticks(c.lo, c.hi, c.step)
			var ve *rational.ValueError
			if !errors.As(err, &ve) {
				t.Errorf("want ValueError, got %v, %v", r, err)
			}
		})
	}
	// Large but representable indices still work.
	r, err := rational.Ticks(0x1p52, 0x1p52+2, rational.Int(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(r) != 3 || !r[0].Equal(rational.Int(1<<52)) || !r[2].Equal(rational.Int(1<<52+2)) {
		t.Errorf("wrong ticks %v", r)
	}
}
