package rational

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Float returns x computed to prec bits. A precision of 0 means 64.
func (x Rational) Float(prec uint) *big.Float {
	if prec == 0 {
		prec = 64
	}
	z := new(big.Float).SetPrec(prec).SetInt64(x.num)
	z.Quo(z, new(big.Float).SetPrec(prec).SetInt64(x.d()))
	if x.factor == 0 {
		return z
	}
	c := SymbolFloat(x.sym, prec)
	k := new(big.Float).SetPrec(prec).SetInt64(x.factor)
	bigfloat.Pow(c, c, k)
	return z.Mul(z, c)
}

// SymbolFloat returns the value of sym computed to prec bits.
func SymbolFloat(sym Symbol, prec uint) *big.Float {
	c := new(big.Float).SetPrec(prec)
	switch sym {
	case Pi:
		bigfloat.Pi(c)
	case E:
		var one big.Float
		one.SetFloat64(1)
		bigfloat.Exp(c, &one)
	default:
		c.SetInt64(1)
	}
	return c
}
