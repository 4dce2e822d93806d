// Package rational implements exact numbers for plot axes and labels.
//
// A Rational is a fraction of 64-bit integers optionally scaled by an integer
// power of π or e, such as "π/2" or "-3e". At most one symbol is tracked per
// value; operations that would mix π and e fail with a *SymbolError. Values
// are always kept in lowest terms, so labels like "2π/4" never appear.
//
// Tuples group Rationals into points and ranges, and Step picks tick spacing
// for an axis without the drift of repeatedly adding floats.
package rational
