// Package mathml parses and evaluates plot expressions written in a small
// subset of content MathML.
//
// An expression is a tree of elements: <cn> numbers, the variable <ci>x</ci>,
// the constants <pi/> and <exponentiale/>, and <apply> nodes whose first child
// names an operator. "2π" is
//
//	<apply><times/><cn>2</cn><pi/></apply>
//
// Roots and logarithms take an optional index as their first argument, wrapped
// in <degree> or <logbase> respectively. <list> groups expressions into a
// point or range.
//
// A parsed Expr can be compiled to a float64 function of x with Exec,
// evaluated exactly with Rational when it uses only exact operators, or
// evaluated at arbitrary precision with a Context.
package mathml
