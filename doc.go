// Package plotcore reads the attribute values of a plot description.
//
// Attribute strings hold one of three kinds of value: an exact number such as
// "-3pi/4", a tuple such as "(0, 2pi)", or a MathML expression. ParseAttr tells
// them apart by their first character and hands each to package rational or
// package mathml, which do the real work.
package plotcore
