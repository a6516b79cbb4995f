// Package cell models spreadsheet function arguments.
//
// An argument is either a single cell value or a rectangular range of values.
// Input captures that as a two-case variant so functions can map over cells
// without inspecting the dynamic type of their arguments:
//
//	out := cell.Map(in, strings.ToUpper)
//
// Map preserves the shape of its input: a scalar maps to a scalar, a grid maps
// to a grid of the same dimensions.
package cell
