// Package value holds the structured values passed between built-in commands.
//
// A Value is one of three variants: a Primitive scalar, an ordered List, or a
// keyed *Object record. Objects expose their fields through Descriptors, which
// also define the column order used when rendering a list of records.
package value
