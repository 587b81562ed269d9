// Package vexflag tokenizes a program's arguments against a set of registered
// options, following the usual Unix conventions.
//
// For example:
//  p, err := vexflag.New(vexflag.Info{Name: "cat", Version: "1.0", Description: "Concatenates files."})
//  p.Add(vexflag.Descriptor{Short: 'i', Long: "input", Type: vexflag.String, MaxCount: -1})
//  p.Add(vexflag.Descriptor{Short: 'n', Long: "count", Type: vexflag.Integer, MaxCount: 1})
//  vexflag.Parse(p)
//
// Recognized forms include:
//  -abc          a cluster of short options
//  -ifile.txt    a value attached to a short option
//  --count=3     a long option with a value
//  -i a.txt b    bare values grouped under the preceding option, up to its MaxCount
//  --            stops option parsing, everything after it is a bare value
//
// Bare values that no option claims become tokens of their own, typed as an Integer
// (all digits), a Float (digits around one '.') or a String. Following bare values of
// the same type are grouped into them.
//
// The -h/--help and -v/--version flags are always registered. Parse handles them by
// printing the help or version text and exiting.
package vexflag
