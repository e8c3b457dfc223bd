// Package render turns a clock time into fractime's output lines.
//
// Render is a pure function: the digital time comes first, then the phrase
// in the requested format. Nothing is written anywhere; the cli package
// prints the returned lines.
package render
