// Package pattern compiles numeric filename templates into matchers and
// formatters.
//
// A template is a literal string with exactly one printf-style numeric
// placeholder: "%d" for an unbounded run of digits, "%03d" for an exact
// zero-padded width, "%3d" for an exact width where leading positions may
// be spaces. Single-page templates compile to a Number; spread templates
// (two numbers joined by a literal, for two-page images) compile to a
// Spread, either parsed from an explicit two-placeholder template or
// derived from a Number plus a join literal.
package pattern
