// Package scan discovers candidate page files against compiled templates
// and resolves the numeric window and shift for a renumbering run.
//
// Discovery is two-stage: a cheap wildcard probe narrows the directory
// listing, then every probed name is validated against the strict template
// regex so incidental matches are rejected. Spread candidates must satisfy
// second == first+1; a positional match that violates adjacency is a fatal
// error, never skipped, because it points at a numbering mistake that would
// propagate through the rename passes.
package scan
