// Package imaging loads page images and classifies them for the renumber
// passes.
//
// The orientation classifier is the contract the rename engine depends on:
// width > height means landscape, which for a single-numbered page signals
// a mis-numbered two-page spread. The gutter probe and tone classifier are
// advisory; they refine the report but never change what gets renamed.
package imaging
