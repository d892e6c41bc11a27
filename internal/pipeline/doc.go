// Package pipeline drives a renumber run: compile templates, scan
// candidates, resolve the numeric span, then execute the two rename passes.
//
// Pass one walks the resolved span in the collision-safe direction, renames
// every matched single and spread file by the delta, and flags
// single-numbered pages whose image is landscape. Pass two walks the
// transformed range downwards, promoting flagged pages to spread names and
// shifting everything behind them by the cumulative gap offset.
//
// Ordering is the correctness mechanism. Every rename goes through the
// Mover, which also keeps a virtual view of the directory so a dry run
// takes exactly the decisions a live run would.
package pipeline
