// Package planner classifies source files by extension and builds the
// per-file artifact plan the pipeline executes.
//
// Classification is a pure function of the extension string, matched
// case-sensitively against a fixed set; a file with no extension is a
// classification error, not a silent default. The plan enumerates every
// destination path up front (via the naming package) so dry-run output,
// artifact counts, and execution all share one source of truth.
package planner
