// Package validate contains the core types and logic for checking scanner
// output against a ground-truth reference set.
//
// Findings from both sides are keyed by a normalized className::fieldName
// identity (key.go), partitioned into true positives, false positives, and
// false negatives (reconcile.go), scored with precision/recall/F1 under a
// zero-denominator-is-zero policy (metrics.go), and bucketed by declared
// field type through an ordered substring rule list (category.go).
//
// Everything in this package is a pure in-memory transformation over
// already-loaded collections: no I/O, no shared mutable state, no failure
// modes. Malformed records degrade to empty-string keys and duplicate keys
// within one side collapse to the last occurrence, so a single bad record
// never aborts a run.
package validate
