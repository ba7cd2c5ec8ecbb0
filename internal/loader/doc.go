// Package loader reads scanner output and ground-truth files from disk into
// flat finding collections.
//
// Scanner files nest findings under a "findings" key; ground-truth files are
// either a flat JSON array or wrapped under a "groundTruth" key. Loaders
// preserve order and duplicates — deduplication is the reconciler's concern.
// A file that cannot be read or parsed is an error for the CLI to report;
// nothing in this package panics or touches the core's logic.
package loader
