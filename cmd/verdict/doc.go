// Verdict is a CLI for validating static-analysis scanner output against a
// trusted ground-truth reference set.
//
// It matches findings from both sides by a normalized className::fieldName
// key, reports precision, recall, and F1, and breaks down false positives and
// false negatives by the semantic category of each field's declared type.
//
// Usage:
//
//	verdict compare scanner.json ground-truth.json   # compare two findings files
//	verdict compare --fail-under 0.8                 # gate CI on a minimum F1
//	verdict config init                              # create a default config file
//	verdict version                                  # print version
package main
