// Package cli wires together the Cobra command tree for the verdict binary.
//
// It defines the root command and all subcommands (compare, config, version),
// binds flags, reads configuration, invokes the comparison, and returns
// deterministic exit codes for CI gating.
package cli
