// Package dotenv loads NAME=VALUE pairs from a file into an environment
// store.
//
// File format:
//
//   - One assignment per line, NAME=VALUE, split at the first '='.
//   - No whitespace trimming, quoting or escaping.
//   - Lines starting with '#' are comments; empty lines are ignored.
//   - An assignment whose value resolves to the empty string is skipped.
//
// Variable references:
//
// A value may contain $NAME references, where NAME is the longest run of
// ASCII letters and digits following the '$'. References are resolved
// against the store at the moment the line is parsed, so a file can refer
// to variables assigned on earlier lines. Unknown references expand to
// the empty string. Because the run is greedy, "$HOSTport" refers to
// HOSTport, not HOST followed by "port"; use a non-alphanumeric separator
// such as "$HOST-port" or "$HOST:port".
//
// Every name the loader writes is recorded, in discovery order, in a
// Registry that can be queried after loading independently of the rest
// of the environment.
//
// The package-level functions operate on Default, which writes to the
// process environment. None of this is safe for concurrent use; callers
// that load from several goroutines must serialize.
package dotenv
