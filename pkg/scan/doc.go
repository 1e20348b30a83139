// Package scan enumerates regular-expression matches over a single line.
//
// Patterns are compiled with github.com/dlclark/regexp2, which supports the
// backreferences and lookahead the rules need. All offsets are measured in
// runes so that matching and slicing agree on multi-byte text.
package scan
