// Package blocks extracts the lexical extent of brace-delimited constructs from
// source text without parsing it.
//
// Extract walks forward from a starting line and counts `{` and `}` characters
// until the running depth returns to zero. Counting is purely textual: braces
// inside string literals or comments are counted like structural braces.
// Input that never balances yields the remaining lines of the document.
package blocks
