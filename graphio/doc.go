// Package graphio reads and writes three persisted graph formats: edge
// list, adjacency list, and write-only DOT. Parsing follows a
// line-oriented convention: scan with bufio.Scanner, parse tokens with
// strconv.Atoi, and report malformed input through sentinel errors
// rather than panics.
package graphio
