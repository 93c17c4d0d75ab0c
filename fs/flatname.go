package fs

import "strings"

/*
	The flatten-name codec: a stateless bijection between a hierarchical
	relative path and a single flat filename, parameterized by a separator
	token.

	The load-bearing invariant of the whole tool: for any RelPath p whose
	segments do not contain the separator, Decode(Encode(p, sep), sep) == p.
	The no-separator-in-segment rule is a caller contract and is not
	validated here; violating it makes the encoding ambiguous.
*/

// Encode joins a path's segments with the separator, producing the flat
// filename for it.  Root-level files (depth zero) come out unchanged.
func Encode(p RelPath, separator string) string {
	return strings.Join(p.Segments(), separator)
}

// Decode splits a flat filename on the separator: the last piece is the
// filename, everything before it the directory path.  A name containing no
// separator decodes to a root-level file.
func Decode(name string, separator string) RelPath {
	return FromSegments(strings.Split(name, separator)...)
}
