package fs

import (
	"path"
	"strings"
)

// RelPath is a file location relative to a project root: an ordered sequence
// of path segments.  It is always kept in cleaned form, and the zero value
// means "the root itself".
type RelPath struct {
	path      string
	lastSplit int
}

func MustRelPath(p string) RelPath {
	p = path.Clean(p)
	if p == "" || p[0] == '/' {
		panic("nope")
	}
	if p == "." { // We can't stop people from using the zero value, so, use it.
		return RelPath{}
	}
	return RelPath{p, strings.LastIndexByte(p, '/')}
}

// FromSegments assembles a RelPath from ordered segments.
// Inverse of Segments for any cleaned, non-empty segment list.
func FromSegments(segs ...string) RelPath {
	if len(segs) == 0 {
		return RelPath{}
	}
	return MustRelPath(path.Join(segs...))
}

func (p RelPath) String() string {
	if p.path == "" {
		return "."
	} else if p.path[0] == '.' { // a '..' prefix
		return p.path
	} else {
		return "./" + p.path
	}
}

// Path returns the bare cleaned path, without the "./" cosmetic prefix.
// This is the form handed to filesystem implementations.
func (p RelPath) Path() string {
	if p.path == "" {
		return "."
	}
	return p.path
}

func (p RelPath) Dir() RelPath {
	if p.path == "" {
		return p
	} else if p.lastSplit == -1 {
		return RelPath{}
	} else {
		p2 := p.path[0:p.lastSplit]
		return RelPath{p2, strings.LastIndexByte(p2, '/')}
	}
}

func (p RelPath) Last() string {
	if p.path == "" {
		return "."
	} else if p.lastSplit == -1 {
		return p.path
	} else {
		return p.path[p.lastSplit+1:]
	}
}

func (p RelPath) Join(p2 RelPath) RelPath {
	switch {
	case p2.path == "":
		return p
	case p.path == "":
		return p2
	default:
		return RelPath{p.path + "/" + p2.path, len(p.path) + p2.lastSplit + 1}
	}
}

// Segments returns the ordered path segments, or nil for the zero path.
func (p RelPath) Segments() []string {
	if p.path == "" {
		return nil
	}
	return strings.Split(p.path, "/")
}

// Depth counts the directory levels above the named entry: zero for a
// root-level file, one for "a/b", and so on.
func (p RelPath) Depth() int {
	if p.path == "" {
		return 0
	}
	return strings.Count(p.path, "/")
}
