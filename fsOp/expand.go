package fsOp

import (
	"os"

	. "github.com/warpfork/go-errcat"
	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/durden/jist"
	"github.com/durden/jist/fs"
)

/*
	Lists the entries directly in the project root (no recursion -- expand
	only interprets flat filenames, never re-descends) and moves every
	regular file whose name decodes to depth >= 1 into its nested location,
	creating intermediate directories as needed.

	Directory entries at the root are left untouched, which also makes
	Expand a no-op on an already-expanded tree.

	If an intermediate directory is already occupied by a regular file the
	whole operation fails with category ErrPathConflict; the conflicting
	file is never overwritten.
*/
func Expand(afs billy.Filesystem, separator string) error {
	infos, err := afs.ReadDir(".")
	if err != nil {
		return Errorf(jist.ErrFS, "expand: cannot list root: %s", err)
	}
	for _, info := range infos {
		if info.IsDir() || !info.Mode().IsRegular() {
			continue
		}
		decoded := fs.Decode(info.Name(), separator)
		if decoded.Depth() == 0 {
			continue
		}
		if err := MkdirAll(afs, decoded.Dir()); err != nil {
			return err
		}
		if err := afs.Rename(info.Name(), decoded.Path()); err != nil {
			return Errorf(jist.ErrFS, "expand: cannot move %q to %s: %s", info.Name(), decoded, err)
		}
	}
	return nil
}

/*
	Makes dirs recursively so the requested path exists.

	Existing dirs are not mutated.  A path element already occupied by a
	non-directory raises ErrPathConflict and nothing further is created.
*/
func MkdirAll(afs billy.Filesystem, path fs.RelPath) error {
	segs := path.Segments()
	for i := range segs {
		prefix := fs.FromSegments(segs[:i+1]...)
		info, err := afs.Lstat(prefix.Path())
		switch {
		case err == nil && info.IsDir():
			continue
		case err == nil:
			return Errorf(jist.ErrPathConflict, "%s already exists and is not a directory", prefix)
		case os.IsNotExist(err):
			if err := afs.MkdirAll(prefix.Path(), 0755); err != nil {
				return Errorf(jist.ErrFS, "cannot create directory %s: %s", prefix, err)
			}
		default:
			return Errorf(jist.ErrFS, "cannot stat %s: %s", prefix, err)
		}
	}
	return nil
}
