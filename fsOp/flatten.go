package fsOp

import (
	. "github.com/warpfork/go-errcat"
	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/durden/jist"
	"github.com/durden/jist/fs"
)

/*
	Walks the project root recursively (never descending into the VCS
	metadata directory) and moves every regular file at depth >= 1 directly
	into the root under its encoded flat name.  Directories emptied by the
	moves are pruned.

	After completion the tree contains no non-metadata subdirectories, so
	running Flatten on an already-flat tree is a no-op.

	There is no transactional guarantee: a rename failure aborts the whole
	operation (category ErrFS) and may leave a partially flattened tree
	on disk.
*/
func Flatten(afs billy.Filesystem, separator string) error {
	return flattenDir(afs, fs.RelPath{}, separator)
}

func flattenDir(afs billy.Filesystem, dir fs.RelPath, separator string) error {
	infos, err := afs.ReadDir(dir.Path())
	if err != nil {
		return Errorf(jist.ErrFS, "flatten: cannot list %s: %s", dir, err)
	}
	for _, info := range infos {
		child := dir.Join(fs.MustRelPath(info.Name()))
		switch {
		case info.IsDir():
			if info.Name() == jist.MetadataDir {
				continue
			}
			if err := flattenDir(afs, child, separator); err != nil {
				return err
			}
			// Anything non-regular left behind keeps the husk alive,
			// so the prune is best-effort only.
			_ = afs.Remove(child.Path())
		case info.Mode().IsRegular():
			if child.Depth() == 0 {
				continue
			}
			flat := fs.Encode(child, separator)
			if err := afs.Rename(child.Path(), flat); err != nil {
				return Errorf(jist.ErrFS, "flatten: cannot move %s to %q: %s", child, flat, err)
			}
		}
	}
	return nil
}
