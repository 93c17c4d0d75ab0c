package testutil

import (
	"io"
	"os"
	gopath "path"

	"github.com/smartystreets/goconvey/convey"
	billy "gopkg.in/src-d/go-billy.v4"
)

/*
	Run the given function with a tmpdir, and remove it afterwards.

	The tmpdir is rooted under TMPDIR per the usual os rules.
*/
func WithTmpdir(fn func(tmpDir string)) {
	tmpDir, err := os.MkdirTemp("", "jist-test-")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)
	fn(tmpDir)
}

// PlaceFile writes a file (and any missing parent dirs) into the filesystem,
// asserting along the way.  Only usable inside a convey context.
func PlaceFile(afs billy.Filesystem, path string, body string) {
	if dir := gopath.Dir(path); dir != "." {
		convey.So(afs.MkdirAll(dir, 0755), convey.ShouldBeNil)
	}
	f, err := afs.Create(path)
	convey.So(err, convey.ShouldBeNil)
	_, err = f.Write([]byte(body))
	convey.So(err, convey.ShouldBeNil)
	convey.So(f.Close(), convey.ShouldBeNil)
}

// ShouldReadFile returns the file's contents, asserting it opens and reads
// cleanly.  Only usable inside a convey context.
func ShouldReadFile(afs billy.Filesystem, path string) string {
	f, err := afs.Open(path)
	convey.So(err, convey.ShouldBeNil)
	defer f.Close()
	body, err := io.ReadAll(f)
	convey.So(err, convey.ShouldBeNil)
	return string(body)
}

// Exists reports whether a path names anything at all in the filesystem.
func Exists(afs billy.Filesystem, path string) bool {
	_, err := afs.Lstat(path)
	return err == nil
}

// ListNames returns the entry names directly inside a directory, or nil when
// the directory cannot be listed.
func ListNames(afs billy.Filesystem, dir string) []string {
	infos, err := afs.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name()
	}
	return names
}
