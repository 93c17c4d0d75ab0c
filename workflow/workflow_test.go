package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/warpfork/go-errcat"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/memfs"

	"github.com/durden/jist"
	"github.com/durden/jist/gist"
	. "github.com/durden/jist/testutil"
)

// fakeEnv stands in for both collaborators: it records every VCS call in
// order and hands out one memfs per directory.
type fakeEnv struct {
	calls  []string
	failOn string // VCS operation name that should blow up
	fss    map[string]billy.Filesystem
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{fss: map[string]billy.Filesystem{}}
}

func (e *fakeEnv) wire(w *Workflow) *fakeEnv {
	w.NewVCS = func(dir string) VCS { return &fakeVCS{env: e, dir: dir} }
	w.NewFS = e.fs
	return e
}

func (e *fakeEnv) fs(dir string) billy.Filesystem {
	if f, ok := e.fss[dir]; ok {
		return f
	}
	f := memfs.New()
	e.fss[dir] = f
	return f
}

func (e *fakeEnv) call(dir, op string) error {
	e.calls = append(e.calls, fmt.Sprintf("%s %s", filepath.Base(dir), op))
	if op == e.failOn {
		return errcat.Errorf(jist.ErrGit, "git %s: boom", op)
	}
	return nil
}

type fakeVCS struct {
	env *fakeEnv
	dir string
}

func (f *fakeVCS) Init(ctx context.Context) error   { return f.env.call(f.dir, "init") }
func (f *fakeVCS) AddAll(ctx context.Context) error { return f.env.call(f.dir, "add") }
func (f *fakeVCS) Commit(ctx context.Context, msg string) error {
	return f.env.call(f.dir, "commit")
}
func (f *fakeVCS) PushForce(ctx context.Context) error { return f.env.call(f.dir, "push") }
func (f *fakeVCS) Pull(ctx context.Context) error      { return f.env.call(f.dir, "pull") }
func (f *fakeVCS) Clone(ctx context.Context, remote, dest string) error {
	return f.env.call(f.dir, fmt.Sprintf("clone %s %s", remote, dest))
}
func (f *fakeVCS) AddRemote(ctx context.Context, name, url string) error {
	return f.env.call(f.dir, fmt.Sprintf("remote-add %s %s", name, url))
}
func (f *fakeVCS) RemoteURL() (string, error) { return "git@gist.github.com:fake.git", nil }

type fakeAPI struct {
	meta     *gist.Metadata
	fetchErr error
	created  string
}

func (a *fakeAPI) Fetch(ctx context.Context, id string) (*gist.Metadata, error) {
	return a.meta, a.fetchErr
}
func (a *fakeAPI) Create(ctx context.Context, description string) (string, error) {
	return a.created, nil
}

func TestPush(t *testing.T) {
	ctx := context.Background()
	Convey("Push:", t, func() {
		w := New("base", "___", nil, nil)
		env := newFakeEnv().wire(w)
		afs := env.fs(filepath.Join("base", "proj"))
		PlaceFile(afs, "readme.md", "root")
		PlaceFile(afs, "foo/bar.js", "nested")

		Convey("the happy path snapshots and leaves the tree expanded", func() {
			url, err := w.Push(ctx, "proj")
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "git@gist.github.com:fake.git")
			So(env.calls, ShouldResemble, []string{"proj add", "proj commit", "proj push"})
			So(ShouldReadFile(afs, "foo/bar.js"), ShouldEqual, "nested")
			So(Exists(afs, "foo___bar.js"), ShouldBeFalse)
		})
		Convey("a failed push restores the expanded tree before erroring", func() {
			env.failOn = "push"
			_, err := w.Push(ctx, "proj")
			So(err, errcat.ErrorShouldHaveCategory, jist.ErrGit)
			So(ShouldReadFile(afs, "foo/bar.js"), ShouldEqual, "nested")
			So(Exists(afs, "foo___bar.js"), ShouldBeFalse)
		})
		Convey("a failed commit restores the expanded tree too", func() {
			env.failOn = "commit"
			_, err := w.Push(ctx, "proj")
			So(err, errcat.ErrorShouldHaveCategory, jist.ErrGit)
			So(env.calls, ShouldResemble, []string{"proj add", "proj commit"})
			So(ShouldReadFile(afs, "foo/bar.js"), ShouldEqual, "nested")
		})
	})
}

func TestClone(t *testing.T) {
	ctx := context.Background()
	Convey("Clone:", t, func() {
		Convey("with a destination given, no metadata is consulted", func() {
			w := New(t.TempDir(), "___", &fakeAPI{}, nil)
			env := newFakeEnv().wire(w)
			afs := env.fs(filepath.Join(w.Root, "mydir"))
			PlaceFile(afs, "foo___bar.js", "nested")

			url, err := w.Clone(ctx, "abc123", "mydir")
			So(err, ShouldBeNil)
			So(url, ShouldEqual, jist.GistWebURL("abc123"))
			So(env.calls, ShouldResemble, []string{
				fmt.Sprintf("%s clone git@gist.github.com:abc123.git mydir", filepath.Base(w.Root)),
				"mydir pull",
			})
			So(ShouldReadFile(afs, "foo/bar.js"), ShouldEqual, "nested")
		})
		Convey("the destination is guessed from the description", func() {
			w := New(t.TempDir(), "___", &fakeAPI{meta: &gist.Metadata{Description: "Foo bar baz"}}, nil)
			env := newFakeEnv().wire(w)

			_, err := w.Clone(ctx, "abc123", "")
			So(err, ShouldBeNil)
			So(env.calls[0], ShouldEndWith, "clone git@gist.github.com:abc123.git foo")
		})
		Convey("empty metadata falls back to an id-derived name", func() {
			w := New(t.TempDir(), "___", &fakeAPI{meta: &gist.Metadata{}}, nil)
			env := newFakeEnv().wire(w)

			_, err := w.Clone(ctx, "abc123", "")
			So(err, ShouldBeNil)
			So(env.calls[0], ShouldEndWith, "clone git@gist.github.com:abc123.git gist-abc12")
		})
		Convey("a failed metadata lookup falls back the same way", func() {
			w := New(t.TempDir(), "___", &fakeAPI{fetchErr: errcat.Errorf(jist.ErrAPI, "404")}, nil)
			env := newFakeEnv().wire(w)

			_, err := w.Clone(ctx, "abc123", "")
			So(err, ShouldBeNil)
			So(env.calls[0], ShouldEndWith, "clone git@gist.github.com:abc123.git gist-abc12")
		})
		Convey("an existing destination skips the clone step", func() {
			w := New(t.TempDir(), "___", &fakeAPI{}, nil)
			env := newFakeEnv().wire(w)
			So(os.MkdirAll(filepath.Join(w.Root, "mydir"), 0755), ShouldBeNil)

			_, err := w.Clone(ctx, "abc123", "mydir")
			So(err, ShouldBeNil)
			So(env.calls, ShouldResemble, []string{"mydir pull"})
		})
	})
}

func TestInit(t *testing.T) {
	ctx := context.Background()
	Convey("Init:", t, func() {
		w := New(t.TempDir(), "___", &fakeAPI{created: "def456"}, nil)
		env := newFakeEnv().wire(w)
		afs := env.fs(filepath.Join(w.Root, "proj"))
		PlaceFile(afs, "foo/bar.js", "nested")

		url, err := w.Init(ctx, "proj", "My snippets")
		So(err, ShouldBeNil)
		So(url, ShouldEqual, jist.GistWebURL("def456"))
		So(env.calls, ShouldResemble, []string{
			"proj init",
			"proj remote-add origin git@gist.github.com:def456.git",
			"proj add", "proj commit", "proj push",
		})
		Convey("and the tree ends expanded", func() {
			So(ShouldReadFile(afs, "foo/bar.js"), ShouldEqual, "nested")
		})
	})
}

func TestPullAndCommit(t *testing.T) {
	ctx := context.Background()
	Convey("Pull expands afterwards:", t, func() {
		w := New("base", "___", nil, nil)
		env := newFakeEnv().wire(w)
		afs := env.fs("base")
		PlaceFile(afs, "foo___bar.js", "nested")

		So(w.Pull(ctx), ShouldBeNil)
		So(env.calls, ShouldResemble, []string{"base pull"})
		So(ShouldReadFile(afs, "foo/bar.js"), ShouldEqual, "nested")
	})
	Convey("Commit stages then commits, nothing else:", t, func() {
		w := New("base", "___", nil, nil)
		env := newFakeEnv().wire(w)

		So(w.Commit(ctx), ShouldBeNil)
		So(env.calls, ShouldResemble, []string{"base add", "base commit"})
	})
}
