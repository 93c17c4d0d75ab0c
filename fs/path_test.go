package fs

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRelPath(t *testing.T) {
	Convey("RelPath stringer suite:", t, func() {
		for _, tr := range []struct {
			title string
			p1    RelPath
			str   string
		}{
			{"zero values",
				RelPath{},
				"."},
			{"dot value",
				MustRelPath("."),
				"."},
			{"short value",
				MustRelPath("aa"),
				"./aa"},
			{"long value",
				MustRelPath("a/bb/ccc"),
				"./a/bb/ccc"},
			{"denormalized value",
				MustRelPath("a/bb/../ccc"),
				"./a/ccc"},
			{"dotted value",
				MustRelPath(".aa"),
				"./.aa"},
		} {
			Convey(tr.title, func() {
				v := fmt.Sprintf("%s", tr.p1)
				So(v, ShouldResemble, tr.str)
			})
		}
	})
}

func TestRelPathDir(t *testing.T) {
	Convey("RelPath.Dir suite:", t, func() {
		for _, tr := range []struct {
			title string
			p1    RelPath
			pdir  RelPath
		}{
			{"zero values",
				RelPath{},
				RelPath{}},
			{"short value",
				MustRelPath("aa"),
				RelPath{}},
			{"long value",
				MustRelPath("a/bb/ccc"),
				MustRelPath("a/bb")},
		} {
			Convey(tr.title, func() {
				v := tr.p1.Dir()
				So(v, ShouldResemble, tr.pdir)
			})
		}
	})
}

func TestRelPathLast(t *testing.T) {
	Convey("RelPath.Last suite:", t, func() {
		for _, tr := range []struct {
			title string
			p1    RelPath
			last  string
		}{
			{"zero values",
				RelPath{},
				"."},
			{"short value",
				MustRelPath("aa"),
				"aa"},
			{"long value",
				MustRelPath("a/bb/ccc"),
				"ccc"},
		} {
			Convey(tr.title, func() {
				v := tr.p1.Last()
				So(v, ShouldResemble, tr.last)
			})
		}
	})
}

func TestRelPathJoins(t *testing.T) {
	Convey("RelPath.Join suite:", t, func() {
		for _, tr := range []struct {
			title  string
			p1, p2 RelPath
			pj     RelPath
		}{
			{"zero values",
				RelPath{}, RelPath{},
				RelPath{}},
			{"regular values",
				MustRelPath("rel"), MustRelPath("pth"),
				MustRelPath("rel/pth")},
			{"zero,short",
				MustRelPath("."), MustRelPath("pth"),
				MustRelPath("pth")},
			{"long,long",
				MustRelPath("a/bb/ccc"), MustRelPath("dd/e"),
				MustRelPath("a/bb/ccc/dd/e")},
			{"dotted,short",
				MustRelPath(".dot"), MustRelPath("wonk"),
				MustRelPath(".dot/wonk")},
		} {
			Convey(tr.title, func() {
				v := tr.p1.Join(tr.p2)
				So(v, ShouldResemble, tr.pj)
			})
		}
	})
}

func TestRelPathSegments(t *testing.T) {
	Convey("RelPath.Segments suite:", t, func() {
		for _, tr := range []struct {
			title string
			p1    RelPath
			segs  []string
		}{
			{"zero values",
				RelPath{},
				nil},
			{"len=1 values",
				MustRelPath("./a"),
				[]string{"a"}},
			{"len=3 values",
				MustRelPath("./a/bb/c"),
				[]string{"a", "bb", "c"}},
			{"dotted values",
				MustRelPath("./.a/bb/.c"),
				[]string{".a", "bb", ".c"}},
		} {
			Convey(tr.title, func() {
				So(tr.p1.Segments(), ShouldResemble, tr.segs)
				So(FromSegments(tr.segs...), ShouldResemble, tr.p1)
			})
		}
	})
}

func TestRelPathDepth(t *testing.T) {
	Convey("RelPath.Depth suite:", t, func() {
		So(RelPath{}.Depth(), ShouldEqual, 0)
		So(MustRelPath("a").Depth(), ShouldEqual, 0)
		So(MustRelPath("a/b").Depth(), ShouldEqual, 1)
		So(MustRelPath("a/b/c.txt").Depth(), ShouldEqual, 2)
	})
}
