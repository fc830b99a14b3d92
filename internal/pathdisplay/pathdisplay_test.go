package pathdisplay

import (
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestResolveUntitled(t *testing.T) {
	for _, m := range []Mode{Full, Relative, Shortest} {
		assert.Equal(t, "untitled", Resolve("", "/proj", m, "/home/u", "untitled"))
	}
}

func TestResolveFullCollapsesHome(t *testing.T) {
	cases := []struct{ p, h string }{
		{"/home/u/src/a.go", "/home/u"},
		{"/home/u", "/home/u"},
		{"/home/alice/x", "/home/al"},
	}
	for _, c := range cases {
		assert.Equal(t, "~"+c.p[len(c.h):], Resolve(c.p, "", Full, c.h, "untitled"))
	}
	assert.Equal(t, "/srv/a.go", Resolve("/srv/a.go", "", Full, "/home/u", "untitled"))
	assert.Equal(t, "/srv/a.go", Resolve("/srv/a.go", "", Full, "", "untitled"))
}

func TestResolveRelative(t *testing.T) {
	p := filepath.Join("/", "work", "proj", "pkg", "a.go")
	root := filepath.Join("/", "work", "proj")
	assert.Equal(t, filepath.Join("pkg", "a.go"), Resolve(p, root, Relative, "", "untitled"))
}

func TestResolveRelativeWithoutRootDegrades(t *testing.T) {
	assert.Equal(t, "~/a.go", Resolve("/home/u/a.go", "", Relative, "/home/u", "untitled"))
}

func TestResolveRelativeMismatchedVolumes(t *testing.T) {
	cases := []struct{ p, root string }{
		{`C:\src\a.txt`, `D:\proj`},
		{`\\host\share\a.txt`, `C:\proj`},
		{`C:\src\a.txt`, `\\host\share`},
		{`/usr/src/a.txt`, `D:\proj`},
	}
	for _, c := range cases {
		assert.Equal(t, c.p, Resolve(c.p, c.root, Relative, "", "untitled"), c.p)
	}
}

func TestResolveRelativeDrivePathsOnAnyHost(t *testing.T) {
	cases := []struct{ p, root, want string }{
		{`C:\proj\src\a.go`, `C:\proj`, `src\a.go`},
		{`c:\Proj\src\a.go`, `C:\proj\`, `src\a.go`},
		{`C:\proj\a.go`, `C:\proj\src`, `..\a.go`},
		{`C:/proj/src/a.go`, `C:/proj`, `src/a.go`},
		{`\\host\share\proj\a.go`, `\\host\share\proj`, `a.go`},
		{`C:\proj`, `C:\proj`, `.`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Resolve(c.p, c.root, Relative, "", "untitled"), c.p)
	}
	assert.Equal(t, `src\a.go`, Resolve(`C:\proj\src\a.go`, `C:\proj`, Shortest, "", "untitled"))
	assert.Equal(t, `C:\a.go`, Resolve(`C:\a.go`, `C:\proj\deep\er`, Shortest, "", "untitled"))
}

func TestResolveShortest(t *testing.T) {
	root := filepath.Join("/", "a", "very", "long", "project", "root")
	p := filepath.Join(root, "x.go")
	got := Resolve(p, root, Shortest, "", "untitled")
	assert.Equal(t, "x.go", got)

	full := Resolve(p, root, Full, "", "untitled")
	rel := Resolve(p, root, Relative, "", "untitled")
	assert.LessOrEqual(t, utf8.RuneCountInString(got), utf8.RuneCountInString(full))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), utf8.RuneCountInString(rel))
}

func TestResolveShortestPrefersHomeForm(t *testing.T) {
	// ~/a.go is shorter than ../../home/u/a.go
	got := Resolve("/home/u/a.go", "/opt/proj", Shortest, "/home/u", "untitled")
	assert.Equal(t, "~/a.go", got)
}

func TestResolveShortestTieChoosesFull(t *testing.T) {
	// full "~y" and relative "xy" are both two runes long.
	p, root, home := "/r/xy", "/r", "/r/x"
	assert.Equal(t, "~y", Resolve(p, root, Full, home, "untitled"))
	assert.Equal(t, "xy", Resolve(p, root, Relative, home, "untitled"))
	assert.Equal(t, "~y", Resolve(p, root, Shortest, home, "untitled"))
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, Relative, ParseMode("relative"))
	assert.Equal(t, Shortest, ParseMode(" Shortest "))
	assert.Equal(t, Full, ParseMode("full"))
	assert.Equal(t, Full, ParseMode(""))
	assert.Equal(t, Full, ParseMode("bogus"))
	assert.Equal(t, Relative, Full.Next())
	assert.Equal(t, Full, Shortest.Next())
}
