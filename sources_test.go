package lsgrid_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lsgrid/lsgrid"
)

func TestDirListsEveryNameInTheDirectory(t *testing.T) {
	t.Parallel()
	want := []string{".hidden", "apple", "banana", "date", "fig", "kiwi"}
	got, err := lsgrid.Dir("testdata/fruit").Names()
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(got)
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestDirRecordsOriginOfEachEntry(t *testing.T) {
	t.Parallel()
	entries, err := lsgrid.Dir("testdata/fruit").Match("kiwi").Entries()
	if err != nil {
		t.Fatal(err)
	}
	want := []lsgrid.Entry{{Name: "kiwi", Dir: "testdata/fruit"}}
	if !cmp.Equal(want, entries) {
		t.Fatal(cmp.Diff(want, entries))
	}
	wantPath := filepath.Join("testdata", "fruit", "kiwi")
	if entries[0].Path() != wantPath {
		t.Errorf("want path %q, got %q", wantPath, entries[0].Path())
	}
}

func TestDirOfEmptyDirectoryIsEmptyWithoutError(t *testing.T) {
	t.Parallel()
	got, err := lsgrid.Dir(t.TempDir()).Names()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("want no names, got %q", got)
	}
}

func TestDirWithEmptyPathListsCurrentDirectory(t *testing.T) {
	t.Parallel()
	got, err := lsgrid.Dir("").Match("layout.go").Entries()
	if err != nil {
		t.Fatal(err)
	}
	want := []lsgrid.Entry{{Name: "layout.go", Dir: lsgrid.DefaultDir}}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestDirOfNonexistentPathSetsPathError(t *testing.T) {
	t.Parallel()
	l := lsgrid.Dir("testdata/doesntexist")
	err := l.Error()
	if err == nil {
		t.Fatal("want error listing nonexistent directory, got nil")
	}
	if !errors.Is(err, lsgrid.ErrInvalidPath) {
		t.Errorf("want ErrInvalidPath, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("want fs.ErrNotExist, got %v", err)
	}
	var pathErr *lsgrid.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("want *PathError, got %T", err)
	}
	if pathErr.Path != "testdata/doesntexist" {
		t.Errorf("want path %q, got %q", "testdata/doesntexist", pathErr.Path)
	}
	_, err = l.Names()
	if err != l.Error() {
		t.Errorf("want sink to return listing error %v, got %v", l.Error(), err)
	}
}

func TestDirOfRegularFileSetsPathError(t *testing.T) {
	t.Parallel()
	err := lsgrid.Dir("testdata/fruit/apple").Error()
	if !errors.Is(err, lsgrid.ErrInvalidPath) {
		t.Errorf("want ErrInvalidPath listing a regular file, got %v", err)
	}
}

func TestDirOnErroredListingIsNoOp(t *testing.T) {
	t.Parallel()
	e := errors.New("fake error")
	l := lsgrid.NewListing().WithError(e).Dir("testdata/fruit")
	if l.Error() != e {
		t.Errorf("want %v, got %v", e, l.Error())
	}
	if l.Len() != 0 {
		t.Errorf("want no entries, got %d", l.Len())
	}
}

func TestDirSeesFilesCreatedAtRuntime(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for _, name := range []string{"b.txt", ".hidden", "a.txt"} {
		err := os.WriteFile(filepath.Join(dir, name), nil, 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"a.txt", "b.txt"}
	got, err := lsgrid.Dir(dir).Visible().Sort().Names()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestNamesKeepsOrderGiven(t *testing.T) {
	t.Parallel()
	want := []string{"zebra", "apple", "mango"}
	got, err := lsgrid.Names(want...).Names()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}
