package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/labelpress/labelpress/backend/bag"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "layouts"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSaveLoad(t *testing.T) {
	s := newTestStore(t)
	filename, err := s.Save("honey_1", []byte(`{"widthMM":58,"heightMM":40,"objects":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	if filename != "honey_1.json" {
		t.Errorf("Save() = %q, want honey_1.json", filename)
	}
	for _, name := range []string{"honey_1.json", "honey_1"} {
		data, err := s.Load(name)
		if err != nil {
			t.Fatalf("Load(%q) error: %s", name, err)
		}
		if !strings.Contains(string(data), "\n  \"widthMM\": 58") {
			t.Errorf("Load(%q) = %s, want indented JSON", name, data)
		}
	}
}

func TestSaveInvalid(t *testing.T) {
	s := newTestStore(t)
	testdata := []struct {
		name string
		data string
	}{
		{"../evil", `{}`},
		{"a/b", `{}`},
		{"", `{}`},
		{"мёд", `{}`},
		{"ok", `[1,2]`},
		{"ok", `{"widthMM":`},
	}
	for _, td := range testdata {
		if _, err := s.Save(td.name, []byte(td.data)); !errors.Is(err, bag.ErrInvalidInput) {
			t.Errorf("Save(%q, %s) error = %v, want ErrInvalidInput", td.name, td.data, err)
		}
	}
	files, err := os.ReadDir(s.Root())
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("rejected saves wrote %d files", len(files))
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(s.Root()), "evil.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file written outside the layout directory")
	}
}

func TestList(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"old", "newest", "middle"} {
		if _, err := s.Save(name, []byte(`{}`)); err != nil {
			t.Fatal(err)
		}
		mtime := map[string]time.Time{"old": base, "middle": base.Add(time.Hour), "newest": base.Add(2 * time.Hour)}[name]
		if err := os.Chtimes(filepath.Join(s.Root(), name+".json"), mtime, mtime); err != nil {
			t.Fatalf("chtimes %d: %s", i, err)
		}
	}
	if err := os.WriteFile(filepath.Join(s.Root(), "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	entries, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name+"|"+e.Filename)
	}
	want := []string{"newest|newest.json", "middle|middle.json", "old|old.json"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Save("tmp", []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("tmp.json"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load("tmp.json"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() after Delete() error = %v, want ErrNotFound", err)
	}
	if err := s.Delete("tmp.json"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
	if err := s.Delete("..%2Fserver.js"); !errors.Is(err, bag.ErrInvalidInput) {
		t.Errorf("Delete(traversal) error = %v, want ErrInvalidInput", err)
	}
}

func TestLoadBrokenFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(filepath.Join(s.Root(), "broken.json"), []byte(`{"widthMM":`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load("broken"); !errors.Is(err, bag.ErrInvalidInput) {
		t.Errorf("Load(broken) error = %v, want ErrInvalidInput", err)
	}
}
