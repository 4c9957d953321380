package rolodex

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestEmbeddedBanner(t *testing.T) {
	text, err := LoadTemplate(Templates, "banner.txt")
	if err != nil {
		t.Fatalf("loading embedded banner.txt: %v", err)
	}
	if text != "Welcome to the assistant bot!" {
		t.Errorf("banner = %q, want the welcome line", text)
	}
}

func TestLoadTemplate_InvalidName(t *testing.T) {
	for _, name := range []string{"../banner.txt", `sub\banner.txt`, "sub/banner.txt"} {
		if _, err := LoadTemplate(Templates, name); err == nil {
			t.Errorf("LoadTemplate(%q) should reject path separators", name)
		}
	}
}

func TestLoadTemplate_Empty(t *testing.T) {
	fsys := fstest.MapFS{
		"blank.txt": &fstest.MapFile{Data: []byte("  \n")},
	}
	if _, err := LoadTemplate(fsys, "blank.txt"); !errors.Is(err, ErrEmpty) {
		t.Errorf("LoadTemplate(blank) error = %v, want ErrEmpty", err)
	}
}

func TestLoadTemplate_Missing(t *testing.T) {
	if _, err := LoadTemplate(fstest.MapFS{}, "nope.txt"); err == nil {
		t.Error("LoadTemplate(missing) should return error")
	}
}

func TestOverlayFS_EmbeddedOnly(t *testing.T) {
	embedded := fstest.MapFS{
		"hello.txt": &fstest.MapFile{Data: []byte("from embedded")},
	}
	localDir := t.TempDir() // empty

	f, err := OverlayFS(localDir, embedded).Open("hello.txt")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "from embedded" {
		t.Errorf("content = %q, want %q", data, "from embedded")
	}
}

func TestOverlayFS_LocalWins(t *testing.T) {
	embedded := fstest.MapFS{
		"banner.txt": &fstest.MapFile{Data: []byte("from embedded")},
	}
	localDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(localDir, "banner.txt"), []byte("from disk"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := OverlayFS(localDir, embedded).Open("banner.txt")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "from disk" {
		t.Errorf("content = %q, want local file to win", data)
	}
}

func TestOverlayFS_MissingEverywhere(t *testing.T) {
	overlay := OverlayFS(t.TempDir(), fstest.MapFS{})
	if _, err := overlay.Open("nope.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want fs.ErrNotExist", err)
	}
}
