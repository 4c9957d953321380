// Package rolodex provides embedded runtime resources and an overlay
// filesystem that checks local disk first, falling back to embedded.
package rolodex

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed templates/banner.txt
var rawTemplates embed.FS

// Templates is the embedded templates filesystem with the "templates/" prefix stripped.
var Templates = mustSub(rawTemplates, "templates")

// ErrEmpty indicates a template file exists but contains no content.
var ErrEmpty = errors.New("rolodex: empty template file")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// OverlayFS returns a filesystem that checks localDir on disk first,
// falling back to the embedded filesystem for files not found locally.
func OverlayFS(localDir string, embedded fs.FS) fs.FS {
	return overlayFS{localDir: localDir, embedded: embedded}
}

type overlayFS struct {
	localDir string
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := os.Open(o.localDir + "/" + name)
	if err == nil {
		return f, nil
	}
	return o.embedded.Open(name)
}

// LoadTemplate reads the named text file from fsys.
// The name must be a bare file name, and the file must be non-empty.
// Trailing whitespace is trimmed.
func LoadTemplate(fsys fs.FS, name string) (string, error) {
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("rolodex: invalid template name %q", name)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("rolodex: loading %s: %w", name, err)
	}
	text := strings.TrimRight(string(data), " \t\r\n")
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrEmpty, name)
	}
	return text, nil
}
