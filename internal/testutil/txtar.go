package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"golang.org/x/tools/txtar"
)

// Tree maps slash-separated relative paths to file contents.
type Tree map[string]string

// Project is a host application fixture parsed from a txtar archive.
type Project struct {
	// Description is the archive comment.
	Description string

	// Files is the initial project tree.
	Files Tree
}

// ParseProject parses a txtar archive into a Project.
func ParseProject(data []byte) *Project {
	ar := txtar.Parse(data)
	p := &Project{Description: string(ar.Comment), Files: Tree{}}
	for _, f := range ar.Files {
		p.Files[f.Name] = string(f.Data)
	}
	return p
}

// LoadProject reads a txtar fixture from disk.
func LoadProject(t *testing.T, path string) *Project {
	t.Helper()
	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", path, err)
	}
	return ParseProject(txtar.Format(ar))
}

// Install writes the project files below root on fs.
func (p *Project) Install(t *testing.T, fs afero.Fs, root string) {
	t.Helper()
	for name, content := range p.Files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create parent dirs for %s: %v", path, err)
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}

// Snapshot reads every regular file below root into a Tree.
func Snapshot(t *testing.T, afs afero.Fs, root string) Tree {
	t.Helper()
	tree := Tree{}
	err := afero.Walk(afs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		data, err := afero.ReadFile(afs, path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to snapshot %s: %v", root, err)
	}
	return tree
}

// Paths returns the sorted paths in the tree.
func (tr Tree) Paths() []string {
	paths := make([]string, 0, len(tr))
	for p := range tr {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Archive formats the tree as a txtar archive, useful when a test fails and
// the generated project should be inspected.
func (tr Tree) Archive() string {
	ar := &txtar.Archive{}
	for _, p := range tr.Paths() {
		data := tr[p]
		if !strings.HasSuffix(data, "\n") {
			data += "\n"
		}
		ar.Files = append(ar.Files, txtar.File{Name: p, Data: []byte(data)})
	}
	return string(txtar.Format(ar))
}

// AssertTree fails the test when got differs from want.
func AssertTree(t *testing.T, want, got Tree) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("project tree mismatch (-want +got):\n%s", diff)
	}
}
