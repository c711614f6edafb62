package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderMatchesIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "alpha")
	writeFile(t, filepath.Join(dir, "b.md"), "beta")
	writeFile(t, filepath.Join(dir, "c.bin"), "\x00\x01")
	writeFile(t, filepath.Join(dir, "sub", "d.txt"), "delta")

	loader := NewLoader([]string{"**/*.txt", "**/*.md"}, nil)
	docs, err := loader.Load(dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	got := make(map[string]string, len(docs))
	for _, d := range docs {
		got[d.ID] = d.Text
	}

	want := map[string]string{
		"a.txt": "alpha",
		"b.md":  "beta",
	}
	want[filepath.Join("sub", "d.txt")] = "delta"
	if len(got) != len(want) {
		t.Fatalf("expected %d documents, got %v", len(want), got)
	}
	for id, text := range want {
		if got[id] != text {
			t.Errorf("document %s: got %q, want %q", id, got[id], text)
		}
	}
}

func TestLoaderExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.txt"), "keep")
	writeFile(t, filepath.Join(dir, "drafts", "skip.txt"), "skip")

	loader := NewLoader([]string{"**/*.txt"}, []string{"drafts/**"})
	docs, err := loader.Load(dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(docs) != 1 || docs[0].ID != "keep.txt" {
		t.Errorf("expected only keep.txt, got %+v", docs)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	loader := NewLoader(nil, nil)
	if _, err := loader.Load(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Error("expected error for missing root")
	}
}
