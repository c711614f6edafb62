package fs

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"studyrag/internal/domain"
)

// Loader finds extracted-text documents under a root directory, filtered by
// doublestar include/exclude glob patterns, and reads them as raw text for
// bulk rebuilds. The source identifier is the path relative to the root.
type Loader struct {
	includes []string
	excludes []string
}

func NewLoader(includes, excludes []string) *Loader {
	if len(includes) == 0 {
		includes = []string{"**/*.txt"}
	}
	return &Loader{includes: includes, excludes: excludes}
}

// Load walks root and returns one SourceDocument per matching file.
// Unreadable files are skipped via the onError callback rather than
// aborting the whole walk.
func (l *Loader) Load(root string, onError func(path string, err error)) ([]domain.SourceDocument, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var docs []domain.SourceDocument

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if l.matches(l.excludes, rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if !l.matches(l.includes, rel) || l.matches(l.excludes, rel) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if onError != nil {
				onError(path, err)
			}
			return nil
		}

		docs = append(docs, domain.SourceDocument{ID: rel, Text: string(data)})
		return nil
	})

	return docs, err
}

func (l *Loader) matches(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
