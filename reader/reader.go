package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tsawler/folio/format"
	"github.com/tsawler/folio/model"
)

// Open lists the scan images in dir and returns one page per image file,
// ordered lexicographically by filename. The scan index of each page is its
// position in that listing. Files whose extension is not a recognized image
// format are skipped; pixels are not decoded.
func Open(dir string) ([]*model.Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if format.Detect(e.Name()) == format.Unknown {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	pages := make([]*model.Page, 0, len(names))
	for i, name := range names {
		p := model.NewPage(i, name)
		p.Path = filepath.Join(dir, name)
		pages = append(pages, p)
	}
	return pages, nil
}

// FromFiles builds pages from an explicit file list, preserving the given
// order as the scan order. Unlike Open it does not sort: the caller's order
// is the scanner's order.
func FromFiles(paths []string) ([]*model.Page, error) {
	pages := make([]*model.Page, 0, len(paths))
	for i, path := range paths {
		if format.Detect(path) == format.Unknown {
			return nil, fmt.Errorf("unsupported image format: %s", filepath.Base(path))
		}
		p := model.NewPage(i, filepath.Base(path))
		p.Path = path
		pages = append(pages, p)
	}
	return pages, nil
}
