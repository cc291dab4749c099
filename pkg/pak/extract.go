package pak

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/quaketools/pak/pkg/paths"
)

// Extract writes the entry's data under destDir and returns the path
// written. With nested true the entry name's slash-separated structure
// is recreated as real directories ("maps/e1m1.bsp" lands in
// destDir/maps/); with nested false only the base name is used and the
// file lands directly in destDir. Either way the target must resolve
// inside destDir.
func (e *Entry) Extract(destDir string, nested bool) (string, error) {
	name := paths.CleanEntryName(e.Name)
	if err := paths.ValidateEntryName(name); err != nil {
		return "", fmt.Errorf("extract %q: %w", e.Name, err)
	}

	var target string
	if nested {
		target = filepath.Join(destDir, filepath.FromSlash(name))
		if !paths.IsWithinDir(destDir, target) {
			return "", fmt.Errorf(
				"extract %q: target escapes %s", e.Name, destDir,
			)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return "", fmt.Errorf("create directories: %w", err)
		}
	} else {
		target = filepath.Join(destDir, path.Base(name))
	}

	if err := os.WriteFile(target, e.Data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	return target, nil
}

// ExtractAll extracts every entry under destDir and returns the number
// written. It stops at the first failure.
func (a *Archive) ExtractAll(destDir string, nested bool) (int, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return 0, fmt.Errorf("create dir: %w", err)
	}
	count := 0
	for _, e := range a.Entries {
		if _, err := e.Extract(destDir, nested); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
