// Package paths validates entry names before they are materialized on
// disk. Pak entry names use forward slashes on every platform; nothing
// in the format stops an archive from carrying "../../etc/passwd", so
// extraction has to.
package paths

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

func ValidateEntryName(name string) error {
	if name == "" {
		return fmt.Errorf("empty entry name")
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("entry name contains null byte")
	}
	if strings.ContainsRune(name, '\\') {
		return fmt.Errorf("entry name contains backslash: %s", name)
	}
	if path.IsAbs(name) {
		return fmt.Errorf("absolute entry name not allowed: %s", name)
	}
	cleaned := path.Clean(name)
	if cleaned == "." {
		return fmt.Errorf("entry name resolves to current directory")
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf(
			"entry name escapes destination: %s", name,
		)
	}
	return nil
}

func CleanEntryName(name string) string {
	name = path.Clean(name)
	name = strings.TrimPrefix(name, "./")
	return name
}

func IsWithinDir(dir, full string) bool {
	rel, err := filepath.Rel(dir, full)
	if err != nil {
		return false
	}
	return rel != ".." &&
		!strings.HasPrefix(rel, "../") &&
		!filepath.IsAbs(rel)
}
