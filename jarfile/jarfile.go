// Package jarfile reads entries and class metadata out of jar archives.
package jarfile

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/FangYuan33/easy-code-reader/iox"
)

// ErrEntryNotFound indicates the archive is readable but lacks the
// requested entry.
var ErrEntryNotFound = errors.New("entry not found in archive")

// ClassEntryPath converts a fully qualified class name to its .class entry
// path inside a jar, e.g. "com.x.Foo" -> "com/x/Foo.class".
func ClassEntryPath(className string) string {
	return strings.ReplaceAll(className, ".", "/") + ".class"
}

// SourceEntryPath converts a fully qualified class name to its .java entry
// path inside a sources jar. Nested classes map to their enclosing
// top-level source file: "com.x.Foo$Bar" -> "com/x/Foo.java".
func SourceEntryPath(className string) string {
	name := className
	if i := strings.IndexByte(name, '$'); i >= 0 {
		name = name[:i]
	}
	return strings.ReplaceAll(name, ".", "/") + ".java"
}

// ReadEntry returns the content of one entry from a jar archive.
// A missing entry is reported via ErrEntryNotFound; a malformed archive
// surfaces the zip reader's error. Callers treat both as a miss.
func ReadEntry(jarPath, entryPath string) ([]byte, error) {
	r, err := zip.OpenReader(jarPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", jarPath, err)
	}
	defer iox.DiscardClose(r)

	for _, f := range r.File {
		if f.Name != entryPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s in %s: %w", entryPath, jarPath, err)
		}
		defer iox.DiscardClose(rc)
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read entry %s in %s: %w", entryPath, jarPath, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%s in %s: %w", entryPath, jarPath, ErrEntryNotFound)
}

// ListEntries returns the file entry names in a jar archive, sorted.
// Directory entries are skipped.
func ListEntries(jarPath string) ([]string, error) {
	r, err := zip.OpenReader(jarPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", jarPath, err)
	}
	defer iox.DiscardClose(r)

	var names []string
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names, nil
}
