package jarfile

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/klauspost/compress/zip"
)

// writeJar creates a jar at path with the given entries.
func writeJar(t *testing.T, path string, entries map[string][]byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create jar: %v", err)
	}
	w := zip.NewWriter(f)
	for name, content := range entries {
		ew, err := w.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := ew.Write(content); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close jar: %v", err)
	}
}

// classBytes builds a minimal class-file header.
func classBytes(major, minor int, padding int) []byte {
	data := make([]byte, 8+padding)
	binary.BigEndian.PutUint32(data[:4], 0xCAFEBABE)
	binary.BigEndian.PutUint16(data[4:6], uint16(minor))
	binary.BigEndian.PutUint16(data[6:8], uint16(major))
	return data
}

func TestEntryPaths(t *testing.T) {
	tests := []struct {
		className string
		classPath string
		srcPath   string
	}{
		{"com.x.Foo", "com/x/Foo.class", "com/x/Foo.java"},
		{"Foo", "Foo.class", "Foo.java"},
		{"com.x.Foo$Bar", "com/x/Foo$Bar.class", "com/x/Foo.java"},
	}
	for _, tt := range tests {
		if got := ClassEntryPath(tt.className); got != tt.classPath {
			t.Errorf("ClassEntryPath(%q) = %q, want %q", tt.className, got, tt.classPath)
		}
		if got := SourceEntryPath(tt.className); got != tt.srcPath {
			t.Errorf("SourceEntryPath(%q) = %q, want %q", tt.className, got, tt.srcPath)
		}
	}
}

func TestReadEntry(t *testing.T) {
	jar := filepath.Join(t.TempDir(), "lib-1.0-sources.jar")
	writeJar(t, jar, map[string][]byte{
		"com/x/Foo.java": []byte("public class Foo {}\n"),
	})

	data, err := ReadEntry(jar, "com/x/Foo.java")
	if err != nil {
		t.Fatalf("ReadEntry: %v", err)
	}
	if string(data) != "public class Foo {}\n" {
		t.Errorf("content = %q", data)
	}
}

func TestReadEntry_Missing(t *testing.T) {
	jar := filepath.Join(t.TempDir(), "lib-1.0.jar")
	writeJar(t, jar, map[string][]byte{"com/x/Foo.class": {0x00}})

	_, err := ReadEntry(jar, "com/x/Bar.class")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestReadEntry_CorruptArchive(t *testing.T) {
	jar := filepath.Join(t.TempDir(), "broken.jar")
	if err := os.WriteFile(jar, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadEntry(jar, "com/x/Foo.java"); err == nil {
		t.Fatal("expected error for corrupt archive")
	}
}

func TestListEntries(t *testing.T) {
	jar := filepath.Join(t.TempDir(), "lib-1.0.jar")
	writeJar(t, jar, map[string][]byte{
		"com/x/B.class":        {0x00},
		"com/x/A.class":        {0x00},
		"META-INF/MANIFEST.MF": []byte("Manifest-Version: 1.0\n"),
	})

	names, err := ListEntries(jar)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	want := []string{"META-INF/MANIFEST.MF", "com/x/A.class", "com/x/B.class"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestParseClassHeader(t *testing.T) {
	info, err := ParseClassHeader(classBytes(65, 0, 100))
	if err != nil {
		t.Fatalf("ParseClassHeader: %v", err)
	}
	if info.MajorVersion != 65 || info.MinorVersion != 0 {
		t.Errorf("version = %d.%d, want 65.0", info.MajorVersion, info.MinorVersion)
	}
	if info.SizeBytes != 108 {
		t.Errorf("size = %d, want 108", info.SizeBytes)
	}
}

func TestParseClassHeader_Invalid(t *testing.T) {
	if _, err := ParseClassHeader([]byte{0xCA, 0xFE}); err == nil {
		t.Error("expected error for truncated data")
	}
	if _, err := ParseClassHeader([]byte("notaclassfile")); err == nil {
		t.Error("expected error for bad magic")
	}
}

func TestJavaVersion(t *testing.T) {
	tests := []struct {
		major int
		want  string
	}{
		{52, "8"},
		{55, "11"},
		{65, "21"},
		{44, ""},
		{200, ""},
	}
	for _, tt := range tests {
		if got := JavaVersion(tt.major); got != tt.want {
			t.Errorf("JavaVersion(%d) = %q, want %q", tt.major, got, tt.want)
		}
	}
}
