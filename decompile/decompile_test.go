package decompile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/FangYuan33/easy-code-reader/types"
)

// chdir changes the working directory for the test, restoring it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestClassifyStderr(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   Kind
	}{
		{
			name:   "cfr unsupported major",
			stderr: "Exception in thread \"main\" java.lang.IllegalStateException: Unsupported class file major version 69",
			want:   KindUnsupportedBytecode,
		},
		{
			name:   "jvm refuses class file",
			stderr: "java.lang.UnsupportedClassVersionError: Foo has been compiled by a more recent version of the Java Runtime (class file version 69.0)",
			want:   KindUnsupportedBytecode,
		},
		{
			name:   "legacy major.minor message",
			stderr: "unsupported major.minor version 65.0",
			want:   KindUnsupportedBytecode,
		},
		{
			name:   "unrelated crash",
			stderr: "java.lang.OutOfMemoryError: Java heap space",
			want:   KindExitStatus,
		},
		{name: "empty stderr", stderr: "", want: KindExitStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyStderr(tt.stderr); got != tt.want {
				t.Errorf("classifyStderr = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDecompileError_Message(t *testing.T) {
	err := &DecompileError{
		Engine: types.EngineCFR,
		Kind:   KindExitStatus,
		Stderr: "first line of stderr\nsecond line",
	}
	msg := err.Error()
	if !strings.Contains(msg, "cfr") || !strings.Contains(msg, "non-zero-exit") {
		t.Errorf("message missing engine or kind: %s", msg)
	}
	if strings.Contains(msg, "second line") {
		t.Errorf("message should carry only the first stderr line: %s", msg)
	}
}

func TestCollectSources(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "com/x/B.java", "class B {}")
	writeFixture(t, dir, "com/x/A.java", "class A {}")
	writeFixture(t, dir, "summary.txt", "cfr summary")

	files, err := CollectSources(dir)
	if err != nil {
		t.Fatalf("CollectSources: %v", err)
	}
	want := []string{"com/x/A.java", "com/x/B.java"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("files = %v, want %v", files, want)
	}
}

func TestCollectSources_Empty(t *testing.T) {
	files, err := CollectSources(t.TempDir())
	if err != nil {
		t.Fatalf("CollectSources: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("files = %v, want none", files)
	}
}

func TestStubEngine_WritesFixtures(t *testing.T) {
	stub := &StubEngine{
		Engine: types.EngineProcyon,
		Files:  map[string]string{"com/x/Foo.java": "public class Foo {}\n"},
	}
	outDir := t.TempDir()

	files, err := stub.Decompile(context.Background(), "/repo/lib-1.0.jar", outDir)
	if err != nil {
		t.Fatalf("Decompile: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"com/x/Foo.java"}) {
		t.Errorf("files = %v", files)
	}
	data, err := os.ReadFile(filepath.Join(outDir, "com", "x", "Foo.java"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "public class Foo {}\n" {
		t.Errorf("content = %q", data)
	}
	if stub.Invocations() != 1 {
		t.Errorf("invocations = %d", stub.Invocations())
	}
	if got := stub.Jars(); len(got) != 1 || got[0] != "/repo/lib-1.0.jar" {
		t.Errorf("jars = %v", got)
	}
}

func TestStubEngine_Failure(t *testing.T) {
	fail := &DecompileError{Engine: types.EngineCFR, Kind: KindTimeout}
	stub := &StubEngine{Engine: types.EngineCFR, Fail: fail}

	_, err := stub.Decompile(context.Background(), "x.jar", t.TempDir())
	var de *DecompileError
	if !errors.As(err, &de) || de.Kind != KindTimeout {
		t.Fatalf("expected timeout DecompileError, got %v", err)
	}
}

func TestDiscover_ExplicitPaths(t *testing.T) {
	engines := Discover(Options{CFRJar: "/tools/cfr.jar", ProcyonJar: "/tools/procyon.jar"})
	if _, ok := engines[types.EngineCFR]; !ok {
		t.Error("cfr engine missing")
	}
	if _, ok := engines[types.EngineProcyon]; !ok {
		t.Error("procyon engine missing")
	}
}

func TestDiscover_EnvOverride(t *testing.T) {
	t.Setenv(EnvCFRJar, "/env/cfr.jar")
	t.Setenv(EnvProcyonJar, "")

	engines := Discover(Options{})
	cfr, ok := engines[types.EngineCFR].(*CFREngine)
	if !ok {
		t.Fatal("cfr engine missing")
	}
	if cfr.JarPath != "/env/cfr.jar" {
		t.Errorf("JarPath = %s", cfr.JarPath)
	}
}

func TestDiscover_NothingFound(t *testing.T) {
	t.Setenv(EnvCFRJar, "")
	t.Setenv(EnvProcyonJar, "")
	chdir(t, t.TempDir())

	engines := Discover(Options{})
	if len(engines) != 0 {
		t.Errorf("engines = %v, want none", engines)
	}
}

func writeFixture(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
