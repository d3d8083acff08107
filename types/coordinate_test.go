package types

import (
	"errors"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Coordinate
		wantErr bool
	}{
		{
			name:  "release version",
			input: "com.x:lib:1.0",
			want:  Coordinate{Group: "com.x", Artifact: "lib", Version: "1.0"},
		},
		{
			name:  "snapshot version",
			input: "org.example.core:my-lib:2.1-SNAPSHOT",
			want:  Coordinate{Group: "org.example.core", Artifact: "my-lib", Version: "2.1-SNAPSHOT"},
		},
		{name: "missing version", input: "com.x:lib", wantErr: true},
		{name: "too many segments", input: "com.x:lib:1.0:jar", wantErr: true},
		{name: "empty segment", input: "com.x::1.0", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCoordinate_Snapshot(t *testing.T) {
	snap := Coordinate{Group: "com.x", Artifact: "lib", Version: "1.0-SNAPSHOT"}
	if !snap.IsSnapshot() {
		t.Error("1.0-SNAPSHOT should be a snapshot")
	}
	if got := snap.VersionPrefix(); got != "1.0" {
		t.Errorf("VersionPrefix = %q, want %q", got, "1.0")
	}

	rel := Coordinate{Group: "com.x", Artifact: "lib", Version: "1.0"}
	if rel.IsSnapshot() {
		t.Error("1.0 should not be a snapshot")
	}
	if got := rel.VersionPrefix(); got != "1.0" {
		t.Errorf("VersionPrefix = %q, want %q", got, "1.0")
	}
}

func TestCoordinate_String(t *testing.T) {
	c := Coordinate{Group: "com.x", Artifact: "lib", Version: "1.0"}
	if got := c.String(); got != "com.x:lib:1.0" {
		t.Errorf("String = %q", got)
	}
}

func TestTypedErrors_SentinelMatching(t *testing.T) {
	nf := &ArtifactNotFoundError{Coordinate: "com.x:lib:1.0", Path: "/repo/com/x/lib/1.0/lib-1.0.jar"}
	if !errors.Is(nf, ErrArtifactNotFound) {
		t.Error("ArtifactNotFoundError should match ErrArtifactNotFound")
	}
	if errors.Is(nf, ErrCacheWrite) {
		t.Error("ArtifactNotFoundError should not match ErrCacheWrite")
	}

	vd := &VersionDetectionError{Output: "garbage"}
	if !errors.Is(vd, ErrVersionDetection) {
		t.Error("VersionDetectionError should match ErrVersionDetection")
	}

	inner := errors.New("read-only filesystem")
	cw := &CacheWriteError{Dir: "/repo/x", Err: inner}
	if !errors.Is(cw, ErrCacheWrite) {
		t.Error("CacheWriteError should match ErrCacheWrite")
	}
	if !errors.Is(cw, inner) {
		t.Error("CacheWriteError should unwrap to its cause")
	}
}
