package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/FangYuan33/easy-code-reader/types"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"json lowercase", "json", FormatJSON, false},
		{"json uppercase", "JSON", FormatJSON, false},
		{"table", "table", FormatTable, false},
		{"yaml", "yaml", FormatYAML, false},
		{"empty", "", "", false},
		{"invalid", "xml", "", true},
		{"invalid with message", "csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat_InvalidErrorMessage(t *testing.T) {
	_, err := ParseFormat("xml")
	if err == nil {
		t.Fatal("expected error for invalid format")
	}
	if !strings.Contains(err.Error(), "json, table, or yaml") {
		t.Errorf("error message should mention valid formats, got: %v", err)
	}
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithWriter(FormatJSON, &buf)

	data := &types.ExtractResult{
		Strategy:   types.StrategyCache,
		Coordinate: "com.x:lib:1.0",
		ClassName:  "com.x.Foo",
		Code:       "public class Foo {}\n",
	}
	if err := r.Render(data); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, `"strategy": "cache"`) {
		t.Errorf("JSON output missing strategy tag: %s", got)
	}
	if !strings.Contains(got, `"coordinate": "com.x:lib:1.0"`) {
		t.Errorf("JSON output missing coordinate: %s", got)
	}
}

func TestRenderer_YAML(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithWriter(FormatYAML, &buf)

	data := map[string]string{"strategy": "sources-jar"}
	if err := r.Render(data); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "strategy:") || !strings.Contains(got, "sources-jar") {
		t.Errorf("YAML output missing expected content: %s", got)
	}
}

func TestRenderer_Table_Struct(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithWriter(FormatTable, &buf)

	data := types.BytecodeStub{
		ClassName:    "com.x.Foo",
		MajorVersion: 65,
		JavaVersion:  "21",
		Jar:          "lib-1.0.jar",
	}
	if err := r.Render(data); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "class_name:") || !strings.Contains(got, "com.x.Foo") {
		t.Errorf("Table output missing class name: %s", got)
	}
	if !strings.Contains(got, "java_version:") || !strings.Contains(got, "21") {
		t.Errorf("Table output missing java version: %s", got)
	}
}

func TestRenderer_Table_Slice(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithWriter(FormatTable, &buf)

	data := []types.Coordinate{
		{Group: "com.x", Artifact: "lib", Version: "1.0"},
		{Group: "com.x", Artifact: "util", Version: "2.1"},
	}

	if err := r.Render(data); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	got := buf.String()
	// Should have header row
	if !strings.Contains(got, "group") || !strings.Contains(got, "artifact") {
		t.Errorf("Table output missing headers: %s", got)
	}
	// Should have data rows
	if !strings.Contains(got, "lib") || !strings.Contains(got, "util") {
		t.Errorf("Table output missing data: %s", got)
	}
}

func TestRenderer_Table_EmptySlice(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithWriter(FormatTable, &buf)

	data := []types.Coordinate{}
	if err := r.Render(data); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "(no results)") {
		t.Errorf("Empty slice should show '(no results)', got: %s", got)
	}
}
