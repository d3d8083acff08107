package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/FangYuan33/easy-code-reader/jarfile"
	"github.com/FangYuan33/easy-code-reader/types"
)

// bytecodeStub builds class metadata straight from the .class entry
// inside the binary jar. It never fails: when the entry is missing or
// malformed the stub simply carries no version information.
func (x *Extractor) bytecodeStub(paths types.ResolvedPaths, className string) *types.BytecodeStub {
	stub := &types.BytecodeStub{
		ClassName: className,
		Jar:       filepath.Base(paths.EffectiveJar),
	}
	data, err := jarfile.ReadEntry(paths.EffectiveJar, jarfile.ClassEntryPath(className))
	if err != nil {
		return stub
	}
	info, err := jarfile.ParseClassHeader(data)
	if err != nil {
		return stub
	}
	stub.MajorVersion = info.MajorVersion
	stub.MinorVersion = info.MinorVersion
	stub.JavaVersion = jarfile.JavaVersion(info.MajorVersion)
	stub.SizeBytes = info.SizeBytes
	return stub
}

// RenderStub formats bytecode metadata as a readable Java placeholder
// so editors expecting .java content can still display it.
func RenderStub(stub *types.BytecodeStub) string {
	simple := stub.ClassName
	if idx := strings.LastIndex(simple, "."); idx >= 0 {
		simple = simple[idx+1:]
	}

	var b strings.Builder
	b.WriteString("/*\n")
	b.WriteString(" * Decompilation unavailable. Bytecode metadata follows.\n")
	b.WriteString(" *\n")
	fmt.Fprintf(&b, " * Class: %s\n", stub.ClassName)
	if stub.Jar != "" {
		fmt.Fprintf(&b, " * Jar:   %s\n", stub.Jar)
	}
	if stub.MajorVersion > 0 {
		fmt.Fprintf(&b, " * Class file version: %d.%d\n", stub.MajorVersion, stub.MinorVersion)
	}
	if stub.JavaVersion != "" {
		fmt.Fprintf(&b, " * Compiled for: Java %s\n", stub.JavaVersion)
	}
	if stub.SizeBytes > 0 {
		fmt.Fprintf(&b, " * Size: %d bytes\n", stub.SizeBytes)
	}
	b.WriteString(" */\n")
	fmt.Fprintf(&b, "public class %s {\n", simple)
	b.WriteString("    // Source unavailable. Install CFR or Procyon to decompile this class.\n")
	b.WriteString("}\n")
	return b.String()
}
