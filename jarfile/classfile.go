package jarfile

import (
	"encoding/binary"
	"fmt"
)

// classMagic opens every compiled class file.
const classMagic = 0xCAFEBABE

// ClassFileInfo is the header metadata of a compiled class.
type ClassFileInfo struct {
	MinorVersion int
	MajorVersion int
	SizeBytes    int64
}

// ParseClassHeader reads the magic and version fields from class-file bytes.
func ParseClassHeader(data []byte) (ClassFileInfo, error) {
	if len(data) < 8 {
		return ClassFileInfo{}, fmt.Errorf("class file too short: %d bytes", len(data))
	}
	if magic := binary.BigEndian.Uint32(data[:4]); magic != classMagic {
		return ClassFileInfo{}, fmt.Errorf("bad class file magic %#x", magic)
	}
	return ClassFileInfo{
		MinorVersion: int(binary.BigEndian.Uint16(data[4:6])),
		MajorVersion: int(binary.BigEndian.Uint16(data[6:8])),
		SizeBytes:    int64(len(data)),
	}, nil
}

// javaVersionByMajor maps class-file major versions to Java release names.
// Major 45 is Java 1.1; each later release increments by one.
var javaVersionByMajor = map[int]string{
	45: "1.1", 46: "1.2", 47: "1.3", 48: "1.4", 49: "5",
	50: "6", 51: "7", 52: "8", 53: "9", 54: "10",
	55: "11", 56: "12", 57: "13", 58: "14", 59: "15",
	60: "16", 61: "17", 62: "18", 63: "19", 64: "20",
	65: "21", 66: "22", 67: "23", 68: "24", 69: "25",
}

// JavaVersion returns the Java release name for a class-file major version,
// or "" when the major version is unmapped.
func JavaVersion(major int) string {
	return javaVersionByMajor[major]
}
