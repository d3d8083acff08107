package types

// Version is the canonical project version.
// The CLI and the cache manifest format share this version; a manifest
// written by one release is readable by any later one.
const Version = "0.3.0"
