// Package build carries version information stamped into the relock
// binary at release time.
package build

// Version is the relock release version. Release builds overwrite the
// "dev" default via -ldflags "-X go.trai.ch/relock/internal/build.Version=...".
var Version = "dev"
