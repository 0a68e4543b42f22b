// internal/version/version.go
package version

// Version is the release version, overridable at build time with
// -ldflags "-X hgtjoin/internal/version.Version=...".
var Version = "0.1.0"
