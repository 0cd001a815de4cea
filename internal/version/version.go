package version

// AppVersion is the levonctl release version. Overridden at build time via
// -ldflags "-X levonctl/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
