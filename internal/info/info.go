package info

import "runtime/debug"

var (
	// Version is the webgate version, normally set with ldflags at build time.
	Version = ""
)

func init() {
	if Version != "" {
		return
	}

	// Fall back to the module version embedded by the Go toolchain.
	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
		return
	}

	Version = "dev"
}
