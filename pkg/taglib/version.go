package taglib

import "github.com/ebassi/taglib-go/pkg/taglib/internal/backend"

var Version = "v0.0.0-in-progress"

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// NativeAvailable reports whether this binary links TagLib. It is false for
// builds without cgo or with -tags notaglib.
func NativeAvailable() bool {
	return backend.Available()
}
