// Package build holds build-time metadata for the cloister binary.
package build

// Version is the provisioner version. It defaults to "dev" and is
// overwritten by linker flags in release builds.
var Version = "dev"
