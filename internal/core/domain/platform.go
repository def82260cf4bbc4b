package domain

// PlatformVerdict classifies a game binary's executable format relative to
// the host. It is a closed set: a binary that is neither native nor foreign
// must surface as PlatformUnsupported rather than defaulting to either side.
type PlatformVerdict string

const (
	// PlatformNative is an executable in the host's own format (ELF).
	PlatformNative PlatformVerdict = "native"
	// PlatformForeign is an executable that needs a compatibility runtime (Windows PE).
	PlatformForeign PlatformVerdict = "foreign"
	// PlatformUnsupported is a recognized-by-neither format. Terminal: no
	// provisioning step runs after this verdict.
	PlatformUnsupported PlatformVerdict = "unsupported"
)

// String returns the platform tag as recorded in the provision audit record.
func (v PlatformVerdict) String() string {
	return string(v)
}
