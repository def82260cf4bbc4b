package domain

// CompatibilityEnvironment is the per-user wine prefix state produced by the
// compatibility provisioner. The zero value with Enabled=false is the
// explicit no-op result for native binaries: callers branch on Enabled so
// the absence of a compatibility layer is a deliberate, auditable state.
type CompatibilityEnvironment struct {
	// User owns the prefix.
	User string
	// Prefix is the compatibility root directory (WINEPREFIX).
	Prefix string
	// Initialized reports whether the one-time prefix initialization ran
	// (now or on a previous provisioning pass).
	Initialized bool
	// Enabled is false for the explicit no-op returned for native binaries
	// and for offline-mode provisioning of foreign binaries.
	Enabled bool
	// Offline marks a foreign binary whose layer setup was skipped because
	// provisioning ran offline. The record stays distinguishable from a
	// native binary that never needed a layer.
	Offline bool
}

// Layer returns the compatibility-layer tag for the audit record.
func (e CompatibilityEnvironment) Layer() string {
	switch {
	case e.Enabled && e.Initialized:
		return "wine"
	case e.Enabled:
		return "wine (uninitialized)"
	case e.Offline:
		return "none (offline)"
	default:
		return "none"
	}
}
