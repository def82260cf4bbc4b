package domain

import "time"

// ProvisionRecord is the audit record for one provisioning pass: which
// binary was classified as what, whether a compatibility layer was set up
// or explicitly skipped, and the digests of the rendered session artifacts.
type ProvisionRecord struct {
	Binary             string    `json:"binary,omitzero"`
	Platform           string    `json:"platform,omitzero"`
	CompatibilityLayer string    `json:"compatibility_layer,omitzero"`
	ModesetDigest      string    `json:"modeset_digest,omitzero"`
	AutostartDigest    string    `json:"autostart_digest,omitzero"`
	Timestamp          time.Time `json:"timestamp,omitzero"`
}
