package domain

import "time"

// BuildInfo records the outcome of the last bundle produced for an export target.
type BuildInfo struct {
	ExportTarget string    `json:"export_target,omitzero"`
	Packages     []string  `json:"packages,omitzero"`
	Digest       string    `json:"digest,omitzero"`
	Timestamp    time.Time `json:"timestamp,omitzero"`
}
