// Package util provides small helpers shared by the bedgrid commands.
package util

import (
	"math/big"

	"github.com/google/uuid"
)

// uidRoot is the DICOM root for UUID-derived UIDs (PS3.5 B.2).
const uidRoot = "2.25."

// NewUID returns a DICOM UID derived from a random UUID.
func NewUID() string {
	return UIDFromUUID(uuid.New())
}

// UIDFromUUID converts u to its "2.25.<decimal>" UID form.
func UIDFromUUID(u uuid.UUID) string {
	return uidRoot + new(big.Int).SetBytes(u[:]).String()
}
