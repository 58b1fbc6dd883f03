package shared

import (
	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the query view types.
type UserSnapshot struct {
	ID       uuid.UUID
	Role     string
	IsActive bool
}

type PropertySnapshot struct {
	ID       uuid.UUID
	HostID   uuid.UUID
	IsActive bool
}
