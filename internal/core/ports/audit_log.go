package ports

import "github.com/mianwali/crop-advisory/internal/core/domain"

// AuditLog is a bounded, append-only history of actions.
type AuditLog interface {
	Append(entry domain.AuditEntry)
	// Snapshot returns the retained entries, oldest first.
	Snapshot() []domain.AuditEntry
	Len() int
}
