// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Timestamps is the audit pair embedded by every persisted entity.
// The persistence layer sets both values on insert and refreshes UpdatedAt on update.
type Timestamps struct {
	CreatedAt time.Time // Timestamp of when the record was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
