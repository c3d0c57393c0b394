// Package user defines the AccountUser entity: the identity that owns
// accounts. It is deliberately named AccountUser rather than User to avoid
// clashing with pre-existing user tables in shared databases.
package user

import "time"

// AccountUser is the owner of zero or more accounts.
type AccountUser struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
