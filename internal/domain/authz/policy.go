// Package authz holds the pure authorization policy. Decisions depend only on
// the caller's identity and the already-fetched resource; nothing here ever
// touches storage. Services fetch first and consult policy second, so a
// caller without visibility into a resource sees not-found rather than
// forbidden.
package authz

import "github.com/google/uuid"

// Actor is the validated identity a request acts as. It is derived from
// token claims before any service method runs.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

// CanModifyListing permits the listing owner and admins
func CanModifyListing(actor Actor, ownerID uuid.UUID) bool {
	return actor.IsAdmin || actor.ID == ownerID
}

// CanModifyReview permits the review author and admins
func CanModifyReview(actor Actor, authorID uuid.UUID) bool {
	return actor.IsAdmin || actor.ID == authorID
}

// CanModifyAccount permits the account itself and admins
func CanModifyAccount(actor Actor, targetID uuid.UUID) bool {
	return actor.IsAdmin || actor.ID == targetID
}

// RequiresAdmin permits admins only
func RequiresAdmin(actor Actor) bool {
	return actor.IsAdmin
}
