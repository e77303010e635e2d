package auth

import "inkwell/app/apperr"

// Owned is any resource that records a single owning user.
type Owned interface {
	OwnerID() int
}

// Authorize allows the action iff the acting identity owns the resource.
// It is consulted before every mutating operation on posts and comments;
// reads and creation never pass through it. The returned message must not
// reveal who the real owner is.
func Authorize(id Identity, resource Owned) error {
	if id.UserID != resource.OwnerID() {
		return apperr.Forbidden("you cannot modify someone else's record")
	}
	return nil
}
