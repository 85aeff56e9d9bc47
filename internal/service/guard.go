package service

// Authorize is the single ownership check applied before any mutation of
// a post, social account, engagement record or template. It is a pure
// predicate: identity equality, nothing else. A denial always surfaces to
// the caller as a forbidden failure, never a silent no-op.
func Authorize(actingUserID, ownerID int64) error {
	if actingUserID != ownerID {
		return Forbidden()
	}
	return nil
}
