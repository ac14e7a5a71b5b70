package views

import "errors"

// Error taxonomy for the pipeline and engagement operations. Handlers map
// these onto HTTP statuses; everything else surfaces as an internal error.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("conflict")
)

// RequireOwner guards mutations: only the owning user may update or delete
// a record, regardless of payload validity.
func RequireOwner(ownerID, actorID uint) error {
	if ownerID != actorID {
		return ErrPermissionDenied
	}
	return nil
}
