package store

import (
	"errors"

	"gorm.io/gorm"
)

// Failure classes the handlers translate into HTTP statuses. Store functions
// return these (or wrap them) so callers never have to inspect driver errors.
var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrInvalidRequest = errors.New("invalid request")
	ErrConstraint     = errors.New("constraint violation")
	ErrNoRowsUpdated  = errors.New("no rows updated")
)

// DateLayout is the wire format for every date in the API.
const DateLayout = "2006-01-02"

func translateWrite(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrConstraint
	}

	return err
}
