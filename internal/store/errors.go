package store

import (
	"errors"

	"gorm.io/gorm"
)

// Domain error categories. Resolvers and callers test these with
// errors.Is; the boundary layer decides how each category is rendered.
var (
	// ErrNotFound reports that a lookup matched no record.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint reports that the store rejected a write because of a
	// constraint, such as a post referencing a missing author.
	ErrConstraint = errors.New("constraint violated")
)

// constraintViolated reports whether err is a store-level constraint
// failure. Relies on the drivers' error translation, enabled in Open.
func constraintViolated(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated)
}
