// Package repository is the storage boundary. Each entity gets an interface
// the service layer consumes plus a GORM implementation. Finds report
// absence explicitly through a bool instead of a nil-vs-found convention,
// and every cascade runs inside a single transaction.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// notFound collapses gorm's sentinel into the explicit-absence convention.
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
