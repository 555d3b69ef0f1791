package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound marks mutations that target an identifier absent from the
// store, so handlers can answer 404 instead of a generic failure.
var ErrNotFound = errors.New("record not found")

// wrapStoreErr tags a store failure with the operation that attempted it.
// gorm's no-rows condition is translated to ErrNotFound; everything else is
// propagated unmodified under the operation name, never retried.
func wrapStoreErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
