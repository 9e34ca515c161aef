package storage

import "errors"

// ErrNotFound is returned when no plan matches the requested id or filter.
var ErrNotFound = errors.New("storage: plan not found")
