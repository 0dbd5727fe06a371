package repository

import "github.com/pkg/errors"

// ErrValueOutOfRange is returned when the store rejects a value as too long or too large for its column.
var ErrValueOutOfRange = errors.New("value out of range for column")
