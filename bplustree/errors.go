package bplus

import "github.com/pkg/errors"

var (
	// ErrInvalidOrder is returned by NewBPlusTree when the order is below MinOrder.
	ErrInvalidOrder = errors.New("bplus: invalid order")

	// ErrCorrupt marks a violated structural invariant. It always indicates a bug
	// in the tree, never bad input.
	ErrCorrupt = errors.New("bplus: tree invariant violated")
)

func corruptf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorrupt, format, args...)
}
