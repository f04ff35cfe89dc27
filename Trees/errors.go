package Trees

import "errors"

var (
	// ErrNilComparator is returned by New when no comparison function is given.
	ErrNilComparator = errors.New("Trees: nil comparator")
	// ErrInvalidTree is returned when a method is called on a nil or dropped Tree.
	ErrInvalidTree = errors.New("Trees: nil or dropped tree")
	// ErrInvalidValue is returned for nil values of a nilable element type.
	ErrInvalidValue = errors.New("Trees: nil value")
	// ErrDuplicate is returned by Insert when an equal value is already stored. It is an expected
	// outcome, not a failure of the tree.
	ErrDuplicate = errors.New("Trees: value already in tree")
	// ErrNotFound is returned by Remove when no equal value is stored.
	ErrNotFound = errors.New("Trees: value not in tree")
	// ErrStaleCursor is returned when a Cursor is used after the tree was modified.
	ErrStaleCursor = errors.New("Trees: cursor used after tree modification")
	// ErrExhausted is returned when stepping a Cursor that isn't on a node.
	ErrExhausted = errors.New("Trees: cursor exhausted")
	// ErrCorrupt wraps every violation reported by Check.
	ErrCorrupt = errors.New("Trees: corrupt tree")
)
