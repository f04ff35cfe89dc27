package Trees

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Cursor is a position in the in-order sequence of a Tree. The zero Cursor is exhausted.
// A Cursor is bound to the tree version it was taken at: after any Insert, Remove or Clear on the
// tree, stepping or reading it fails with ErrStaleCursor. Re-acquire cursors after modifications.
type Cursor[T any, S constraints.Unsigned] struct {
	t   *Tree[T, S]
	at  S
	ver uint64
}

func (u *Tree[T, S]) cursor(at S) Cursor[T, S] {
	return Cursor[T, S]{u, at, u.ver}
}

// Begin returns a Cursor at the minimum.
func (u *Tree[T, S]) Begin() Cursor[T, S] {
	if u == nil {
		return Cursor[T, S]{}
	}
	return u.cursor(u.min)
}

// End returns a Cursor at the maximum.
func (u *Tree[T, S]) End() Cursor[T, S] {
	if u == nil {
		return Cursor[T, S]{}
	}
	return u.cursor(u.max)
}

// HasNext is true if Next can return a value.
func (c *Cursor[T, S]) HasNext() bool {
	return c.at != 0
}

// HasPrev is true if Prev can return a value.
func (c *Cursor[T, S]) HasPrev() bool {
	return c.at != 0
}

// Stale is true if the tree changed since c was taken.
func (c *Cursor[T, S]) Stale() bool {
	return c.t != nil && c.t.ver != c.ver
}

func (c *Cursor[T, S]) check() error {
	if c.Stale() {
		c.t.note(zap.WarnLevel, "stale cursor used")
		return ErrStaleCursor
	}
	if c.at == 0 {
		return ErrExhausted
	}
	return nil
}

// Value under the cursor.
func (c *Cursor[T, S]) Value() (T, error) {
	if err := c.check(); err != nil {
		return *new(T), err
	}
	return c.t.vs[c.at], nil
}

// Next returns the value under the cursor and moves it to the next greater value.
func (c *Cursor[T, S]) Next() (T, error) {
	if err := c.check(); err != nil {
		return *new(T), err
	}
	v := c.t.vs[c.at]
	c.at = c.t.next(c.at)
	return v, nil
}

// Prev returns the value under the cursor and moves it to the next smaller value.
func (c *Cursor[T, S]) Prev() (T, error) {
	if err := c.check(); err != nil {
		return *new(T), err
	}
	v := c.t.vs[c.at]
	c.at = c.t.prev(c.at)
	return v, nil
}

// InOrder returns a closure f acting like an iterator over the values in ascending order.
// val, valid = f(); val is meaningful only if valid is true, and valid stays false once it turned
// false. The tree mustn't be modified during the iteration; f stops when it is.
func (u *Tree[T, S]) InOrder() func() (T, bool) {
	c := u.Begin()
	return func() (T, bool) {
		v, err := c.Next()
		if err != nil {
			c.at = 0
			return v, false
		}
		return v, true
	}
}

// Range calls f on the values in ascending order until f returns false.
func (u *Tree[T, S]) Range(f func(T) bool) {
	if u == nil || u.cmp == nil {
		return
	}
	for curI := u.min; curI != 0; curI = u.next(curI) {
		if !f(u.vs[curI]) {
			return
		}
	}
}

// Reverse calls f on the values in descending order until f returns false.
func (u *Tree[T, S]) Reverse(f func(T) bool) {
	if u == nil || u.cmp == nil {
		return
	}
	for curI := u.max; curI != 0; curI = u.prev(curI) {
		if !f(u.vs[curI]) {
			return
		}
	}
}
