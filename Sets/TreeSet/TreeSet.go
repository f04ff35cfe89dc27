package TreeSet

import (
	"github.com/g-m-twostay/go-avl/Sets"
	"github.com/g-m-twostay/go-avl/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered Set backed by a Trees.Tree. Range visits elements in ascending order.
// Like the tree, it isn't safe for concurrent use.
type TreeSet[E any, S constraints.Unsigned] struct {
	t   *Trees.Tree[E, S]
	cmp func(E, E) int
}

var _ Sets.ExtendedSet[int] = (*TreeSet[int, uint32])(nil)

// New TreeSet ordered by cmp. See Trees.New.
func New[E any, S constraints.Unsigned](cmp func(E, E) int, opts ...Trees.Option) (*TreeSet[E, S], error) {
	t, err := Trees.New[E, S](cmp, opts...)
	if err != nil {
		return nil, err
	}
	return &TreeSet[E, S]{t, cmp}, nil
}

// Tree backing the set.
func (u *TreeSet[E, S]) Tree() *Trees.Tree[E, S] {
	return u.t
}

// Put e, false if it's already there.
func (u *TreeSet[E, S]) Put(e E) bool {
	_, err := u.t.Insert(e)
	return err == nil
}

func (u *TreeSet[E, S]) Has(e E) bool {
	return u.t.Has(e)
}

// Remove e, false if it isn't there.
func (u *TreeSet[E, S]) Remove(e E) bool {
	_, err := u.t.Remove(e)
	return err == nil
}

func (u *TreeSet[E, S]) Size() uint {
	return u.t.Size()
}

// Take removes and returns the element at the root, the zero value if the set is empty.
func (u *TreeSet[E, S]) Take() E {
	e, ok := u.t.Root()
	if !ok {
		return e
	}
	e, _ = u.t.Remove(e)
	return e
}

// Drain takes elements until the set is empty, calling f on each.
func (u *TreeSet[E, S]) Drain(f func(E)) {
	for u.t.Size() > 0 {
		f(u.Take())
	}
}

func (u *TreeSet[E, S]) Range(f func(E) bool) {
	u.t.Range(f)
}

// PutAll elements of s, returning how many were added.
func (u *TreeSet[E, S]) PutAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

// RemoveAll elements of s, returning how many were removed.
func (u *TreeSet[E, S]) RemoveAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Eq is true if both sets hold the same elements.
func (u *TreeSet[E, S]) Eq(s Sets.Set[E]) bool {
	if u.Size() != s.Size() {
		return false
	}
	eq := true
	u.Range(func(e E) bool {
		eq = s.Has(e)
		return eq
	})
	return eq
}

func (u *TreeSet[E, S]) Union(s Sets.Set[E]) {
	u.PutAll(s)
}

// Intersect keeps only the elements also in s.
func (u *TreeSet[E, S]) Intersect(s Sets.Set[E]) {
	var gone []E
	u.Range(func(e E) bool {
		if !s.Has(e) {
			gone = append(gone, e)
		}
		return true
	})
	for _, e := range gone {
		u.Remove(e)
	}
}

// Filter returns a new TreeSet with the elements for which f is true.
func (u *TreeSet[E, S]) Filter(f func(E) bool) Sets.ExtendedSet[E] {
	r, _ := New[E, S](u.cmp, Trees.WithHint(uint64(u.Size())))
	u.Range(func(e E) bool {
		if f(e) {
			r.Put(e)
		}
		return true
	})
	return r
}
