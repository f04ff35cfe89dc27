package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// A node in the Tree.
// Index 0 is the nil sentinel; its zero value is meaningful and never written.
type info[S constraints.Unsigned] struct {
	l, r, p S
	bal     int8 // height(r)-height(l); ±2 only inside the rebalancing walks.
}

// base holds every node of a tree. ifs[i] and vs[i] describe the same node.
type base[T any, S constraints.Unsigned] struct {
	root, free S // free is the head of the free list; info[S].l is next.
	ifs        []info[S]
	vs         []T
}

// OverflowError is raised when the index type S can't address another node.
type OverflowError struct {
	Cap uint64
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("Trees: arena is full, index type can address at most %d nodes", e.Cap)
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	ifs := make([]info[S], 1, uint64(hint)+1)
	vs := make([]T, 1, uint64(hint)+1)
	return base[T, S]{ifs: ifs, vs: vs}
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.vs[a] = *new(T)
	u.free = a
}

// popFree index once. Returns 0 when there's no free index.
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[b].l
	return b
}

// alloc a leaf holding v under parent p. Free slots are reused before the arrays grow.
func (u *base[T, S]) alloc(v T, p S) S {
	i := u.popFree()
	if i == 0 {
		if uint64(len(u.ifs)) > uint64(^S(0)) {
			panic(OverflowError{uint64(^S(0))})
		}
		i = S(len(u.ifs))
		u.ifs = append(u.ifs, info[S]{})
		u.vs = append(u.vs, v)
	} else {
		u.vs[i] = v
	}
	u.ifs[i] = info[S]{p: p}
	return i
}

// reset drops every node but keeps the allocated capacity.
func (u *base[T, S]) reset() {
	clear(u.vs)
	u.ifs, u.vs, u.root, u.free = u.ifs[:1], u.vs[:1], 0, 0
	u.ifs[0] = info[S]{}
}

// first is the lowest node under i.
func (u *base[T, S]) first(i S) S {
	for i != 0 && u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

// last is the highest node under i.
func (u *base[T, S]) last(i S) S {
	for i != 0 && u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// next in-order node after i, 0 when i is the last one.
func (u *base[T, S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.first(r)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].r == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// prev in-order node before i, 0 when i is the first one.
func (u *base[T, S]) prev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.last(l)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].l == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// slotOf tells which child link of its parent points at i. The root reports left.
func (u *base[T, S]) slotOf(i S) field {
	if p := u.ifs[i].p; p != 0 && u.ifs[p].r == i {
		return right
	}
	return left
}

// replace the link that points at old with nu, fixing nu's parent.
func (u *base[T, S]) replace(old, nu S) {
	p := u.ifs[old].p
	if nu != 0 {
		u.ifs[nu].p = p
	}
	switch {
	case p == 0:
		u.root = nu
	case u.ifs[p].l == old:
		u.ifs[p].l = nu
	default:
		u.ifs[p].r = nu
	}
}
