package Trees

import (
	"fmt"
	"io"

	Go_AVL "github.com/g-m-twostay/go-avl"
	"github.com/g-m-twostay/go-avl/Queues"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Check the whole tree: ordering, balance factors against real heights, parent links, the cached
// minimum and maximum, the size, and that every arena slot is either live or free exactly once.
// Violations are wrapped in ErrCorrupt. O(n).
func (u *Tree[T, S]) Check() error {
	if u == nil || u.cmp == nil {
		return ErrInvalidTree
	}
	err := u.check()
	if err != nil {
		u.note(zap.ErrorLevel, "corrupt tree", zap.Error(err))
	}
	return err
}

// Corrupt returns whether the tree has corrupt structures.
func (u *Tree[T, S]) Corrupt() bool {
	return u.Check() != nil
}

func (u *Tree[T, S]) check() error {
	if len(u.ifs) != len(u.vs) {
		return fmt.Errorf("%w: %d infos for %d values", ErrCorrupt, len(u.ifs), len(u.vs))
	}
	seen := Go_AVL.NewBitArray(uint(len(u.ifs)))
	seen.Up(0)
	for f := u.free; f != 0; f = u.ifs[f].l {
		if int(f) >= len(u.ifs) || seen.Swap(uint(f)) {
			return fmt.Errorf("%w: free list broken at %d", ErrCorrupt, f)
		}
	}
	free := seen.Count()
	if u.root != 0 && u.ifs[u.root].p != 0 {
		return fmt.Errorf("%w: root %d has parent %d", ErrCorrupt, u.root, u.ifs[u.root].p)
	}
	var walk func(i, p S) (int, error)
	walk = func(i, p S) (int, error) {
		if i == 0 {
			return 0, nil
		}
		if int(i) >= len(u.ifs) || seen.Swap(uint(i)) {
			return 0, fmt.Errorf("%w: node %d under %d is out of range, free, or reached twice", ErrCorrupt, i, p)
		}
		cur := u.ifs[i]
		if cur.p != p {
			return 0, fmt.Errorf("%w: node %d has parent %d, want %d", ErrCorrupt, i, cur.p, p)
		}
		lh, err := walk(cur.l, i)
		if err != nil {
			return 0, err
		}
		rh, err := walk(cur.r, i)
		if err != nil {
			return 0, err
		}
		if d := rh - lh; d != int(cur.bal) || d < -1 || d > 1 {
			return 0, fmt.Errorf("%w: node %d has balance %d, heights %d/%d", ErrCorrupt, i, cur.bal, lh, rh)
		}
		return 1 + max(lh, rh), nil
	}
	if _, err := walk(u.root, 0); err != nil {
		return err
	}
	if live := seen.Count() - free; live != uint(u.sz) {
		return fmt.Errorf("%w: size is %d, %d nodes reachable", ErrCorrupt, u.sz, live)
	}
	if all := seen.Count(); all != uint(len(u.ifs)) {
		return fmt.Errorf("%w: %d slots neither live nor free", ErrCorrupt, uint(len(u.ifs))-all)
	}
	if m := u.first(u.root); m != u.min {
		return fmt.Errorf("%w: cached minimum %d, want %d", ErrCorrupt, u.min, m)
	}
	if m := u.last(u.root); m != u.max {
		return fmt.Errorf("%w: cached maximum %d, want %d", ErrCorrupt, u.max, m)
	}
	for p, i := S(0), u.min; i != 0; p, i = i, u.next(i) {
		if p != 0 && u.cmp(u.vs[p], u.vs[i]) >= 0 {
			return fmt.Errorf("%w: %v at %d isn't less than %v at %d", ErrCorrupt, u.vs[p], p, u.vs[i], i)
		}
	}
	return nil
}

type leveled[S constraints.Unsigned] struct {
	i S
	d int
}

// levels visits the nodes breadth first, calling f with each node and its depth starting at 1.
func (u *Tree[T, S]) levels(f func(i S, d int)) {
	if u == nil || u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[leveled[S]](uint(u.sz/2 + 1))
	for q.Push(leveled[S]{u.root, 1}); !q.Empty(); {
		it, _ := q.Pop()
		f(it.i, it.d)
		if l := u.ifs[it.i].l; l != 0 {
			q.Push(leveled[S]{l, it.d + 1})
		}
		if r := u.ifs[it.i].r; r != 0 {
			q.Push(leveled[S]{r, it.d + 1})
		}
	}
}

// Height of the tree, 0 when it's empty.
func (u *Tree[T, S]) Height() (h int) {
	u.levels(func(_ S, d int) {
		h = max(h, d)
	})
	return
}

// Levels returns the values grouped by depth, the root alone first, each level left to right.
func (u *Tree[T, S]) Levels() (ls [][]T) {
	u.levels(func(i S, d int) {
		if d > len(ls) {
			ls = append(ls, nil)
		}
		ls[d-1] = append(ls[d-1], u.vs[i])
	})
	return
}

// Fprint draws the tree sideways: greater values above, each node followed by its balance.
func (u *Tree[T, S]) Fprint(w io.Writer) error {
	if u == nil || u.cmp == nil {
		return ErrInvalidTree
	}
	return u.fprint(w, u.root, "", 0)
}

// side is -1 for a left child, 1 for a right child and 0 for the root.
func (u *Tree[T, S]) fprint(w io.Writer, i S, prefix string, side int) error {
	if i == 0 {
		return nil
	}
	cur := u.ifs[i]
	t := "       "
	if side < 0 {
		t = "|      "
	}
	if err := u.fprint(w, cur.r, prefix+t, 1); err != nil {
		return err
	}
	edge := "|"
	switch side {
	case -1:
		edge = "\\"
	case 1:
		edge = "/"
	}
	if _, err := fmt.Fprintf(w, "%s%s------+ %v %+d\n", prefix, edge, u.vs[i], cur.bal); err != nil {
		return err
	}
	t = "       "
	if side > 0 {
		t = "|      "
	}
	return u.fprint(w, cur.l, prefix+t, -1)
}
