package Trees

import "golang.org/x/exp/constraints"

// field of an info overwritten by an edit.
type field uint8

const (
	left field = iota
	right
	parent
	balance
)

// edit is a single write to the arena. A left/right edit at index 0 targets the tree's root link,
// parent edits at index 0 are dropped.
type edit[S constraints.Unsigned] struct {
	at  S
	f   field
	to  S
	bal int8
}

// rotation is the outcome of restructuring a subtree, computed without touching the arena.
type rotation[S constraints.Unsigned] struct {
	top  S    // new root of the subtree.
	same bool // subtree height is the same as before the rotation.
	n    uint8
	eds  [16]edit[S]
}

func (r *rotation[S]) link(at S, f field, to S) {
	r.eds[r.n] = edit[S]{at: at, f: f, to: to}
	r.n++
}

func (r *rotation[S]) setBal(at S, b int8) {
	r.eds[r.n] = edit[S]{at: at, f: balance, bal: b}
	r.n++
}

// edits lists the writes in order.
func (r *rotation[S]) edits() []edit[S] {
	return r.eds[:r.n]
}

// snap is a copy of a node taken before a rotation.
type snap[S constraints.Unsigned] struct {
	i S
	info[S]
}

// rotateLeft x around its right child y. slot is the link of x's parent that holds x.
//
//	  x              y
//	 / \            / \
//	a   y    =>    x   c
//	   / \        / \
//	  b   c      a   b
func rotateLeft[S constraints.Unsigned](x, y snap[S], slot field) (r rotation[S]) {
	r.top = y.i
	r.link(x.i, right, y.l)
	r.link(y.l, parent, x.i)
	r.link(y.i, left, x.i)
	r.link(x.p, slot, y.i)
	r.link(y.i, parent, x.p)
	r.link(x.i, parent, y.i)
	xb := x.bal - 1 - max(y.bal, 0)
	r.setBal(x.i, xb)
	r.setBal(y.i, y.bal-1+min(xb, 0))
	r.same = y.bal == 0
	return
}

// rotateRight x around its left child y, the mirror of rotateLeft.
func rotateRight[S constraints.Unsigned](x, y snap[S], slot field) (r rotation[S]) {
	r.top = y.i
	r.link(x.i, left, y.r)
	r.link(y.r, parent, x.i)
	r.link(y.i, right, x.i)
	r.link(x.p, slot, y.i)
	r.link(y.i, parent, x.p)
	r.link(x.i, parent, y.i)
	xb := x.bal + 1 - min(y.bal, 0)
	r.setBal(x.i, xb)
	r.setBal(y.i, y.bal+1+max(xb, 0))
	r.same = y.bal == 0
	return
}

// rotateRightLeft lifts z, the left child of x's right child y, to the top.
//
//	  x                z
//	 / \             /   \
//	a   y           x     y
//	   / \    =>   / \   / \
//	  z   d       a   b c   d
//	 / \
//	b   c
func rotateRightLeft[S constraints.Unsigned](x, y, z snap[S], slot field) (r rotation[S]) {
	r.top = z.i
	r.link(x.i, right, z.l)
	r.link(z.l, parent, x.i)
	r.link(y.i, left, z.r)
	r.link(z.r, parent, y.i)
	r.link(z.i, left, x.i)
	r.link(z.i, right, y.i)
	r.link(x.p, slot, z.i)
	r.link(z.i, parent, x.p)
	r.link(x.i, parent, z.i)
	r.link(y.i, parent, z.i)
	var xb, yb int8
	switch z.bal {
	case 1:
		xb = -1
	case -1:
		yb = 1
	}
	r.setBal(x.i, xb)
	r.setBal(y.i, yb)
	r.setBal(z.i, 0)
	return
}

// rotateLeftRight lifts z, the right child of x's left child y, to the top. Mirror of rotateRightLeft.
func rotateLeftRight[S constraints.Unsigned](x, y, z snap[S], slot field) (r rotation[S]) {
	r.top = z.i
	r.link(x.i, left, z.r)
	r.link(z.r, parent, x.i)
	r.link(y.i, right, z.l)
	r.link(z.l, parent, y.i)
	r.link(z.i, right, x.i)
	r.link(z.i, left, y.i)
	r.link(x.p, slot, z.i)
	r.link(z.i, parent, x.p)
	r.link(x.i, parent, z.i)
	r.link(y.i, parent, z.i)
	var xb, yb int8
	switch z.bal {
	case -1:
		xb = 1
	case 1:
		yb = -1
	}
	r.setBal(x.i, xb)
	r.setBal(y.i, yb)
	r.setBal(z.i, 0)
	return
}

func (u *base[T, S]) snap(i S) snap[S] {
	return snap[S]{i, u.ifs[i]}
}

// apply the edits of r to the arena.
func (u *base[T, S]) apply(r *rotation[S]) {
	for _, e := range r.edits() {
		switch e.f {
		case left:
			if e.at == 0 {
				u.root = e.to
			} else {
				u.ifs[e.at].l = e.to
			}
		case right:
			if e.at == 0 {
				u.root = e.to
			} else {
				u.ifs[e.at].r = e.to
			}
		case parent:
			if e.at != 0 {
				u.ifs[e.at].p = e.to
			}
		case balance:
			u.ifs[e.at].bal = e.bal
		}
	}
}

// restore the AVL property at x, whose balance is ±2. Returns the new subtree root and whether
// the subtree kept its height.
func (u *base[T, S]) restore(x S) (S, bool) {
	var r rotation[S]
	xs, slot := u.snap(x), u.slotOf(x)
	if xs.bal < 0 {
		if y := u.snap(xs.l); y.bal <= 0 {
			r = rotateRight(xs, y, slot)
		} else {
			r = rotateLeftRight(xs, y, u.snap(y.r), slot)
		}
	} else {
		if y := u.snap(xs.r); y.bal >= 0 {
			r = rotateLeft(xs, y, slot)
		} else {
			r = rotateRightLeft(xs, y, u.snap(y.l), slot)
		}
	}
	u.apply(&r)
	return r.top, r.same
}

// grown walks up from c, whose subtree just got taller, until the height change is absorbed.
func (u *base[T, S]) grown(c S) {
	for p := u.ifs[c].p; p != 0; c, p = p, u.ifs[p].p {
		if u.ifs[p].l == c {
			u.ifs[p].bal--
		} else {
			u.ifs[p].bal++
		}
		switch u.ifs[p].bal {
		case 0:
			return
		case 1, -1:
		default:
			u.restore(p)
			return
		}
	}
}

// shrunk walks up from p, whose subtree on one side lost a level. d is +1 when the left side
// shrank and -1 when the right side did.
func (u *base[T, S]) shrunk(p S, d int8) {
	for p != 0 {
		u.ifs[p].bal += d
		top := p
		switch u.ifs[p].bal {
		case 1, -1:
			return
		case 0:
		default:
			var same bool
			if top, same = u.restore(p); same {
				return
			}
		}
		if p = u.ifs[top].p; p != 0 {
			if u.ifs[p].l == top {
				d = 1
			} else {
				d = -1
			}
		}
	}
}
