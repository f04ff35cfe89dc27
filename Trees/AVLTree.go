package Trees

import (
	"cmp"
	"reflect"

	"github.com/emirpasic/gods/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree holding unique values ordered by a comparison function.
// Nodes live in an arena indexed by S, so S must be wide enough to address the largest number of
// nodes the tree will ever hold at once; exceeding it panics with OverflowError.
// The minimum and maximum nodes are cached, so Minimum and Maximum are O(1); Insert, Remove and
// Search are O(log n).
// A Tree isn't safe for concurrent use; guard it with a mutex when it's shared.
type Tree[T any, S constraints.Unsigned] struct {
	base[T, S]
	min, max, sz S
	ver          uint64 // bumped on every structural change, see Cursor.
	cmp          func(T, T) int
	nilable      bool
	log          *zap.Logger
}

type options struct {
	hint uint64
	log  *zap.Logger
}

// Option configures a Tree in New.
type Option func(*options)

// WithHint preallocates room for n values.
func WithHint(n uint64) Option {
	return func(o *options) {
		o.hint = n
	}
}

// WithLogger sets the logger reporting misuse and rejected operations. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// New empty tree ordered by cmp, which returns a negative number if first < second, 0 if
// first == second, and a positive number if first > second. See cmp.Compare for an example.
func New[T any, S constraints.Unsigned](cmp func(T, T) int, opts ...Option) (*Tree[T, S], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[T, S]{
		base:    makeBase[T](S(min(o.hint, uint64(^S(0))))),
		cmp:     cmp,
		nilable: nilable[T](),
		log:     o.log,
	}, nil
}

// NewOrdered is New using cmp.Compare.
func NewOrdered[T cmp.Ordered, S constraints.Unsigned](opts ...Option) *Tree[T, S] {
	u, _ := New[T, S](cmp.Compare[T], opts...)
	return u
}

// Comparator adapts a gods comparator to the typed form taken by New.
func Comparator[T any](c utils.Comparator) func(T, T) int {
	if c == nil {
		return nil
	}
	return func(a, b T) int {
		return c(a, b)
	}
}

func nilable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return true
	}
	return false
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func (u *Tree[T, S]) note(lvl zapcore.Level, msg string, fs ...zap.Field) {
	if u.log == nil {
		return
	}
	if ce := u.log.Check(lvl, msg); ce != nil {
		ce.Write(append(fs, zap.Uint("size", uint(u.sz)))...)
	}
}

// valid reports why u can't serve op with v, if it can't.
func (u *Tree[T, S]) valid(op string, v T) error {
	if u == nil {
		return ErrInvalidTree
	}
	if u.cmp == nil {
		u.note(zap.WarnLevel, "use of dropped tree", zap.String("op", op))
		return ErrInvalidTree
	}
	if u.nilable && isNil(v) {
		u.note(zap.WarnLevel, "nil value rejected", zap.String("op", op))
		return ErrInvalidValue
	}
	return nil
}

// find the node equal to v, 0 if there's none.
func (u *Tree[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if c := u.cmp(v, u.vs[curI]); c < 0 {
			curI = u.ifs[curI].l
		} else if c > 0 {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// Insert v into the tree and return it. If an equal value is already stored, nothing changes and
// ErrDuplicate is returned; Insert never replaces a stored value.
func (u *Tree[T, S]) Insert(v T) (T, error) {
	if err := u.valid("insert", v); err != nil {
		return *new(T), err
	}
	var p S
	c := 0
	for curI := u.root; curI != 0; {
		if c = u.cmp(v, u.vs[curI]); c < 0 {
			p, curI = curI, u.ifs[curI].l
		} else if c > 0 {
			p, curI = curI, u.ifs[curI].r
		} else {
			u.note(zap.DebugLevel, "duplicate value rejected", zap.Any("value", v))
			return *new(T), ErrDuplicate
		}
	}
	n := u.alloc(v, p)
	switch {
	case p == 0:
		u.root, u.min, u.max = n, n, n
	case c < 0:
		u.ifs[p].l = n
		if p == u.min {
			u.min = n
		}
	default:
		u.ifs[p].r = n
		if p == u.max {
			u.max = n
		}
	}
	u.sz++
	u.ver++
	u.grown(n)
	return v, nil
}

// Remove the value equal to v and return the stored one. ErrNotFound if there's none.
func (u *Tree[T, S]) Remove(v T) (T, error) {
	if err := u.valid("remove", v); err != nil {
		return *new(T), err
	}
	n := u.find(v)
	if n == 0 {
		u.note(zap.DebugLevel, "value to remove not found", zap.Any("value", v))
		return *new(T), ErrNotFound
	}
	out := u.vs[n]
	u.unlink(n)
	u.addFree(n)
	u.sz--
	u.ver++
	return out, nil
}

// unlink n from the tree and rebalance. n's slot is left untouched.
func (u *Tree[T, S]) unlink(n S) {
	if n == u.min {
		u.min = u.next(n)
	}
	if n == u.max {
		u.max = u.prev(n)
	}
	nd := u.ifs[n]
	switch {
	case nd.l == 0 || nd.r == 0:
		c := nd.l
		if c == 0 {
			c = nd.r
		}
		d := int8(1)
		if nd.p != 0 && u.ifs[nd.p].r == n {
			d = -1
		}
		u.replace(n, c)
		u.shrunk(nd.p, d)
	case u.ifs[nd.r].l == 0: // the successor is n's right child.
		s := nd.r
		u.ifs[s].l, u.ifs[s].bal = nd.l, nd.bal
		u.ifs[nd.l].p = s
		u.replace(n, s)
		u.shrunk(s, -1)
	default:
		s := u.first(nd.r)
		sp, sr := u.ifs[s].p, u.ifs[s].r
		u.ifs[sp].l = sr
		if sr != 0 {
			u.ifs[sr].p = sp
		}
		u.ifs[s].l, u.ifs[s].r, u.ifs[s].bal = nd.l, nd.r, nd.bal
		u.ifs[nd.l].p, u.ifs[nd.r].p = s, s
		u.replace(n, s)
		u.shrunk(sp, 1)
	}
}

// Search for a value equal to v.
func (u *Tree[T, S]) Search(v T) (bool, error) {
	if err := u.valid("search", v); err != nil {
		return false, err
	}
	return u.find(v) != 0, nil
}

// Has a value equal to v. Invalid trees and values have nothing.
func (u *Tree[T, S]) Has(v T) bool {
	found, _ := u.Search(v)
	return found
}

// Size of the tree.
func (u *Tree[T, S]) Size() uint {
	if u == nil {
		return 0
	}
	return uint(u.sz)
}

// Minimum element of the tree.
func (u *Tree[T, S]) Minimum() (T, bool) {
	if u == nil || u.min == 0 {
		return *new(T), false
	}
	return u.vs[u.min], true
}

// Maximum element of the tree.
func (u *Tree[T, S]) Maximum() (T, bool) {
	if u == nil || u.max == 0 {
		return *new(T), false
	}
	return u.vs[u.max], true
}

// Predecessor returns the greatest element less than v.
func (u *Tree[T, S]) Predecessor(v T) (T, bool) {
	if u.valid("predecessor", v) != nil {
		return *new(T), false
	}
	var p S
	for curI := u.root; curI != 0; {
		if u.cmp(v, u.vs[curI]) <= 0 {
			curI = u.ifs[curI].l
		} else {
			p, curI = curI, u.ifs[curI].r
		}
	}
	return u.vs[p], p != 0
}

// Successor returns the smallest element greater than v.
func (u *Tree[T, S]) Successor(v T) (T, bool) {
	if u.valid("successor", v) != nil {
		return *new(T), false
	}
	var p S
	for curI := u.root; curI != 0; {
		if u.cmp(v, u.vs[curI]) < 0 {
			p, curI = curI, u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return u.vs[p], p != 0
}

// Clear removes every value, keeping the allocated memory. The values themselves are untouched
// apart from no longer being referenced by the tree. O(n).
func (u *Tree[T, S]) Clear() {
	if u == nil || u.cmp == nil {
		return
	}
	if u.sz != 0 {
		u.ver++
	}
	u.reset()
	u.min, u.max, u.sz = 0, 0, 0
}

// Drop clears the tree and releases its memory. Every later call on it fails with ErrInvalidTree.
func (u *Tree[T, S]) Drop() {
	if u == nil {
		return
	}
	u.Clear()
	u.base = base[T, S]{}
	u.cmp = nil
	u.ver++
}

// Root returns the value at the root of the tree.
func (u *Tree[T, S]) Root() (T, bool) {
	if u == nil || u.root == 0 {
		return *new(T), false
	}
	return u.vs[u.root], true
}
