package Trees

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape map[uint8][2]uint8

// hand builds a tree from explicit links. vs[i-1] is the value at index i. Balances are derived
// from real heights, so they may be ±2.
func hand(t *testing.T, root uint8, vs []int, links shape) *Tree[int, uint8] {
	t.Helper()
	u := &Tree[int, uint8]{cmp: cmp.Compare[int], sz: uint8(len(vs))}
	u.ifs = make([]info[uint8], len(vs)+1)
	u.vs = append([]int{0}, vs...)
	u.root = root
	var height func(i, p uint8) int8
	height = func(i, p uint8) int8 {
		if i == 0 {
			return 0
		}
		u.ifs[i].p = p
		u.ifs[i].l, u.ifs[i].r = links[i][0], links[i][1]
		lh, rh := height(u.ifs[i].l, i), height(u.ifs[i].r, i)
		u.ifs[i].bal = rh - lh
		return 1 + max(lh, rh)
	}
	height(root, 0)
	u.min, u.max = u.first(root), u.last(root)
	return u
}

func bals(u *Tree[int, uint8]) map[int]int8 {
	m := make(map[int]int8)
	for i := 1; i < len(u.ifs); i++ {
		m[u.vs[i]] = u.ifs[i].bal
	}
	return m
}

func TestRotateLeft(t *testing.T) {
	// 10 -> 20 -> 30
	u := hand(t, 1, []int{10, 20, 30}, shape{1: {0, 2}, 2: {0, 3}})
	top, same := u.restore(1)
	assert.Equal(t, uint8(2), top)
	assert.False(t, same)
	assert.Equal(t, uint8(2), u.root)
	assert.Equal(t, map[int]int8{10: 0, 20: 0, 30: 0}, bals(u))
	assert.Equal(t, info[uint8]{}, u.ifs[0])
	require.NoError(t, u.check())
}

func TestRotateRight(t *testing.T) {
	u := hand(t, 1, []int{30, 20, 10}, shape{1: {2, 0}, 2: {3, 0}})
	top, same := u.restore(1)
	assert.Equal(t, uint8(2), top)
	assert.False(t, same)
	assert.Equal(t, []int{10, 20, 30}, collect(u))
	assert.Equal(t, map[int]int8{10: 0, 20: 0, 30: 0}, bals(u))
	require.NoError(t, u.check())
}

func TestRotateKeepsHeight(t *testing.T) {
	//        0
	//      /   \
	//   -10     10
	//   /         \
	// -20          30
	//             /  \
	//           20    40
	u := hand(t, 1, []int{0, -10, -20, 10, 30, 20, 40},
		shape{1: {2, 4}, 2: {3, 0}, 4: {0, 5}, 5: {6, 7}})
	require.Equal(t, int8(2), u.ifs[4].bal)
	top, same := u.restore(4)
	assert.Equal(t, uint8(5), top)
	assert.True(t, same)
	assert.Equal(t, uint8(5), u.ifs[1].r)
	assert.Equal(t, uint8(1), u.ifs[5].p)
	assert.Equal(t, int8(1), bals(u)[10])
	assert.Equal(t, int8(-1), bals(u)[30])
	require.NoError(t, u.check())

	r := rotateRight(snap[uint8]{1, info[uint8]{l: 2, bal: -2}}, snap[uint8]{2, info[uint8]{p: 1, l: 3, r: 4}}, left)
	assert.True(t, r.same)
	for _, e := range r.edits() {
		if e.f == balance && e.at == 1 {
			assert.Equal(t, int8(-1), e.bal)
		}
		if e.f == balance && e.at == 2 {
			assert.Equal(t, int8(1), e.bal)
		}
	}
}

func TestRotateRightLeft(t *testing.T) {
	cases := []struct {
		name  string
		vs    []int
		links shape
		want  map[int]int8
	}{
		{"leaf", []int{10, 30, 20}, shape{1: {0, 2}, 2: {3, 0}},
			map[int]int8{10: 0, 20: 0, 30: 0}},
		{"heavy right", []int{10, 5, 30, 20, 25, 40}, shape{1: {2, 3}, 3: {4, 6}, 4: {0, 5}},
			map[int]int8{5: 0, 10: -1, 20: 0, 25: 0, 30: 0, 40: 0}},
		{"heavy left", []int{10, 5, 30, 20, 15, 40}, shape{1: {2, 3}, 3: {4, 6}, 4: {5, 0}},
			map[int]int8{5: 0, 10: 0, 15: 0, 20: 0, 30: 1, 40: 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			u := hand(t, 1, c.vs, c.links)
			require.Equal(t, int8(2), u.ifs[1].bal)
			top, same := u.restore(1)
			assert.Equal(t, 20, u.vs[top])
			assert.False(t, same)
			assert.Equal(t, top, u.root)
			assert.Equal(t, c.want, bals(u))
			require.NoError(t, u.check())
		})
	}
}

func TestRotateLeftRight(t *testing.T) {
	cases := []struct {
		name  string
		vs    []int
		links shape
		want  map[int]int8
	}{
		{"leaf", []int{30, 10, 20}, shape{1: {2, 0}, 2: {0, 3}},
			map[int]int8{10: 0, 20: 0, 30: 0}},
		{"heavy right", []int{30, 40, 10, 20, 25, 5}, shape{1: {3, 2}, 3: {6, 4}, 4: {0, 5}},
			map[int]int8{5: 0, 10: -1, 20: 0, 25: 0, 30: 0, 40: 0}},
		{"heavy left", []int{30, 40, 10, 20, 15, 5}, shape{1: {3, 2}, 3: {6, 4}, 4: {5, 0}},
			map[int]int8{5: 0, 10: 0, 15: 0, 20: 0, 30: 1, 40: 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			u := hand(t, 1, c.vs, c.links)
			require.Equal(t, int8(-2), u.ifs[1].bal)
			top, same := u.restore(1)
			assert.Equal(t, 20, u.vs[top])
			assert.False(t, same)
			assert.Equal(t, top, u.root)
			assert.Equal(t, c.want, bals(u))
			require.NoError(t, u.check())
		})
	}
}

func TestApply(t *testing.T) {
	u := hand(t, 1, []int{1, 2}, shape{1: {0, 2}})
	var r rotation[uint8]
	r.link(0, right, 2)
	r.link(2, parent, 0)
	r.link(2, left, 1)
	r.link(1, parent, 2)
	r.link(1, right, 0)
	r.link(0, parent, 1)
	r.setBal(1, 0)
	r.setBal(2, -1)
	u.apply(&r)
	assert.Equal(t, uint8(2), u.root)
	assert.Equal(t, info[uint8]{}, u.ifs[0])
	assert.Equal(t, info[uint8]{l: 1, bal: -1}, u.ifs[2])
	assert.Equal(t, info[uint8]{p: 2}, u.ifs[1])
	require.NoError(t, u.check())
}
