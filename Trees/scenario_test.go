package Trees

import (
	"bytes"
	"strings"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/exp/constraints"
)

func collect[T any, S constraints.Unsigned](tree *Tree[T, S]) (s []T) {
	for c := tree.Begin(); c.HasNext(); {
		v, err := c.Next()
		if err != nil {
			panic(err)
		}
		s = append(s, v)
	}
	return
}

func scenarioA(t *testing.T) *Tree[int, uint8] {
	t.Helper()
	tree := NewOrdered[int, uint8]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		got, err := tree.Insert(v)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	return tree
}

func TestScenarioA(t *testing.T) {
	tree := scenarioA(t)
	assert.EqualValues(t, 7, tree.Size())
	lo, ok := tree.Minimum()
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := tree.Maximum()
	assert.True(t, ok)
	assert.Equal(t, 9, hi)
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, collect(tree))
	assert.Equal(t, [][]int{{5}, {3, 8}, {1, 4, 7, 9}}, tree.Levels())
	require.NoError(t, tree.Check())
}

func TestScenarioB(t *testing.T) {
	tree := scenarioA(t)
	v, err := tree.Remove(5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.EqualValues(t, 6, tree.Size())
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, collect(tree))
	assert.False(t, tree.Has(5))
	require.NoError(t, tree.Check())
}

func TestScenarioC(t *testing.T) {
	tree := scenarioA(t)
	_, err := tree.Insert(5)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.EqualValues(t, 7, tree.Size())
	require.NoError(t, tree.Check())
}

func TestScenarioD(t *testing.T) {
	tree := NewOrdered[int, uint16]()
	for i := 1; i <= 1000; i++ {
		_, err := tree.Insert(i)
		require.NoError(t, err)
	}
	require.NoError(t, tree.Check())
	assert.LessOrEqual(t, float64(tree.Height()), heightBound(tree.Size()))
	for i := 1; i <= 1000; i += 2 {
		_, err := tree.Remove(i)
		require.NoError(t, err)
	}
	require.NoError(t, tree.Check())
	assert.LessOrEqual(t, float64(tree.Height()), heightBound(tree.Size()))
	lo, _ := tree.Minimum()
	hi, _ := tree.Maximum()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 1000, hi)
}

func TestNew(t *testing.T) {
	_, err := New[int, uint32](nil)
	assert.ErrorIs(t, err, ErrNilComparator)
	_, err = New[int, uint32](Comparator[int](nil))
	assert.ErrorIs(t, err, ErrNilComparator)

	tree, err := New[string, uint32](Comparator[string](utils.StringComparator))
	require.NoError(t, err)
	for _, s := range strings.Fields("pear apple fig banana cherry") {
		_, err = tree.Insert(s)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"apple", "banana", "cherry", "fig", "pear"}, collect(tree))
}

func TestEmpty(t *testing.T) {
	tree := NewOrdered[int, uint32]()
	_, ok := tree.Minimum()
	assert.False(t, ok)
	_, ok = tree.Maximum()
	assert.False(t, ok)
	_, ok = tree.Root()
	assert.False(t, ok)
	assert.Zero(t, tree.Height())
	assert.Empty(t, tree.Levels())
	_, err := tree.Remove(1)
	assert.ErrorIs(t, err, ErrNotFound)
	found, err := tree.Search(1)
	assert.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, tree.Check())
}

func TestClear(t *testing.T) {
	tree := scenarioA(t)
	tree.Clear()
	assert.Zero(t, tree.Size())
	_, ok := tree.Minimum()
	assert.False(t, ok)
	require.NoError(t, tree.Check())
	tree.Clear()
	assert.Zero(t, tree.Size())
	require.NoError(t, tree.Check())

	for _, v := range []int{2, 1, 3} {
		_, err := tree.Insert(v)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{1, 2, 3}, collect(tree))
	assert.Len(t, tree.ifs, 4)
}

func TestNilValue(t *testing.T) {
	tree, err := New[*int, uint32](func(a, b *int) int {
		return *a - *b
	})
	require.NoError(t, err)
	_, err = tree.Insert(nil)
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = tree.Remove(nil)
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = tree.Search(nil)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.False(t, tree.Has(nil))

	one := 1
	_, err = tree.Insert(&one)
	require.NoError(t, err)
	two := 1
	got, err := tree.Remove(&two)
	require.NoError(t, err)
	assert.Same(t, &one, got)
}

func TestDrop(t *testing.T) {
	tree := scenarioA(t)
	tree.Drop()
	_, err := tree.Insert(1)
	assert.ErrorIs(t, err, ErrInvalidTree)
	_, err = tree.Remove(1)
	assert.ErrorIs(t, err, ErrInvalidTree)
	_, err = tree.Search(1)
	assert.ErrorIs(t, err, ErrInvalidTree)
	assert.ErrorIs(t, tree.Check(), ErrInvalidTree)
	assert.ErrorIs(t, tree.Fprint(&bytes.Buffer{}), ErrInvalidTree)
	assert.Zero(t, tree.Size())
	tree.Clear()
	tree.Drop()

	var none *Tree[int, uint32]
	_, err = none.Insert(1)
	assert.ErrorIs(t, err, ErrInvalidTree)
	assert.Zero(t, none.Size())
	_, ok := none.Minimum()
	assert.False(t, ok)
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tree := NewOrdered[int, uint32](WithLogger(zap.New(core)))
	tree.Insert(1)
	tree.Insert(1)
	tree.Remove(2)
	c := tree.Begin()
	tree.Insert(2)
	_, err := c.Next()
	assert.ErrorIs(t, err, ErrStaleCursor)
	tree.Drop()
	tree.Insert(3)

	assert.Equal(t, 1, logs.FilterMessage("duplicate value rejected").Len())
	assert.Equal(t, 1, logs.FilterMessage("value to remove not found").Len())
	assert.Equal(t, 1, logs.FilterMessage("stale cursor used").Len())
	dropped := logs.FilterMessage("use of dropped tree").All()
	require.Len(t, dropped, 1)
	assert.Equal(t, "insert", dropped[0].ContextMap()["op"])
}
