package main

import (
	"encoding/binary"
	"math/rand"

	"github.com/alphadose/haxmap"
	"github.com/cespare/xxhash"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/go-avl/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// container is the common surface measured for every implementation.
type container interface {
	insert(k int)
	has(k int) bool
	remove(k int)
}

type contender struct {
	name    string
	ordered bool // hash maps only take part in the query workload.
	make    func(n int) container
}

var contenders = []contender{
	{"avl", true, func(n int) container { return &avlC{Trees.NewOrdered[int, uint32](Trees.WithHint(uint64(n)))} }},
	{"gods-avltree", true, func(int) container { return godsC{avltree.NewWith(utils.IntComparator)} }},
	{"google-btree", true, func(int) container { return btreeC{btree.NewOrderedG[int](32)} }},
	{"gollrb", true, func(int) container { return llrbC{llrb.New()} }},
	{"haxmap", false, func(n int) container { return haxC{haxmap.New[int, struct{}](uintptr(n))} }},
	{"cornelk-hashmap", false, func(int) container { return hashC{hashmap.New[int, struct{}]()} }},
}

type avlC struct {
	t *Trees.Tree[int, uint32]
}

func (c *avlC) insert(k int) { c.t.Insert(k) }
func (c *avlC) has(k int) bool { return c.t.Has(k) }
func (c *avlC) remove(k int) { c.t.Remove(k) }

type godsC struct {
	t *avltree.Tree
}

func (c godsC) insert(k int) { c.t.Put(k, struct{}{}) }
func (c godsC) has(k int) bool {
	_, found := c.t.Get(k)
	return found
}
func (c godsC) remove(k int) { c.t.Remove(k) }

type btreeC struct {
	t *btree.BTreeG[int]
}

func (c btreeC) insert(k int) { c.t.ReplaceOrInsert(k) }
func (c btreeC) has(k int) bool { return c.t.Has(k) }
func (c btreeC) remove(k int) { c.t.Delete(k) }

type llrbC struct {
	t *llrb.LLRB
}

func (c llrbC) insert(k int) { c.t.ReplaceOrInsert(llrb.Int(k)) }
func (c llrbC) has(k int) bool { return c.t.Has(llrb.Int(k)) }
func (c llrbC) remove(k int) { c.t.Delete(llrb.Int(k)) }

type haxC struct {
	m *haxmap.Map[int, struct{}]
}

func (c haxC) insert(k int) { c.m.Set(k, struct{}{}) }
func (c haxC) has(k int) bool {
	_, ok := c.m.Get(k)
	return ok
}
func (c haxC) remove(k int) { c.m.Del(k) }

type hashC struct {
	m *hashmap.Map[int, struct{}]
}

func (c hashC) insert(k int) { c.m.Set(k, struct{}{}) }
func (c hashC) has(k int) bool {
	_, ok := c.m.Get(k)
	return ok
}
func (c hashC) remove(k int) { c.m.Del(k) }

// keys for a workload of n insertions, following the configured distribution.
func keys(cfg *Config, n int) []int {
	ks := make([]int, n)
	switch cfg.Keys {
	case KeysAscending:
		for i := range ks {
			ks[i] = i
		}
	case KeysRandom:
		r := rand.New(rand.NewSource(cfg.Seed))
		for i := range ks {
			ks[i] = r.Int()
		}
	case KeysScrambled:
		var b [16]byte
		binary.LittleEndian.PutUint64(b[:8], uint64(cfg.Seed))
		for i := range ks {
			binary.LittleEndian.PutUint64(b[8:], uint64(i))
			ks[i] = int(xxhash.Sum64(b[:]) >> 1)
		}
	}
	return ks
}
