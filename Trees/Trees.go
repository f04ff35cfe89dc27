package Trees

// OrderedSet represents a set of unique values kept in order by a tree like structure.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value and shouldn't be used.
// Methods with an error return report misuse (ErrInvalidTree, ErrInvalidValue)
// separately from expected negative outcomes (ErrDuplicate, ErrNotFound).
type OrderedSet[T any] interface {
	//Insert v, returning it. Never replaces an equal value.
	Insert(v T) (T, error)
	//Remove v, returning the value that was stored.
	Remove(v T) (T, error)
	//Search for v.
	Search(v T) (bool, error)
	//Has is Search without the error.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//Clear the tree.
	Clear()
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	InOrder() func() (T, bool)
	//Range over the values in ascending order until f returns false.
	Range(f func(T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}

var _ OrderedSet[int] = (*Tree[int, uint32])(nil)
