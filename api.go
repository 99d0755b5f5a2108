package bst

import "golang.org/x/exp/constraints"

// Tree is an unbalanced binary search tree holding unique elements.
// It is not safe for concurrent use.
type Tree[E any] interface {
	Insert(e E) bool
	Delete(e E) bool
	Contains(e E) bool
	Size() int
	Walk(order Order, fn Callback[E])
	Inorder() []E
	Preorder() []E
	Postorder() []E
	Iterator() Iterator[E]
}

// Iterator is a read-only preorder snapshot of a Tree.
type Iterator[E any] interface {
	HasNext() bool
	Next() (E, error)
	// Remove always fails with ErrRemoveUnsupported.
	Remove() error
}

// Comparable is implemented by elements that know their own ordering.
// CompareTo returns a negative number, zero or a positive number when the
// receiver is less than, equal to or greater than other.
type Comparable[E any] interface {
	CompareTo(other E) int
}

// CompareFunc must define a total order over E. A comparator that is not
// consistent leaves the tree shape undefined.
type CompareFunc[E any] func(a, b E) int

// New returns an empty tree ordered by the natural ordering of E.
func New[E constraints.Ordered]() Tree[E] {
	return NewFunc[E](compare[E])
}

// NewComparable returns an empty tree ordered by E.CompareTo.
func NewComparable[E Comparable[E]]() Tree[E] {
	return NewFunc[E](func(a, b E) int {
		return a.CompareTo(b)
	})
}

func NewFunc[E any](cmp CompareFunc[E]) Tree[E] {
	if cmp == nil {
		panic("bst: nil compare func")
	}
	return &tree[E]{cmp: cmp}
}

// compare orders NaN before every other value and equal to itself.
func compare[E constraints.Ordered](a, b E) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func isNaN[E constraints.Ordered](x E) bool {
	return x != x
}
