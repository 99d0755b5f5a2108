package bst

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	Inorder Order = iota
	Preorder
	Postorder
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const (
	// root without children
	deleteRoot deleteCase = iota
	// childless non-root node
	deleteLeaf
	// no left child, right child spliced into the parent link
	deleteSplice
	// left child present, in-order predecessor value promoted
	deletePromote
)

var (
	ErrNoMoreElements = errors.New("There are no more elements in the iterator")
	// ErrRemoveUnsupported is returned by Iterator.Remove. Elements are
	// removed with Tree.Delete and replaced with Delete followed by Insert.
	ErrRemoveUnsupported = fmt.Errorf("iterator is read-only, use Tree.Delete or Tree.Insert: %w", errors.ErrUnsupported)
)

// Log receives debug records about structural changes. It only reports
// warnings and above unless the level is raised.
var Log = newLogger()

type (
	tree[E any] struct {
		size int
		root *node[E]
		cmp  CompareFunc[E]
	}

	node[E any] struct {
		e     E
		left  *node[E]
		right *node[E]
	}

	Order int

	// Callback is invoked for each visited element. Returning false stops
	// the walk.
	Callback[E any] func(e E) bool

	traverseAction int

	deleteCase int

	// iterator walks a buffer filled once, in preorder, when it was created.
	iterator[E any] struct {
		elems []E
		pos   int
	}
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

func newNode[E any](e E) *node[E] {
	return &node[E]{e: e}
}

func (o Order) String() string {
	switch o {
	case Inorder:
		return "inorder"
	case Preorder:
		return "preorder"
	case Postorder:
		return "postorder"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, error) {
	for _, o := range []Order{Inorder, Preorder, Postorder} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown traversal order %q", s)
}

func (o Order) valid() bool {
	return o == Inorder || o == Preorder || o == Postorder
}

func (c deleteCase) String() string {
	switch c {
	case deleteRoot:
		return "root"
	case deleteLeaf:
		return "leaf"
	case deleteSplice:
		return "splice"
	case deletePromote:
		return "promote"
	}
	return fmt.Sprintf("deleteCase(%d)", int(c))
}
