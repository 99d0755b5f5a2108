package bst

import (
	"github.com/sirupsen/logrus"
)

func (t *tree[E]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[E]) Insert(e E) bool {
	slot, found := find(&t.root, e, t.cmp)
	if found {
		return false
	}
	*slot = newNode(e)
	t.size++
	return true
}

func (t *tree[E]) Contains(e E) bool {
	_, found := find(&t.root, e, t.cmp)
	return found
}

func (t *tree[E]) Delete(e E) bool {
	link, found := find(&t.root, e, t.cmp)
	if !found {
		return false
	}

	var action deleteCase
	curr := *link
	switch {
	case link == &t.root && curr.isLeaf():
		action = deleteRoot
		t.root = nil
	case curr.isLeaf():
		action = deleteLeaf
		*link = nil
	case curr.left == nil:
		action = deleteSplice
		*link = curr.right
	default:
		// the found node keeps its place and takes over the value of its
		// in-order predecessor, which is unlinked instead
		action = deletePromote
		pred := curr.predecessor()
		curr.e = (*pred).e
		*pred = (*pred).left
	}
	t.size--

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"elem": e,
			"case": action,
			"size": t.size,
		}).Debug("deleted element")
	}
	return true
}

func (t *tree[E]) Walk(order Order, fn Callback[E]) {
	if !order.valid() {
		panic("bst: unknown traversal " + order.String())
	}
	t.root.walk(order, fn)
}

func (t *tree[E]) Inorder() []E {
	return t.collect(Inorder)
}

func (t *tree[E]) Preorder() []E {
	return t.collect(Preorder)
}

func (t *tree[E]) Postorder() []E {
	return t.collect(Postorder)
}

func (t *tree[E]) collect(order Order) []E {
	elems := make([]E, 0, t.Size())
	t.Walk(order, func(e E) bool {
		elems = append(elems, e)
		return true
	})
	return elems
}

func (t *tree[E]) Iterator() Iterator[E] {
	return &iterator[E]{
		elems: t.Preorder(),
	}
}

func (it *iterator[E]) HasNext() bool {
	return it != nil && it.pos < len(it.elems)
}

func (it *iterator[E]) Next() (E, error) {
	var zero E
	if !it.HasNext() {
		return zero, ErrNoMoreElements
	}
	e := it.elems[it.pos]
	it.elems[it.pos] = zero
	it.pos++
	return e, nil
}

func (it *iterator[E]) Remove() error {
	return ErrRemoveUnsupported
}
