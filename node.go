package bst

// find walks from link towards e. It returns the link that holds the node
// equal to e, or the empty slot where e belongs when found is false.
func find[E any](link **node[E], e E, cmp CompareFunc[E]) (slot **node[E], found bool) {
	for *link != nil {
		c := cmp(e, (*link).e)
		switch {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return link, true
		}
	}
	return link, false
}

// predecessor returns the link holding the rightmost node of n's left
// subtree. n must have a left child.
func (n *node[E]) predecessor() **node[E] {
	link := &n.left
	for (*link).right != nil {
		link = &(*link).right
	}
	return link
}

func (n *node[E]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *node[E]) walk(order Order, callback Callback[E]) traverseAction {
	if n == nil {
		return traverseContinue
	}

	if order == Preorder && !callback(n.e) {
		return traverseStop
	}
	if n.left.walk(order, callback) == traverseStop {
		return traverseStop
	}
	if order == Inorder && !callback(n.e) {
		return traverseStop
	}
	if n.right.walk(order, callback) == traverseStop {
		return traverseStop
	}
	if order == Postorder && !callback(n.e) {
		return traverseStop
	}

	return traverseContinue
}
