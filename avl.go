package grove

import (
	"cmp"
	"iter"
)

// treeNode is a single node of the AVL tree. A node exclusively owns its
// children; there are no parent pointers and no sharing. height caches the
// subtree height: a leaf is 1, a nil subtree counts as 0.
type treeNode[K cmp.Ordered, V any] struct {
	key    K
	value  V
	left   *treeNode[K, V]
	right  *treeNode[K, V]
	height int
}

func (n *treeNode[K, V]) h() int {
	if n == nil {
		return 0
	}
	return n.height
}

// balanceFactor is height(left) - height(right); the AVL invariant keeps it
// in {-1, 0, 1} after every public operation.
func (n *treeNode[K, V]) balanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.h() - n.right.h()
}

func (n *treeNode[K, V]) resetHeight() {
	n.height = 1 + max(n.left.h(), n.right.h())
}

// rotateRight promotes n's left child into n's position and returns it.
// Heights are recomputed child-first so both settle on their new subtrees.
func (n *treeNode[K, V]) rotateRight() *treeNode[K, V] {
	x := n.left
	n.left = x.right
	x.right = n

	n.resetHeight()
	x.resetHeight()
	return x
}

func (n *treeNode[K, V]) rotateLeft() *treeNode[K, V] {
	y := n.right
	n.right = y.left
	y.left = n

	n.resetHeight()
	y.resetHeight()
	return y
}

// rebalance restores the AVL invariant at n after a structural change in one
// of its subtrees, assuming both subtrees are themselves balanced. It returns
// the node that takes n's place.
func (n *treeNode[K, V]) rebalance() *treeNode[K, V] {
	switch factor := n.balanceFactor(); {
	case factor > 1:
		if n.left.balanceFactor() < 0 {
			// left-right case
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()
	case factor < -1:
		if n.right.balanceFactor() > 0 {
			// right-left case
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	}
	return n
}

// min returns the leftmost node of n's subtree, the in-order successor used
// during two-children removal. n must not be nil.
func (n *treeNode[K, V]) min() *treeNode[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Tree is a self-balancing (AVL) binary search tree mapping totally-ordered
// keys to values. The zero value from NewTree is an empty tree ready to use.
//
// Keys compare byte-wise for strings, so ordering is case-sensitive.
type Tree[K cmp.Ordered, V any] struct {
	root *treeNode[K, V]
	size int
}

// NewTree creates an empty tree.
func NewTree[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of keys stored.
func (t *Tree[K, V]) Len() int { return t.size }

// Insert adds a key-value pair. Inserting a key that is already present
// returns ErrKeyExists and leaves the tree untouched.
func (t *Tree[K, V]) Insert(key K, value V) error {
	root, inserted := insertNode(t.root, key, value)
	if !inserted {
		return ErrKeyExists
	}
	t.root = root
	t.size++
	return nil
}

// insertNode descends to the insertion point, then recomputes heights and
// rebalances on the way back up. The returned node replaces n in its parent,
// which is how rotations propagate through the recursion.
func insertNode[K cmp.Ordered, V any](n *treeNode[K, V], key K, value V) (*treeNode[K, V], bool) {
	if n == nil {
		return &treeNode[K, V]{key: key, value: value, height: 1}, true
	}

	var inserted bool
	switch {
	case key < n.key:
		if n.left, inserted = insertNode(n.left, key, value); !inserted {
			return n, false
		}
	case key > n.key:
		if n.right, inserted = insertNode(n.right, key, value); !inserted {
			return n, false
		}
	default:
		return n, false
	}

	n.resetHeight()
	return n.rebalance(), true
}

// Search returns the value stored under key, or ErrKeyNotFound.
func (t *Tree[K, V]) Search(key K) (V, error) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, nil
		}
	}

	var zero V
	return zero, ErrKeyNotFound
}

// Remove deletes the node stored under key, rebalancing every ancestor on
// the way back up. Removing an absent key returns ErrKeyNotFound and leaves
// the tree untouched.
func (t *Tree[K, V]) Remove(key K) error {
	root, removed := removeNode(t.root, key)
	if !removed {
		return ErrKeyNotFound
	}
	t.root = root
	t.size--
	return nil
}

func removeNode[K cmp.Ordered, V any](n *treeNode[K, V], key K) (*treeNode[K, V], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case key < n.key:
		if n.left, removed = removeNode(n.left, key); !removed {
			return n, false
		}
	case key > n.key:
		if n.right, removed = removeNode(n.right, key); !removed {
			return n, false
		}
	default:
		next, ok := spliceNode(n)
		if !ok {
			return next, true
		}
		n = next
	}

	n.resetHeight()
	return n.rebalance(), true
}

// spliceNode detaches n from the tree. With at most one child the child (or
// nil) takes n's place; with two children the in-order successor's key and
// value are copied into n and the successor is removed by key from the right
// subtree, which is guaranteed to hit the one-child case. The boolean is
// false when the replacement is nil and needs no rebalance.
func spliceNode[K cmp.Ordered, V any](n *treeNode[K, V]) (*treeNode[K, V], bool) {
	if n.left == nil || n.right == nil {
		child := n.left
		if child == nil {
			child = n.right
		}
		return child, child != nil
	}

	succ := n.right.min()
	n.key, n.value = succ.key, succ.value
	n.right, _ = removeNode(n.right, succ.key)
	return n, true
}

// RemoveFunc deletes every node whose key-value pair satisfies match and
// returns how many were removed. Unlike Remove it cannot prune by key
// comparison, since match usually inspects fields independent of the
// ordering key, so it visits the whole tree post-order and reassembles the
// balanced subtrees bottom-up. O(n).
func (t *Tree[K, V]) RemoveFunc(match func(key K, value V) bool) int {
	root, removed := removeFuncNode(t.root, match)
	t.root = root
	t.size -= removed
	return removed
}

func removeFuncNode[K cmp.Ordered, V any](n *treeNode[K, V], match func(K, V) bool) (*treeNode[K, V], int) {
	if n == nil {
		return nil, 0
	}

	var fromLeft, fromRight int
	n.left, fromLeft = removeFuncNode(n.left, match)
	n.right, fromRight = removeFuncNode(n.right, match)
	removed := fromLeft + fromRight

	if match(n.key, n.value) {
		removed++
		next, ok := spliceNode(n)
		if !ok {
			return next, removed
		}
		n = next
	}

	n.resetHeight()
	return n.rebalance(), removed
}

// Ascend yields all key-value pairs in ascending key order. The sequence is
// lazy and restartable; the tree must not be mutated while ranging.
func (t *Tree[K, V]) Ascend() iter.Seq2[K, V] {
	return t.AscendFunc(nil)
}

// AscendFunc is Ascend restricted to pairs satisfying match; a nil match
// yields everything.
func (t *Tree[K, V]) AscendFunc(match func(key K, value V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.root.ascend(match, yield)
	}
}

func (n *treeNode[K, V]) ascend(match func(K, V) bool, yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !n.left.ascend(match, yield) {
		return false
	}
	if match == nil || match(n.key, n.value) {
		if !yield(n.key, n.value) {
			return false
		}
	}
	return n.right.ascend(match, yield)
}
