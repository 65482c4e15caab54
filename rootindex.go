package sarf

import (
	"fmt"
	"strings"
)

// RootIndex is an ordered set of roots, kept in an AVL tree.
//
// A RootIndex is not safe for concurrent mutation.
type RootIndex struct {
	top  *Root
	size int
	lex  *lexicon
}

// NewRootIndex creates an empty index.
func NewRootIndex() *RootIndex {
	return &RootIndex{lex: newLexicon()}
}

// IndexStats summarizes the shape of a RootIndex.
type IndexStats struct {
	Roots       int
	Height      int
	Balanced    bool
	Derivations int // distinct (root, word) pairs
}

// Insert adds root to the index. Surrounding white space is removed. If the
// root is already present, its frequency is incremented instead.
//
// Insert does not check the length of root; this is up to clients.
func (ix *RootIndex) Insert(root string) error {
	root = strings.TrimSpace(root)
	if root == "" {
		return fmt.Errorf("root may not be empty: %w", ErrInvalidArgument)
	}
	ix.top = ix.insert(ix.top, root)
	return nil
}

func (ix *RootIndex) insert(n *Root, key string) *Root {
	if n == nil {
		ix.size++
		return newRoot(key)
	}
	switch {
	case key < n.key:
		n.left = ix.insert(n.left, key)
	case key > n.key:
		n.right = ix.insert(n.right, key)
	default:
		n.frequency++
		return n
	}
	return rebalance(n)
}

// Search finds the node for root. Blank input is never found.
func (ix *RootIndex) Search(root string) (*Root, bool) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, false
	}
	n := ix.top
	for n != nil {
		switch {
		case root < n.key:
			n = n.left
		case root > n.key:
			n = n.right
		default:
			return n, true
		}
	}
	return nil, false
}

// Exists reports whether root has been inserted.
func (ix *RootIndex) Exists(root string) bool {
	_, found := ix.Search(root)
	return found
}

// AddDerivation records word, derived with scheme schemeName, for root.
// It returns false if root is not in the index.
func (ix *RootIndex) AddDerivation(root, word, schemeName string) bool {
	n, found := ix.Search(root)
	if !found {
		return false
	}
	if n.addDerivation(word, schemeName) {
		ix.lex.add(word, n.key)
	}
	return true
}

// Derivations returns the words recorded for root, in recording order.
func (ix *RootIndex) Derivations(root string) []Derivation {
	n, found := ix.Search(root)
	if !found {
		return []Derivation{}
	}
	return n.Derivations()
}

// Roots returns all roots in ascending order.
func (ix *RootIndex) Roots() []string {
	roots := make([]string, 0, ix.size)
	ix.Walk(func(n *Root) bool {
		roots = append(roots, n.key)
		return true
	})
	return roots
}

// Walk calls visit for every node in ascending order, until visit returns false.
func (ix *RootIndex) Walk(visit func(*Root) bool) {
	walk(ix.top, visit)
}

func walk(n *Root, visit func(*Root) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, visit) && visit(n) && walk(n.right, visit)
}

// WordsWithPrefix returns all recorded derived words starting with prefix,
// sorted. An empty prefix selects every recorded word.
func (ix *RootIndex) WordsWithPrefix(prefix string) []string {
	return ix.lex.withPrefix(prefix)
}

// RootsOfWord returns the roots word has been recorded for, sorted.
func (ix *RootIndex) RootsOfWord(word string) []string {
	return ix.lex.rootsOf(word)
}

func (ix *RootIndex) Size() int     { return ix.size }
func (ix *RootIndex) IsEmpty() bool { return ix.top == nil }

// Height is the height of the tree, 0 for an empty tree.
func (ix *RootIndex) Height() int { return height(ix.top) }

// IsBalanced checks the AVL property and the stored height of every node.
func (ix *RootIndex) IsBalanced() bool {
	return isBalanced(ix.top)
}

// Stats reports size and shape of the index.
func (ix *RootIndex) Stats() IndexStats {
	stats := IndexStats{
		Roots:    ix.size,
		Height:   ix.Height(),
		Balanced: ix.IsBalanced(),
	}
	ix.Walk(func(n *Root) bool {
		stats.Derivations += len(n.derivations)
		return true
	})
	return stats
}

// --- AVL balancing ---------------------------------------------------------

func height(n *Root) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor(n *Root) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func (n *Root) resetHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func rotateRight(y *Root) *Root {
	x := y.left
	y.left = x.right
	x.right = y
	y.resetHeight()
	x.resetHeight()
	return x
}

func rotateLeft(x *Root) *Root {
	y := x.right
	x.right = y.left
	y.left = x
	x.resetHeight()
	y.resetHeight()
	return y
}

// rebalance restores the AVL property at n, whose subtrees are balanced,
// and returns the new subtree top.
func rebalance(n *Root) *Root {
	n.resetHeight()
	balance := balanceFactor(n)
	switch {
	case balance > 1 && balanceFactor(n.left) >= 0: // left-left
		tracer().Debugf("rotate right at %s", n.key)
		return rotateRight(n)
	case balance > 1: // left-right
		tracer().Debugf("rotate left-right at %s", n.key)
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case balance < -1 && balanceFactor(n.right) <= 0: // right-right
		tracer().Debugf("rotate left at %s", n.key)
		return rotateLeft(n)
	case balance < -1: // right-left
		tracer().Debugf("rotate right-left at %s", n.key)
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

// isBalanced recomputes subtree heights instead of trusting the stored
// ones, so a stale height field is reported as well.
func isBalanced(n *Root) bool {
	_, ok := checkHeight(n)
	return ok
}

func checkHeight(n *Root) (int, bool) {
	if n == nil {
		return 0, true
	}
	l, okl := checkHeight(n.left)
	r, okr := checkHeight(n.right)
	h := 1 + max(l, r)
	return h, okl && okr && l-r <= 1 && r-l <= 1 && n.height == h
}
