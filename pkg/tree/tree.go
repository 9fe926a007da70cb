// Package tree converts between nested forests and flat, depth-annotated lists.
package tree

// Node is one element of a nested forest.
type Node[T any] struct {
	Value    T
	Children []*Node[T]
}

// Flat is a node without children, annotated with its depth and parent value.
type Flat[T any] struct {
	Value  T
	Depth  int
	Parent *T
}

// Flatten walks the forest depth-first in pre-order. Sibling order is kept and
// every node precedes its descendants. The input is not modified.
func Flatten[T any](forest []*Node[T]) []Flat[T] {
	out := make([]Flat[T], 0, Count(forest))
	return flatten(out, forest, 0, nil)
}

func flatten[T any](out []Flat[T], nodes []*Node[T], depth int, parent *T) []Flat[T] {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		var p *T
		if parent != nil {
			v := *parent
			p = &v
		}
		out = append(out, Flat[T]{Value: n.Value, Depth: depth, Parent: p})
		value := n.Value
		out = flatten(out, n.Children, depth+1, &value)
	}
	return out
}

// Count returns the number of nodes in the forest.
func Count[T any](forest []*Node[T]) int {
	n := 0
	walk(forest, 0, func(*Node[T], int) bool {
		n++
		return true
	})
	return n
}

// Build assembles a forest from rows. key returns a row's id and parentKey its
// parent's id, with ok false for roots. Rows keep their relative input order among
// siblings. A row whose parent is absent from rows becomes a root.
func Build[T any, K comparable](rows []T, key func(T) K, parentKey func(T) (K, bool)) []*Node[T] {
	nodes := make(map[K]*Node[T], len(rows))
	for _, r := range rows {
		nodes[key(r)] = &Node[T]{Value: r}
	}

	roots := make([]*Node[T], 0)
	for _, r := range rows {
		n := nodes[key(r)]
		pk, ok := parentKey(r)
		if !ok {
			roots = append(roots, n)
			continue
		}
		parent, found := nodes[pk]
		if !found || parent == n {
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}
	return roots
}

// walk visits every node in pre-order. Returning false from fn skips the node's children.
func walk[T any](nodes []*Node[T], depth int, fn func(n *Node[T], depth int) bool) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if fn(n, depth) {
			walk(n.Children, depth+1, fn)
		}
	}
}
