package trie

import (
	"cmp"
	"fmt"
	"slices"
)

// Node is a single node of a Trie. An intermediate node carries only the key
// character of the edge from its parent; a terminal node additionally stores
// the complete word that ends at it.
type Node struct {
	children []*Node // sorted by key, keys unique among siblings
	key      rune    // meaningless on the root
	value    string  // set only while terminal is true
	terminal bool    // marks the end of an inserted word
}

// returns a new Node with its key field set to k
func withKey(k rune) *Node {
	return &Node{key: k}
}

// locate binary-searches the children for key k, returning the index where a
// child with that key is (or would be inserted) and whether it was found.
func (n *Node) locate(k rune) (int, bool) {
	return slices.BinarySearchFunc(n.children, k, func(c *Node, key rune) int {
		return cmp.Compare(c.key, key)
	})
}

// walk returns the child holding key k, or nil if no such child exists.
func (n *Node) walk(k rune) *Node {
	if idx, found := n.locate(k); found {
		return n.children[idx]
	}
	return nil
}

// ensure returns the child holding key k, creating it at the sorted
// insertion position first when it does not exist yet.
func (n *Node) ensure(k rune) *Node {
	idx, found := n.locate(k)
	if !found {
		n.children = slices.Insert(n.children, idx, withKey(k))
	}
	return n.children[idx]
}

func (n *Node) String() string {
	return fmt.Sprintf("key:%c term:%t value:%s child_len:%d", n.key, n.terminal, n.value, len(n.children))
}
