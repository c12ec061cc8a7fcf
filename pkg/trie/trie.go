package trie

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Trie is a prefix tree over Unicode strings. It owns a single root node
// representing the empty prefix; all operations are traversals from there.
type Trie struct {
	root Node
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{}
}

// Insert adds s to the trie. Inserting a string that is already present is a
// no-op. Prefixes of s that were never inserted themselves do not become
// members. The empty string is supported and marks the root itself.
func (t *Trie) Insert(s string) {
	curr := &t.root
	for _, r := range s {
		curr = curr.ensure(r)
	}
	if curr.terminal && curr.value == s {
		// exact duplicate, nothing to write
		return
	}
	curr.terminal = true
	curr.value = s
}

// Exists reports whether s was inserted as a complete word. A stored prefix
// that was never inserted itself yields false.
func (t *Trie) Exists(s string) bool {
	curr := &t.root
	for _, r := range s {
		if curr = curr.walk(r); curr == nil {
			return false
		}
	}
	return curr.terminal
}

// Search returns every inserted word equal to, or extending, the prefix s,
// sorted in descending lexicographic order. An empty prefix, or a prefix
// with no match in the trie, yields an empty result.
func (t *Trie) Search(s string) []string {
	if s == "" {
		return nil
	}
	curr := &t.root
	for _, r := range s {
		if curr = curr.walk(r); curr == nil {
			return nil
		}
	}

	// depth-first collection of every terminal node under the landing node,
	// the landing node included
	var matches []string
	stack := []*Node{curr}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = append(stack[:len(stack)-1], n.children...)
		if n.terminal {
			matches = append(matches, n.value)
		}
	}

	slices.SortFunc(matches, func(a, b string) int {
		return cmp.Compare(b, a)
	})
	return matches
}

// Delete removes s from the trie and reports whether it was present. Only
// the landing node's terminal marking is cleared; nodes are never pruned, so
// sibling and descendant words are unaffected and space is not reclaimed.
func (t *Trie) Delete(s string) bool {
	curr := &t.root
	for _, r := range s {
		if curr = curr.walk(r); curr == nil {
			return false
		}
	}
	if !curr.terminal || curr.value != s {
		// already deleted or never inserted as a whole word
		return false
	}
	curr.terminal = false
	curr.value = ""
	return true
}

// String renders the trie in level order, one tree level per line. Every
// child of a visited node is printed as key(terminal); a child is descended
// into only if it has children of its own, so leaf rows produce no trailing
// empty lines.
func (t *Trie) String() string {
	var b strings.Builder
	queue := []*Node{&t.root}

	for len(queue) > 0 {
		level := len(queue)
		for i := 0; i < level; i++ {
			node := queue[0]
			queue = queue[1:]
			for _, c := range node.children {
				fmt.Fprintf(&b, "%c(%t) ", c.key, c.terminal)
				if len(c.children) > 0 {
					queue = append(queue, c)
				}
			}
		}
		if len(queue) > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
