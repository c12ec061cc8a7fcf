// ## Overview
// Package trie implements a trie (prefix tree) keyed by Unicode code points.
// Every node keeps its children in a slice sorted by key, so each step of a
// traversal is a binary search. A word is stored on the node its last
// character lands on; deleting a word only clears that marking and never
// removes nodes from the tree.
//
// The trie is not safe for concurrent use. A writer (Insert, Delete) needs
// exclusive access to the whole structure, while readers (Exists, Search,
// String) may share it. Wrap the trie with a sync.RWMutex if both must run
// at the same time.
//
// ## Example usage:
//
//	t := trie.New()
//	t.Insert("tea")
//	t.Insert("test")
//
//	t.Exists("tea") // true
//	t.Exists("te")  // false, "te" is only a stored prefix
//	t.Search("te")  // [test tea], descending lexicographic order
//	t.Delete("tea") // true
//
//	fmt.Println(t) // level-order dump, one tree level per line
package trie
