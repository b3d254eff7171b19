// Package bintree provides a persistent, unbalanced binary search tree.
//
// Like package list, mutating operations consume the tree value and return
// a new one; only the path from the root to the touched node is copied, the
// rest is shared. No rebalancing is performed, so a sorted insertion
// sequence degenerates to a linked list - the tree is a peer container for
// ordered payloads, not a performance structure.
//
// Duplicates are allowed and are kept in the left subtree of an equal
// element. The zero value is the empty tree.
package bintree
