// Package avl implement an in-memory sorted index of {key,value}
// entries using an approximately height balanced binary search tree.
// Every node carries the weight of its subtree, entry count including
// itself, and the tree derives node height as floor(log2(weight)).
// Weights pay for themselves twice over, once as the balance measure
// behind rotations and once as the order statistic behind rank
// queries, Getnth answers the k-th smallest key in O(log n) without
// any extra per-node field. The approximation trades the strict AVL
// balance factor bound for a bound on overall depth.
//
// Keys and values are byte slices, keys are unique and ordered by
// bytes.Compare, setting an existing key overwrites its value in
// place. Lookup, set, delete and rank queries run in O(log n).
//
// The index is not safe for concurrent access. Mutations rotate
// subtrees in place and assume no concurrent observer, calling
// routines should serialize access, for example behind a single
// sync.Mutex.
package avl
