package avl

import "github.com/bnclabs/goavl/api"

// avlnode defines a node in the AVL tree, a single {key,value} entry
// along with the weight of the subtree rooted here. Key and value are
// copied into the node, node owns them. A nil *avlnode is an empty
// subtree.
type avlnode struct {
	key    []byte
	value  []byte
	weight int64
	left   *avlnode
	right  *avlnode
}

func newavlnode(key, value []byte) *avlnode {
	nd := &avlnode{weight: 1}
	nd.key = make([]byte, len(key))
	copy(nd.key, key)
	nd.Setvalue(value)
	return nd
}

// getweight return count of entries in the subtree rooted at nd,
// including nd itself. Empty subtrees weigh zero.
func (nd *avlnode) getweight() int64 {
	if nd == nil {
		return 0
	}
	return nd.weight
}

// getheight return floor(log2(weight)) as the subtree height, zero
// for empty subtrees. This is an approximation of true AVL height,
// exact only for weights of 2^h - 1, derived from weight instead of
// costing a stored field. Balance decisions work off this measure.
func (nd *avlnode) getheight() int64 {
	if nd == nil {
		return 0
	}
	return floorlog2(nd.weight)
}

// balance return the difference in height between nd's left and right
// subtrees, positive values mean the node is heavy on the left,
// negative values heavy on the right.
func (nd *avlnode) balance() int64 {
	if nd == nil {
		return 0
	}
	return nd.left.getheight() - nd.right.getheight()
}

func floorlog2(n int64) int64 {
	if n == 0 {
		return 0
	}
	c := int64(-1)
	for ; n != 0; n >>= 1 {
		c++
	}
	return c
}

// updateweights recompute weight as 1 + left.weight + right.weight,
// bottom-up, for nodes within `depth` levels of nd. Rotations disturb
// weights only within a two level radius of the new subtree root, so
// they repair with depth 2.
func (nd *avlnode) updateweights(depth int64) int64 {
	if nd == nil {
		return 0
	}
	if depth >= 0 {
		wl := nd.left.updateweights(depth - 1)
		wr := nd.right.updateweights(depth - 1)
		nd.weight = 1 + wl + wr
	}
	return nd.weight
}

// predecessor return a copy of the {key,value} of the rightmost entry
// under nd, the in-order previous entry of nd's parent. Read-only,
// unlinking is left to the caller. Shall only be called on a
// non-empty subtree.
func (nd *avlnode) predecessor() (key, value []byte) {
	if nd == nil {
		panicerr("predecessor(): on empty subtree")
	}
	for nd.right != nil {
		nd = nd.right
	}
	return nd.dupkv()
}

// successor return a copy of the {key,value} of the leftmost entry
// under nd. Mirror of predecessor.
func (nd *avlnode) successor() (key, value []byte) {
	if nd == nil {
		panicerr("successor(): on empty subtree")
	}
	for nd.left != nil {
		nd = nd.left
	}
	return nd.dupkv()
}

func (nd *avlnode) dupkv() (key, value []byte) {
	key = make([]byte, len(nd.key))
	copy(key, nd.key)
	value = make([]byte, len(nd.value))
	copy(value, nd.value)
	return key, value
}

//---- api.Node{} interface.

// Key implement api.Node{} interface.
func (nd *avlnode) Key() []byte {
	return nd.key
}

// Value implement api.Node{} interface.
func (nd *avlnode) Value() []byte {
	return nd.value
}

// Setvalue implement api.Node{} interface.
func (nd *avlnode) Setvalue(value []byte) api.Node {
	if cap(nd.value) < len(value) {
		nd.value = make([]byte, len(value))
	}
	nd.value = nd.value[:len(value)]
	copy(nd.value, value)
	return nd
}
