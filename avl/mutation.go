package avl

import "bytes"

import "github.com/bnclabs/goavl/lib"

// upsert walk down the tree hunting for key's slot, insert or update
// the entry there, and repair weight and balance along the walked
// path while unwinding. Return the new subtree root, old value copied
// into the oldvalue buffer and whether this was an update.
func (tree *AVL) upsert(
	nd *avlnode, depth int64,
	key, value, oldvalue []byte) (*avlnode, []byte, bool) {

	if nd == nil { // empty slot, key is new.
		tree.h_upsertdepth.Add(depth)
		return newavlnode(key, value), lib.Fixbuffer(oldvalue, 0), false
	}

	var olv []byte
	var updated bool

	cmp := bytes.Compare(key, nd.key)
	switch {
	case cmp < 0:
		nd.left, olv, updated = tree.upsert(nd.left, depth+1, key, value, oldvalue)
	case cmp > 0:
		nd.right, olv, updated = tree.upsert(nd.right, depth+1, key, value, oldvalue)
	default: // overwrite in place, size and balance are unchanged.
		olv = lib.Fixbuffer(oldvalue, int64(len(nd.value)))
		copy(olv, nd.value)
		nd.Setvalue(value)
		tree.h_upsertdepth.Add(depth)
		return nd, olv, true
	}

	if updated == false { // subtree gained an entry.
		nd.weight++
		nd = tree.rebalanceupsert(nd)
	}
	return nd, olv, updated
}

// doremove hunt down key and splice its node out, repairing weight
// and balance along the walked path while unwinding. Return the new
// subtree root, removed value copied into the oldvalue buffer, and
// whether key was found. Missing key leaves the subtree untouched.
func (tree *AVL) doremove(
	nd *avlnode, key, oldvalue []byte) (*avlnode, []byte, bool) {

	if nd == nil {
		return nil, lib.Fixbuffer(oldvalue, 0), false
	}

	cmp := bytes.Compare(key, nd.key)
	if cmp == 0 {
		olv := lib.Fixbuffer(oldvalue, int64(len(nd.value)))
		copy(olv, nd.value)

		if nd.left == nil && nd.right == nil { // leaf, drop the slot.
			return nil, olv, true

		} else if nd.left != nil {
			// overwrite this node with its predecessor, then evict
			// the predecessor's original entry from the left subtree.
			k, v := nd.left.predecessor()
			nd.key, nd.value = k, v
			nd.weight--
			nd.left, _, _ = tree.doremove(nd.left, k, nil)
			return nd, olv, true
		}
		// only a right child, splice in the successor.
		k, v := nd.right.successor()
		nd.key, nd.value = k, v
		nd.weight--
		nd.right, _, _ = tree.doremove(nd.right, k, nil)
		return nd, olv, true
	}

	var olv []byte
	var removed bool
	if cmp < 0 {
		nd.left, olv, removed = tree.doremove(nd.left, key, oldvalue)
	} else {
		nd.right, olv, removed = tree.doremove(nd.right, key, oldvalue)
	}
	if removed { // subtree lost an entry.
		nd.weight--
		nd = tree.rebalanceremove(nd)
	}
	return nd, olv, removed
}

// rebalanceupsert fix a subtree that just gained an entry. A child
// with balance factor zero needs no fixup on this path. Balance
// factors work off the floor(log2(weight)) height, rotations chip a
// skew down rather than restore |bf| <= 1 outright, the tree settles
// within the depth bound checked by Validate().
func (tree *AVL) rebalanceupsert(nd *avlnode) *avlnode {
	if bf := nd.balance(); bf >= 2 {
		if bfl := nd.left.balance(); bfl > 0 {
			nd = tree.rotateleftleft(nd)
		} else if bfl < 0 {
			nd = tree.rotateleftright(nd)
		}
	} else if bf <= -2 {
		if bfr := nd.right.balance(); bfr < 0 {
			nd = tree.rotaterightright(nd)
		} else if bfr > 0 {
			nd = tree.rotaterightleft(nd)
		}
	}
	return nd
}

// rebalanceremove fix a subtree that just lost an entry. Ties on the
// child's balance factor resolve to the single rotation.
func (tree *AVL) rebalanceremove(nd *avlnode) *avlnode {
	if bf := nd.balance(); bf >= 2 {
		if nd.left.balance() >= 0 {
			nd = tree.rotateleftleft(nd)
		} else {
			nd = tree.rotateleftright(nd)
		}
	} else if bf <= -2 {
		if nd.right.balance() <= 0 {
			nd = tree.rotaterightright(nd)
		} else {
			nd = tree.rotaterightleft(nd)
		}
	}
	return nd
}

// Rotations relink a handful of subtree pointers in O(1) and leave
// the in-order key sequence untouched. Each one finishes with a
// depth-2 weight repair on the new subtree root. Names read as, "a
// left rotation is performed on the left branch", and so on.

func (tree *AVL) rotateleftleft(nd *avlnode) *avlnode {
	t := nd.left
	nd.left = t.right
	t.right = nd
	t.updateweights(2)
	tree.n_llrotations++
	return t
}

func (tree *AVL) rotaterightright(nd *avlnode) *avlnode {
	t := nd.right
	nd.right = t.left
	t.left = nd
	t.updateweights(2)
	tree.n_rrrotations++
	return t
}

func (tree *AVL) rotateleftright(nd *avlnode) *avlnode {
	t1 := nd.left
	t2 := t1.right
	nd.left = t2.right
	t1.right = t2.left
	t2.right = nd
	t2.left = t1
	t2.updateweights(2)
	tree.n_lrrotations++
	return t2
}

func (tree *AVL) rotaterightleft(nd *avlnode) *avlnode {
	t1 := nd.right
	t2 := t1.left
	nd.right = t2.left
	t1.left = t2.right
	t2.left = nd
	t2.right = t1
	t2.updateweights(2)
	tree.n_rlrotations++
	return t2
}
