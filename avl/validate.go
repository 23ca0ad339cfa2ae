package avl

import "bytes"
import "fmt"
import "math"

import "github.com/bnclabs/goavl/lib"

// depth of the tree cannot exceed a certain limit. For example if the
// tree holds 1-million entries, a fully balanced tree shall have a
// depth of 20 levels. Heights here are approximated from weights, a
// rotation can leave an individual node a level out of the strict AVL
// bound, so maxdepth provide some breathing space on top of the ideal
// depth.
func maxdepth(entries int64) float64 {
	if entries < 5 {
		return (3 * (math.Log2(float64(entries)) + 1)) // 3x breathing space.
	}
	return 3 * math.Log2(float64(entries)) // 3x breathing space
}

// Validate implement api.Index{} interface. Walk the full tree and
// panic on the first broken invariant: sort order of keys, weight
// arithmetic, the depth bound, entry count and memory accounting.
func (tree *AVL) Validate() {
	tree.assertalive("Validate")

	h := lib.NewhistogramInt64(1, 256, 1)
	count, km := validateavltree(tree.root, 1 /*depth*/, h)
	if count != tree.Count() {
		fmsg := "validate(): walked %v entries, Count() says %v"
		panic(fmt.Errorf(fmsg, count, tree.Count()))
	} else if count != tree.n_count {
		fmsg := "validate(): walked %v entries, n_count says %v"
		panic(fmt.Errorf(fmsg, count, tree.n_count))
	}
	if km != tree.keymemory {
		fmsg := "validate(): keymemory:%v != actual:%v"
		panic(fmt.Errorf(fmsg, tree.keymemory, km))
	}
	// worst case depth should not exceed breathing room over log2(n).
	if h.Samples() > 8 {
		if float64(h.Max()) > maxdepth(count) {
			fmsg := "validate(): max depth %v exceeds <factor>*log2(%v)"
			panic(fmt.Errorf(fmsg, float64(h.Max()), count))
		}
	}
}

/*
following expectations on the tree should be met.
* Keys in the left subtree < node key < keys in the right subtree.
* At each node, weight == 1 + left.weight + right.weight.
* Return number of entries walked and cumulative memory consumed
  by keys.

Per node balance factor is NOT asserted here. Heights come from
floor(log2(weight)) and rotations settle on that approximation, a
node can legitimately sit at |bf| == 2 after a mutation. The caller's
depth bound is the balance guarantee.
*/
func validateavltree(
	nd *avlnode, depth int64, h *lib.HistogramInt64) (count, keymem int64) {

	if nd == nil {
		return 0, 0
	}

	h.Add(depth)

	if nd.left != nil && bytes.Compare(nd.left.key, nd.key) >= 0 {
		fmsg := "validate(): sort order, left key %s >= key %s"
		panic(fmt.Errorf(fmsg, nd.left.key, nd.key))
	}
	if nd.right != nil && bytes.Compare(nd.right.key, nd.key) <= 0 {
		fmsg := "validate(): sort order, right key %s <= key %s"
		panic(fmt.Errorf(fmsg, nd.right.key, nd.key))
	}

	lcount, lkm := validateavltree(nd.left, depth+1, h)
	rcount, rkm := validateavltree(nd.right, depth+1, h)

	if nd.weight != 1+lcount+rcount {
		fmsg := "validate(): weight %v != 1+%v+%v at key %s"
		panic(fmt.Errorf(fmsg, nd.weight, lcount, rcount, nd.key))
	}

	return 1 + lcount + rcount, lkm + rkm + int64(len(nd.key))
}
