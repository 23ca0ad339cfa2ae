package avl

import "bytes"
import "fmt"
import "time"

import "github.com/bnclabs/goavl/api"
import "github.com/bnclabs/goavl/lib"
import s "github.com/bnclabs/gosettings"

// AVL manage a single instance of in-memory sorted index using a
// weight augmented AVL tree. Subtree weights keep the tree depth
// close to log2(count) and double up as the order statistic behind
// Getnth. Not safe for concurrent access, calling routines should
// serialize access to the index.
type AVL struct {
	avlstats

	name     string
	root     *avlnode
	borntime time.Time
	dead     bool

	// settings
	minkeysize  int64
	maxkeysize  int64
	minvalsize  int64
	maxvalsize  int64
	memcapacity int64
	setts       s.Settings
	logprefix   string
}

// NewAVL a new instance of in-memory sorted index.
func NewAVL(name string, setts s.Settings) *AVL {
	tree := &AVL{name: name, borntime: time.Now()}
	tree.logprefix = fmt.Sprintf("AVL [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	tree.readsettings(setts)
	tree.setts = setts

	tree.h_upsertdepth = lib.NewhistogramInt64(1, 256, 4)

	infof("%v started ...\n", tree.logprefix)
	return tree
}

//---- api.Index{} interface.

// ID implement api.Index{} interface.
func (tree *AVL) ID() string {
	return tree.name
}

// Count implement api.Index{} interface. Count is the weight of the
// root node.
func (tree *AVL) Count() int64 {
	return tree.root.getweight()
}

// Isempty implement api.Index{} interface.
func (tree *AVL) Isempty() bool {
	return tree.root == nil
}

// Destroy implement api.Index{} interface.
func (tree *AVL) Destroy() error {
	if tree.dead {
		return fmt.Errorf("avl.destroyed")
	}
	tree.dead, tree.root, tree.setts = true, nil, nil
	infof("%v destroyed\n", tree.logprefix)
	return nil
}

//---- api.IndexWriter{} interface.

// Set a key, value pair in the index, if key is already present,
// update the key with new value. An update leaves weights and balance
// untouched. Previous value is copied into the oldvalue buffer, which
// can be nil, returned bool is true for an update.
func (tree *AVL) Set(key, value, oldvalue []byte) ([]byte, bool) {
	tree.assertalive("Set")
	tree.validatekv(key, value)

	root, olv, updated := tree.upsert(tree.root, 1 /*depth*/, key, value, oldvalue)
	tree.root = root
	if updated {
		tree.n_updates++
		tree.valmemory += int64(len(value)) - int64(len(olv))
	} else {
		tree.n_inserts++
		tree.n_count++
		tree.keymemory += int64(len(key))
		tree.valmemory += int64(len(value))
	}
	return olv, updated
}

// Delete key from the index. Removed value is copied into the
// oldvalue buffer, which can be nil. Missing key returns false and
// leaves the index untouched.
func (tree *AVL) Delete(key, oldvalue []byte) ([]byte, bool) {
	tree.assertalive("Delete")

	root, olv, removed := tree.doremove(tree.root, key, oldvalue)
	if removed {
		tree.root = root
		tree.n_deletes++
		tree.n_count--
		tree.keymemory -= int64(len(key))
		tree.valmemory -= int64(len(olv))
	}
	return olv, removed
}

//---- api.IndexReader{} interface.

// Get value for key. Value is copied into the value buffer, which can
// be nil. Returned bool is false when key is missing.
func (tree *AVL) Get(key, value []byte) ([]byte, bool) {
	tree.assertalive("Get")
	tree.n_lookups++

	nd := getkey(tree.root, key)
	if nd == nil {
		return lib.Fixbuffer(value, 0), false
	}
	value = lib.Fixbuffer(value, int64(len(nd.value)))
	copy(value, nd.value)
	return value, true
}

// Getnode return the live node for key, for reading or for in-place
// update of its value via api.Node. The node reference turns stale
// after a subsequent Set or Delete on this index.
func (tree *AVL) Getnode(key []byte) (api.Node, bool) {
	tree.assertalive("Getnode")
	tree.n_lookups++

	if nd := getkey(tree.root, key); nd != nil {
		return nd, true
	}
	return nil, false
}

// Getnth return the entry at 0-based ascending rank `index`, walking
// down the left subtree weights. Key and value are copied into the
// supplied buffers, which can be nil. Index out of range returns
// false.
func (tree *AVL) Getnth(index int64, key, value []byte) ([]byte, []byte, bool) {
	tree.assertalive("Getnth")
	tree.n_ranks++

	if index < 0 || index >= tree.root.getweight() {
		return lib.Fixbuffer(key, 0), lib.Fixbuffer(value, 0), false
	}
	nd := getnth(tree.root, index)
	key = lib.Fixbuffer(key, int64(len(nd.key)))
	copy(key, nd.key)
	value = lib.Fixbuffer(value, int64(len(nd.value)))
	copy(value, nd.value)
	return key, value, true
}

//---- local functions.

func getkey(nd *avlnode, key []byte) *avlnode {
	for nd != nil {
		if cmp := bytes.Compare(key, nd.key); cmp < 0 {
			nd = nd.left
		} else if cmp > 0 {
			nd = nd.right
		} else {
			return nd
		}
	}
	return nil
}

// getnth walk down by rank, caller should bounds check index against
// the root weight.
func getnth(nd *avlnode, index int64) *avlnode {
	for {
		if wl := nd.left.getweight(); index == wl {
			return nd
		} else if index < wl {
			nd = nd.left
		} else {
			nd, index = nd.right, index-wl-1
		}
	}
}

func (tree *AVL) assertalive(op string) {
	if tree.dead {
		panicerr("%v(): on destroyed index %q", op, tree.name)
	}
}

func (tree *AVL) validatekv(key, value []byte) {
	if int64(len(key)) < tree.minkeysize || int64(len(key)) > tree.maxkeysize {
		fmsg := "%v key size %v outside [%v,%v]"
		panicerr(fmsg, tree.logprefix, len(key), tree.minkeysize, tree.maxkeysize)
	}
	if int64(len(value)) < tree.minvalsize || int64(len(value)) > tree.maxvalsize {
		fmsg := "%v value size %v outside [%v,%v]"
		panicerr(fmsg, tree.logprefix, len(value), tree.minvalsize, tree.maxvalsize)
	}
}
