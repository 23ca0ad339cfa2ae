package avl

import "time"

import humanize "github.com/dustin/go-humanize"
import "github.com/bnclabs/goavl/lib"

// statistics gathered on the index, all fields are updated by the
// public operations, no locks.
type avlstats struct {
	n_count   int64
	n_inserts int64
	n_updates int64
	n_deletes int64
	n_lookups int64
	n_ranks   int64

	n_llrotations int64
	n_rrrotations int64
	n_lrrotations int64
	n_rlrotations int64

	keymemory int64
	valmemory int64

	h_upsertdepth *lib.HistogramInt64
}

// Stats implement api.Index{} interface. Return a map of data-structure
// statistics and operation counts.
func (tree *AVL) Stats() map[string]interface{} {
	stats := make(map[string]interface{})
	stats["n_count"] = tree.n_count
	stats["n_inserts"] = tree.n_inserts
	stats["n_updates"] = tree.n_updates
	stats["n_deletes"] = tree.n_deletes
	stats["n_lookups"] = tree.n_lookups
	stats["n_ranks"] = tree.n_ranks
	stats["n_llrotations"] = tree.n_llrotations
	stats["n_rrrotations"] = tree.n_rrrotations
	stats["n_lrrotations"] = tree.n_lrrotations
	stats["n_rlrotations"] = tree.n_rlrotations
	stats["keymemory"] = tree.keymemory
	stats["valmemory"] = tree.valmemory
	stats["memcapacity"] = tree.memcapacity
	stats["height"] = tree.root.getheight()
	stats["h_upsertdepth"] = tree.h_upsertdepth.Fullstats()
	return stats
}

// Log implement api.Index{} interface. Vital statistics in human
// readable format.
func (tree *AVL) Log() {
	uptime := time.Since(tree.borntime).Round(time.Second)
	fmsg := "%v entries:%v height:%v uptime:%v\n"
	infof(fmsg, tree.logprefix, tree.Count(), tree.root.getheight(), uptime)

	kmem := humanize.Bytes(uint64(tree.keymemory))
	vmem := humanize.Bytes(uint64(tree.valmemory))
	capc := humanize.Bytes(uint64(tree.memcapacity))
	fmsg = "%v keymemory:%v valmemory:%v capacity:%v\n"
	infof(fmsg, tree.logprefix, kmem, vmem, capc)
	if tree.keymemory+tree.valmemory > tree.memcapacity {
		warnf("%v memory footprint exceeds capacity\n", tree.logprefix)
	}

	fmsg = "%v rotations ll:%v rr:%v lr:%v rl:%v\n"
	infof(fmsg, tree.logprefix, tree.n_llrotations, tree.n_rrrotations,
		tree.n_lrrotations, tree.n_rlrotations)
	infof("%v upsertdepth %v\n", tree.logprefix, tree.h_upsertdepth.Logstring())
}
