package avl

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Defaultsettings for avl instance.
//
// "minkeysize" (int64, default: 1)
//		Minimum size allowed for key.
//
// "maxkeysize" (int64, default: 4096)
//		Maximum size allowed for key.
//
// "minvalsize" (int64, default: 0)
//		Minimum size allowed for value.
//
// "maxvalsize" (int64, default: 1048576)
//		Maximum size allowed for value.
//
// "memcapacity" (int64, default: half of free RAM)
//		Expected memory capacity for this index. Log() warns when
//		keymemory+valmemory breaches the capacity, mutations are
//		never refused.
func Defaultsettings() s.Settings {
	_, _, freemem := getsysmem()
	setts := s.Settings{
		"minkeysize":  int64(1),
		"maxkeysize":  int64(4096),
		"minvalsize":  int64(0),
		"maxvalsize":  int64(1024 * 1024),
		"memcapacity": int64(freemem / 2),
	}
	return setts
}

func (tree *AVL) readsettings(setts s.Settings) *AVL {
	tree.minkeysize = setts.Int64("minkeysize")
	tree.maxkeysize = setts.Int64("maxkeysize")
	tree.minvalsize = setts.Int64("minvalsize")
	tree.maxvalsize = setts.Int64("maxvalsize")
	tree.memcapacity = setts.Int64("memcapacity")
	if tree.minkeysize < 1 {
		panicerr("minkeysize %v cannot be ZERO", tree.minkeysize)
	} else if tree.maxkeysize < tree.minkeysize {
		fmsg := "maxkeysize %v < minkeysize %v"
		panicerr(fmsg, tree.maxkeysize, tree.minkeysize)
	} else if tree.minvalsize < 0 {
		panicerr("minvalsize %v cannot be negative", tree.minvalsize)
	} else if tree.maxvalsize < tree.minvalsize {
		fmsg := "maxvalsize %v < minvalsize %v"
		panicerr(fmsg, tree.maxvalsize, tree.minvalsize)
	} else if tree.memcapacity <= 0 {
		panicerr("memcapacity %v cannot be ZERO", tree.memcapacity)
	}
	return tree
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
