package main

import "bytes"
import "flag"
import "fmt"
import "math/rand"
import "os"

import "github.com/bnclabs/goavl/avl"
import "github.com/bnclabs/goavl/dict"

var verifyopts struct {
	n        int
	ops      int
	ncpu     int
	seed     int
	bagdir   string
	prodfile string
}

func parseVerifyopts(args []string) {
	f := flag.NewFlagSet("verify", flag.ExitOnError)

	f.IntVar(&verifyopts.n, "n", 1000,
		"number of keys to cycle through")
	f.IntVar(&verifyopts.ops, "ops", 100000,
		"number of random operations to play")
	f.IntVar(&verifyopts.ncpu, "ncpu", 1,
		"set number cores to use.")
	f.IntVar(&verifyopts.seed, "seed", 1,
		"random seed")
	f.StringVar(&verifyopts.bagdir, "bagdir", "",
		"bag directory for monster sample data.")
	f.StringVar(&verifyopts.prodfile, "prodfile", "",
		"monster production file to generate keys")
	f.Parse(args)

	setCPU(verifyopts.ncpu)
}

// doVerify play a random stream of Set, Delete, Get and Getnth on the
// avl index and mirror every operation into the dict reference index,
// any disagreement is a bug in the tree.
func doVerify(args []string) {
	parseVerifyopts(args)

	seed := uint64(verifyopts.seed)
	fmt.Printf("seed: %v\n", seed)
	keys := generatekeys(
		verifyopts.n, verifyopts.prodfile, verifyopts.bagdir, seed,
		[2]int{16, 32})

	tree := avl.NewAVL("verify", avl.Defaultsettings())
	defer tree.Destroy()
	ref := dict.NewDict("verify-ref")
	defer ref.Destroy()

	src := rand.New(rand.NewSource(int64(seed)))
	value := make([]byte, 0, 128)
	for i := 0; i < verifyopts.ops; i++ {
		key := keys[src.Intn(len(keys))]
		switch src.Intn(4) {
		case 0, 1:
			value = makeentry(src, value, [2]int{16, 64})
			_, updated1 := tree.Set(key, value, nil)
			_, updated2 := ref.Set(key, value, nil)
			if updated1 != updated2 {
				die("set %s: updated %v, expected %v", key, updated1, updated2)
			}
		case 2:
			olv1, ok1 := tree.Delete(key, nil)
			olv2, ok2 := ref.Delete(key, nil)
			if ok1 != ok2 {
				die("delete %s: removed %v, expected %v", key, ok1, ok2)
			} else if ok1 && bytes.Compare(olv1, olv2) != 0 {
				die("delete %s: old value %s, expected %s", key, olv1, olv2)
			}
		case 3:
			v1, ok1 := tree.Get(key, nil)
			v2, ok2 := ref.Get(key, nil)
			if ok1 != ok2 {
				die("get %s: ok %v, expected %v", key, ok1, ok2)
			} else if ok1 && bytes.Compare(v1, v2) != 0 {
				die("get %s: value %s, expected %s", key, v1, v2)
			}
			if count := tree.Count(); count > 0 {
				index := src.Int63n(count)
				k1, v1, _ := tree.Getnth(index, nil, nil)
				k2, v2, _ := ref.Getnth(index, nil, nil)
				if bytes.Compare(k1, k2) != 0 {
					die("getnth %v: key %s, expected %s", index, k1, k2)
				} else if bytes.Compare(v1, v2) != 0 {
					die("getnth %v: value %s, expected %s", index, v1, v2)
				}
			}
		}
		if tree.Count() != ref.Count() {
			die("count %v, expected %v", tree.Count(), ref.Count())
		}
		if i%10000 == 0 {
			tree.Validate()
			fmt.Printf("verified %v ops, %v entries ...\n", i, tree.Count())
		}
	}
	tree.Validate()
	tree.Log()
	fmt.Printf("verified %v operations on %v keys\n",
		verifyopts.ops, verifyopts.n)
}

func die(fmsg string, args ...interface{}) {
	fmt.Printf(fmsg+"\n", args...)
	os.Exit(1)
}
