package main

import "flag"
import "fmt"
import "math/rand"
import "os"
import "runtime/pprof"
import "strconv"
import "strings"
import "time"

import "github.com/bnclabs/goavl/avl"
import "github.com/bnclabs/goavl/lib"
import humanize "github.com/dustin/go-humanize"

var loadopts struct {
	klen     [2]int // min-klen, max-klen
	vlen     [2]int // min-vlen, max-vlen
	n        int
	ncpu     int
	seed     int
	bagdir   string
	prodfile string
	mprof    string
	pprof    string
}

func parseLoadopts(args []string) {
	f := flag.NewFlagSet("load", flag.ExitOnError)

	var klen, vlen string

	f.StringVar(&klen, "klen", "",
		"minklen, maxklen - generate keys between [minklen,maxklen)")
	f.StringVar(&vlen, "vlen", "",
		"minvlen, maxvlen - generate values between [minvlen,maxvlen)")
	f.IntVar(&loadopts.n, "n", 1000,
		"number of items to generate and insert")
	f.IntVar(&loadopts.ncpu, "ncpu", 1,
		"set number cores to use.")
	f.IntVar(&loadopts.seed, "seed", 1,
		"random seed")
	f.StringVar(&loadopts.bagdir, "bagdir", "",
		"bag directory for monster sample data.")
	f.StringVar(&loadopts.prodfile, "prodfile", "",
		"monster production file to generate keys")
	f.StringVar(&loadopts.mprof, "mprof", "",
		"dump mem-profile to file")
	f.StringVar(&loadopts.pprof, "pprof", "",
		"dump cpu-profile to file")
	f.Parse(args)

	loadopts.klen = [2]int{32, 64}
	if klen != "" {
		for i, s := range strings.Split(klen, ",") {
			ln, _ := strconv.Atoi(s)
			loadopts.klen[i] = ln
		}
	}
	loadopts.vlen = [2]int{32, 128}
	if vlen != "" {
		for i, s := range strings.Split(vlen, ",") {
			ln, _ := strconv.Atoi(s)
			loadopts.vlen[i] = ln
		}
	}
	setCPU(loadopts.ncpu)
}

func doLoad(args []string) {
	parseLoadopts(args)

	if loadopts.pprof != "" {
		fd, err := os.Create(loadopts.pprof)
		if err != nil {
			fmt.Printf("unable to create %q: %v\n", loadopts.pprof, err)
			os.Exit(1)
		}
		defer fd.Close()
		pprof.StartCPUProfile(fd)
		defer pprof.StopCPUProfile()
	}

	seed := uint64(loadopts.seed)
	fmt.Printf("seed: %v\n", seed)
	keys := generatekeys(
		loadopts.n, loadopts.prodfile, loadopts.bagdir, seed, loadopts.klen)

	tree := avl.NewAVL("load", avl.Defaultsettings())
	defer tree.Destroy()

	src := rand.New(rand.NewSource(int64(seed)))
	value := make([]byte, 0, loadopts.vlen[1])
	oldvalue := make([]byte, 1024)
	start := time.Now()
	for _, key := range keys {
		value = makeentry(src, value, loadopts.vlen)
		oldvalue, _ = tree.Set(key, value, oldvalue)
	}
	took := time.Since(start)

	count := tree.Count()
	rate := int64(float64(count) / took.Seconds())
	fmt.Printf(
		"loaded %v entries in %v, %v entries/sec\n",
		humanize.Comma(count), took, humanize.Comma(rate))

	tree.Validate()
	tree.Log()
	fmt.Println(lib.Prettystats(tree.Stats(), true /*pretty*/))

	if loadopts.mprof != "" {
		dumpmemprofile(loadopts.mprof)
	}
}

func makeentry(src *rand.Rand, buf []byte, size [2]int) []byte {
	ln := size[0]
	if size[1] > size[0] {
		ln += src.Intn(size[1] - size[0])
	}
	buf = buf[:0]
	for i := 0; i < ln; i++ {
		buf = append(buf, byte('a'+src.Intn(26)))
	}
	return buf
}

func dumpmemprofile(fname string) {
	fd, err := os.Create(fname)
	if err != nil {
		fmt.Printf("unable to create %q: %v\n", fname, err)
		return
	}
	defer fd.Close()
	pprof.WriteHeapProfile(fd)
}
