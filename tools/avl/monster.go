package main

import "fmt"
import "io/ioutil"
import "log"
import "math/rand"

import parsec "github.com/prataprc/goparsec"
import "github.com/prataprc/monster"
import mcommon "github.com/prataprc/monster/common"

// generatekeys return n keys. Keys come from the monster production
// file when one is supplied, else random ascii keys sized within
// klen.
func generatekeys(
	n int, prodfile, bagdir string, seed uint64, klen [2]int) [][]byte {

	if prodfile == "" {
		return randomkeys(n, seed, klen)
	}

	text, err := ioutil.ReadFile(prodfile)
	if err != nil {
		log.Fatal(err)
	}
	root := compile(parsec.NewScanner(text)).(mcommon.Scope)
	scope := monster.BuildContext(root, seed, bagdir, prodfile)
	nterms := scope["_nonterminals"].(mcommon.NTForms)

	keys := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		scope = scope.RebuildContext()
		key := evaluate("root", scope, nterms["s"]).(string)
		keys = append(keys, []byte(key))
	}
	return keys
}

func randomkeys(n int, seed uint64, klen [2]int) [][]byte {
	src := rand.New(rand.NewSource(int64(seed)))
	keys := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		key := makeentry(src, nil, klen)
		k := make([]byte, len(key))
		copy(k, key)
		keys = append(keys, k)
	}
	return keys
}

func compile(s parsec.Scanner) parsec.ParsecNode {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("%v at %v", r, s.GetCursor())
		}
	}()
	root, _ := monster.Y(s)
	return root
}

func evaluate(
	name string, scope mcommon.Scope, forms []*mcommon.Form) interface{} {

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("%v", r)
		}
	}()
	return monster.EvalForms(name, scope, forms)
}
