package main

import "fmt"
import "log"
import "net/http"
import _ "net/http/pprof"
import "os"
import "runtime"

import "github.com/bnclabs/goavl/avl"

func main() {
	go func() {
		log.Println(http.ListenAndServe(":6060", nil))
	}()

	avl.LogComponents("all")

	if len(os.Args) < 2 {
		fmt.Println("please provide a valid command, load | verify !!")
		os.Exit(1)
	}
	switch os.Args[1] {
	case "load":
		doLoad(os.Args[2:])
	case "verify":
		doVerify(os.Args[2:])
	default:
		fmt.Println("please provide a valid command, load | verify !!")
		os.Exit(1)
	}
}

func setCPU(n int) {
	fmt.Printf("Setting number of cpus to %v\n", n)
	runtime.GOMAXPROCS(n)
}
