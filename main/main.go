package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/fieldpath"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	paths := []fieldpath.Path{
		fieldpath.New("foo", "bar", "baz"),
		fieldpath.New("foo", "((c)", "Marty's"),
		fieldpath.New("features", "(ext.image)", "width"),
		fieldpath.New("a.b", "", "'quoted'"),
	}
	start := time.Now()
	for i := 0; i < 200000; i++ {
		for _, p := range paths {
			s := p.Serialize()
			q, err := fieldpath.Deserialize(s)
			if err != nil {
				log.Fatal(err)
			}
			if !q.Equal(p) {
				log.Fatalf("round trip mismatch for %q", s)
			}
		}
	}
	log.Printf("round tripped %d paths in %s", 200000*len(paths), time.Since(start))
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
}
