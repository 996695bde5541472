package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/nyan233/pagebt"
)

func main() {
	if err := os.MkdirAll("dbset", 0755); err != nil {
		panic(err)
	}
	// create file with path is dbset/quick_start.xibt
	ft := pagebt.NewFileTree(pagebt.Config{
		RootDir:    "dbset",
		Name:       "quick_start.xibt",
		Order:      16,
		RecordSize: 8,
		Comparator: pagebt.BytesComparator{},
	})
	err := ft.Create()
	if err != nil {
		panic(err)
	}
	t, err := pagebt.NewTypedTree[uint64](ft.Tree, new(pagebt.Uint64Codec))
	if err != nil {
		panic(err)
	}
	// every key twice, duplicates are kept
	for i := uint64(0); i < 128; i++ {
		if err = t.Insert(i % 64); err != nil {
			panic(fmt.Errorf("insert err:%v", err))
		}
	}
	for i := 0; i < 8; i++ {
		k := rand.Uint64N(63)
		v, found, err := t.Search(k)
		if err != nil {
			panic(fmt.Errorf("search err:%v", err))
		}
		if !found {
			panic(fmt.Errorf("not found :%d", k))
		}
		all, err := t.SearchAll(k)
		if err != nil {
			panic(fmt.Errorf("search all err:%v", err))
		}
		fmt.Printf("tree.search key=%d, val=%d, copies=%d\n", k, v, len(all))
	}
	fmt.Printf("tree stats: %+v\n", ft.Stats())
	if err = ft.Close(); err != nil {
		panic(fmt.Errorf("close err:%v", err))
	}
	// reopen, order and record size come from the file header
	ft = pagebt.NewFileTree(pagebt.Config{
		RootDir:    "dbset",
		Name:       "quick_start.xibt",
		Comparator: pagebt.BytesComparator{},
	})
	if err = ft.Open(); err != nil {
		panic(err)
	}
	defer ft.Close()
	n, err := ft.Len()
	if err != nil {
		panic(err)
	}
	fmt.Printf("tree reopened, records=%d root=%d pages=%d\n", n, ft.RootPageNum(), ft.LastPageNum())
}
