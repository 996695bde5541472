package pagebt

import (
	"encoding/binary"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func initBench(b *testing.B) {
	err := os.RemoveAll("testdata")
	require.NoError(b, err)
	err = os.Mkdir("testdata", 0755)
	if err != nil && !os.IsExist(err) {
		b.Fatal(err)
	}
}

func benchKey(v uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, v)
}

func BenchmarkTree(b *testing.B) {
	b.Run("MemInsert", func(b *testing.B) {
		bt, _ := newMemTree(b, 64, 8, BytesComparator{})
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			require.NoError(b, bt.Insert(benchKey(rand.Uint64())))
		}
	})
	b.Run("MemSearch", func(b *testing.B) {
		bt, _ := newMemTree(b, 64, 8, BytesComparator{})
		for i := uint64(0); i < 128*1024; i++ {
			require.NoError(b, bt.Insert(benchKey(i)))
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, found, err := bt.Search(benchKey(rand.Uint64N(128*1024 - 1)))
			require.NoError(b, err)
			require.True(b, found)
		}
	})
	b.Run("FileInsert", func(b *testing.B) {
		initBench(b)
		ft := NewFileTree(Config{
			RootDir:    "testdata",
			Name:       "bench.xibt",
			Order:      128,
			RecordSize: 8,
			Comparator: BytesComparator{},
		})
		require.NoError(b, ft.Create())
		defer ft.Close()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			require.NoError(b, ft.Insert(benchKey(rand.Uint64())))
		}
	})
}
