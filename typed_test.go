package pagebt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zbh255/gocode/random"
)

func TestTypedTree(t *testing.T) {
	t.Run("Uint64", func(t *testing.T) {
		bt, _ := newMemTree(t, 4, 8, BytesComparator{})
		tt, err := NewTypedTree[uint64](bt, new(Uint64Codec))
		require.NoError(t, err)
		for i := uint64(0); i < 1000; i++ {
			require.NoError(t, tt.Insert((i*7919)%1000))
		}
		v, found, err := tt.Search(512)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, uint64(512), v)
		_, found, err = tt.Search(1000)
		require.NoError(t, err)
		require.False(t, found)

		next := uint64(0)
		require.NoError(t, tt.Walk(func(v uint64) bool {
			require.Equal(t, next, v)
			next++
			return true
		}))
		require.Equal(t, uint64(1000), next)
	})
	t.Run("Int64Order", func(t *testing.T) {
		bt, _ := newMemTree(t, 2, 8, BytesComparator{})
		tt, err := NewTypedTree[int64](bt, new(Int64Codec))
		require.NoError(t, err)
		els := []int64{5, -1, math.MinInt64, 0, math.MaxInt64, -300, 42, -1}
		for _, el := range els {
			require.NoError(t, tt.Insert(el))
		}
		var got []int64
		require.NoError(t, tt.Walk(func(v int64) bool {
			got = append(got, v)
			return true
		}))
		require.Equal(t, []int64{math.MinInt64, -300, -1, -1, 0, 5, 42, math.MaxInt64}, got)

		all, err := tt.SearchAll(-1)
		require.NoError(t, err)
		require.Equal(t, []int64{-1, -1}, all)
	})
	t.Run("Uint16AndUint32", func(t *testing.T) {
		bt16, _ := newMemTree(t, 2, 2, BytesComparator{})
		tt16, err := NewTypedTree[uint16](bt16, new(Uint16Codec))
		require.NoError(t, err)
		for _, v := range []uint16{0x1234, 0x7777, 0x1234, 0x0001} {
			require.NoError(t, tt16.Insert(v))
		}
		all16, err := tt16.SearchAll(0x1234)
		require.NoError(t, err)
		require.Len(t, all16, 2)

		bt32, _ := newMemTree(t, 2, 4, BytesComparator{})
		tt32, err := NewTypedTree[uint32](bt32, new(Uint32Codec))
		require.NoError(t, err)
		require.NoError(t, tt32.Insert(math.MaxUint32))
		v, found, err := tt32.Search(math.MaxUint32)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, uint32(math.MaxUint32), v)
	})
	t.Run("FixedBytes", func(t *testing.T) {
		bt, _ := newMemTree(t, 3, 16, BytesComparator{})
		tt, err := NewTypedTree[[]byte](bt, FixedBytesCodec{N: 16})
		require.NoError(t, err)
		k := []byte(random.GenStringOnAscii(16))
		require.NoError(t, tt.Insert(k))
		v, found, err := tt.Search(k)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, k, v)
		require.ErrorIs(t, tt.Insert([]byte("short")), ErrInvalidArgument)
		_, err = FixedBytesCodec{N: 16}.Marshal(&[]byte{0x01})
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Same(t, bt, tt.Tree())
	})
	t.Run("CodecMismatch", func(t *testing.T) {
		bt, _ := newMemTree(t, 2, 4, BytesComparator{})
		_, err := NewTypedTree[uint64](bt, new(Uint64Codec))
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = NewTypedTree[[]byte](bt, FixedBytesCodec{})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestComparatorFunc(t *testing.T) {
	// reverse order
	cmp := ComparatorFunc(func(a, b []byte) int {
		return int(b[0]) - int(a[0])
	})
	bt, _ := newMemTree(t, 2, 1, cmp)
	for i := 0; i < 20; i++ {
		require.NoError(t, bt.Insert([]byte{byte(i)}))
	}
	var got []byte
	require.NoError(t, bt.Walk(func(rec []byte) bool {
		got = append(got, rec[0])
		return true
	}))
	require.Len(t, got, 20)
	require.Equal(t, byte(19), got[0])
	require.Equal(t, byte(0), got[19])
	require.NotNil(t, bt.Comparator())
}

func TestMemStore(t *testing.T) {
	m := NewMemStore()
	n, err := m.WriteAt([]byte{1, 2}, 4)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{0, 0, 0, 0, 1, 2}, m.Bytes())

	buf := make([]byte, 4)
	n, err = m.ReadAt(buf, 4)
	require.Equal(t, 2, n)
	require.Error(t, err)
	_, err = m.ReadAt(buf, 100)
	require.Error(t, err)

	m.Truncate(2)
	require.Equal(t, int64(2), m.Size())
	_, err = m.WriteAt([]byte{9}, 5)
	require.NoError(t, err)
	// bytes between the old end and the write are zeroed
	require.Equal(t, []byte{0, 0, 0, 0, 0, 9}, m.Bytes())
}
