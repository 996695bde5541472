package pagebt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	p, err := newParams(2, 10)
	require.NoError(t, err)
	require.Equal(t, 1, p.minKeys)
	require.Equal(t, 3, p.maxKeys)
	require.Equal(t, 30, p.keyAreaSize)
	require.Equal(t, 32, p.cursorAreaOffset)
	require.Equal(t, 48, p.pageSize)

	p, err = newParams(3, 2)
	require.NoError(t, err)
	require.Equal(t, 2, p.minKeys)
	require.Equal(t, 5, p.maxKeys)
	require.Equal(t, 12, p.cursorAreaOffset)
	require.Equal(t, 12+4*6, p.pageSize)

	_, err = newParams(0, 10)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = newParams(2, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
	// 2*16385-1 overflows the 15 bits left for the key count
	_, err = newParams(16385, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	p, err = newParams(16384, 1)
	require.NoError(t, err)
	require.Equal(t, maxKeysCeiling, p.maxKeys)
}

func TestCheckKeyCount(t *testing.T) {
	p, err := newParams(3, 1)
	require.NoError(t, err)
	require.True(t, p.checkKeyCount(0, true))
	require.False(t, p.checkKeyCount(0, false))
	require.False(t, p.checkKeyCount(1, false))
	require.True(t, p.checkKeyCount(2, false))
	require.True(t, p.checkKeyCount(5, false))
	require.False(t, p.checkKeyCount(6, true))
	require.ErrorIs(t, p.checkKeyCountErr(6, false), ErrInvalidArgument)
}

func TestPageHeaderWord(t *testing.T) {
	isLeaf, n := decodePageHeader(encodePageHeader(true, 3))
	require.True(t, isLeaf)
	require.Equal(t, uint16(3), n)
	isLeaf, n = decodePageHeader(encodePageHeader(false, 0x7FFF))
	require.False(t, isLeaf)
	require.Equal(t, uint16(0x7FFF), n)
	require.Equal(t, uint16(0x8005), encodePageHeader(true, 5))
	require.Panics(t, func() { encodePageHeader(false, 0x8000) })
}

func TestFileHeader(t *testing.T) {
	hdr := newFileHeader(2, 10)
	require.True(t, hdr.checkIntegrity())
	var got fileHeader
	got.unmarshal(hdr.marshal())
	require.Equal(t, hdr, got)
	require.Equal(t, []byte{'X', 'I', 'B', 'T', 2, 0, 10, 0}, hdr.marshal())

	bad := []fileHeader{
		{Sign: 0xdeadbeef, Order: 2, RecordSize: 10},
		{Sign: validSignature, Order: 0, RecordSize: 10},
		{Sign: validSignature, Order: 2, RecordSize: 0},
	}
	for _, h := range bad {
		require.False(t, h.checkIntegrity())
	}
}
