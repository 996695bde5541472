package pagebt

import (
	"encoding/binary"
	"fmt"
)

// file layout, all integers little-endian
const (
	headerOffset       = 0
	headerSize         = 8
	pageCounterOffset  = headerOffset + headerSize
	pageCounterSize    = 4
	rootPageNumOffset  = pageCounterOffset + pageCounterSize
	rootPageNumSize    = 4
	firstPageOffset    = rootPageNumOffset + rootPageNumSize
	validSignature     = uint32(0x54424958) // "XIBT"
	pageHeaderSize     = 2
	keyAreaBase        = pageHeaderSize
	cursorSize         = 4
	leafNodeMask       = uint16(0x8000)
	maxKeysCeiling     = int(^leafNodeMask)
	invalidPageNum     = uint32(0)
	rootPageNumOnStart = uint32(1)
)

var byteOrder = binary.LittleEndian

// decodePageHeader splits the packed header word of a page.
func decodePageHeader(word uint16) (isLeaf bool, keyCount uint16) {
	return word&leafNodeMask != 0, word &^ leafNodeMask
}

// encodePageHeader packs the leaf flag into the MSB of the key count.
func encodePageHeader(isLeaf bool, keyCount uint16) uint16 {
	if keyCount&leafNodeMask != 0 {
		panic(fmt.Errorf("key count %d overlaps the leaf flag", keyCount))
	}
	if isLeaf {
		return keyCount | leafNodeMask
	}
	return keyCount
}

// pageOffset returns the byte offset of page n (pages are numbered from 1).
func pageOffset(pageSize int, n uint32) int64 {
	return int64(firstPageOffset) + int64(pageSize)*int64(n-1)
}
