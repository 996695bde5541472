package pagebt

import "bytes"

var (
	_ Comparator = BytesComparator{}
	_ Comparator = ComparatorFunc(nil)
)

// Comparator orders fixed-size records. Both arguments always have the
// tree's record size.
type Comparator interface {
	// Less reports whether a sorts strictly before b.
	Less(a, b []byte) bool
	Equal(a, b []byte) bool
}

// BytesComparator compares records lexicographically.
type BytesComparator struct{}

func (BytesComparator) Less(a, b []byte) bool {
	return bytes.Compare(a, b) < 0
}

func (BytesComparator) Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// ComparatorFunc adapts a three-way compare function.
type ComparatorFunc func(a, b []byte) int

func (f ComparatorFunc) Less(a, b []byte) bool {
	return f(a, b) < 0
}

func (f ComparatorFunc) Equal(a, b []byte) bool {
	return f(a, b) == 0
}
