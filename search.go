package pagebt

import (
	"bytes"

	"github.com/pkg/errors"
)

// lowerBound returns the index of the first key not less than k.
func (p *Page) lowerBound(c Comparator, k []byte) int {
	n := p.KeyCount()
	off := 0
	for off < n && c.Less(p.Key(off), k) {
		off++
	}
	return off
}

func (p *Page) checkSearch(k []byte) (Comparator, error) {
	c := p.tree.cmp
	if c == nil {
		return nil, ErrNoComparator
	}
	if len(k) != int(p.tree.recSize) {
		return nil, errors.Wrapf(ErrInvalidArgument, "record len(%d) != recSize(%d)", len(k), p.tree.recSize)
	}
	return c, nil
}

// Search looks k up in the subtree rooted at p and returns a copy of the
// first equal record.
func (p *Page) Search(k []byte) ([]byte, bool, error) {
	c, err := p.checkSearch(k)
	if err != nil {
		return nil, false, err
	}
	off := p.lowerBound(c, k)
	if off < p.KeyCount() && c.Equal(p.Key(off), k) {
		return bytes.Clone(p.Key(off)), true, nil
	}
	if p.IsLeaf() {
		return nil, false, nil
	}
	child := p.tree.NewPage()
	if err = child.ReadChild(p, off); err != nil {
		return nil, false, err
	}
	return child.Search(k)
}

// SearchAll appends a copy of every record equal to k in the subtree rooted
// at p. Duplicates may straddle a separator, so every child from the one
// left of the first candidate to the one right of the last equal key is visited.
func (p *Page) SearchAll(k []byte, dst [][]byte) ([][]byte, error) {
	c, err := p.checkSearch(k)
	if err != nil {
		return dst, err
	}
	n := p.KeyCount()
	off := p.lowerBound(c, k)
	lo, hi := off, off
	if off > 0 {
		lo = off - 1
	}
	for off < n && c.Equal(p.Key(off), k) {
		dst = append(dst, bytes.Clone(p.Key(off)))
		off++
		hi = off
	}
	if p.IsLeaf() {
		return dst, nil
	}
	child := p.tree.NewPage()
	for i := lo; i <= hi; i++ {
		if err = child.ReadChild(p, i); err != nil {
			return dst, err
		}
		if dst, err = child.SearchAll(k, dst); err != nil {
			return dst, err
		}
	}
	return dst, nil
}
