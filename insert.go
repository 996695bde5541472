package pagebt

import "github.com/pkg/errors"

// InsertNonFull inserts k into the subtree rooted at p, which must not be
// full. Full children on the way down are split before descending. Equal
// keys are placed to the right of the ones already stored.
func (p *Page) InsertNonFull(k []byte) error {
	if p.IsFull() {
		return errors.Wrapf(ErrNodeFull, "page(%d) is full, can't insert", p.num)
	}
	c := p.tree.cmp
	if c == nil {
		return ErrNoComparator
	}
	if len(k) != int(p.tree.recSize) {
		return errors.Wrapf(ErrInvalidArgument, "record len(%d) != recSize(%d)", len(k), p.tree.recSize)
	}
	i := p.KeyCount() - 1
	if p.IsLeaf() {
		if err := p.SetKeyCount(p.KeyCount() + 1); err != nil {
			return err
		}
		for i >= 0 && c.Less(k, p.Key(i)) {
			copy(p.Key(i+1), p.Key(i))
			i--
		}
		copy(p.Key(i+1), k)
		return p.Write()
	}
	for i >= 0 && c.Less(k, p.Key(i)) {
		i--
	}
	i++
	child := p.tree.NewPage()
	if err := child.ReadChild(p, i); err != nil {
		return err
	}
	if child.IsFull() {
		if err := p.SplitChild(i); err != nil {
			return err
		}
		// not-less-than the promoted separator goes right
		if !c.Less(k, p.Key(i)) {
			i++
		}
		if err := child.ReadChild(p, i); err != nil {
			return err
		}
	}
	return child.InsertNonFull(k)
}
