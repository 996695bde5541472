package pagebt

import "github.com/pkg/errors"

// SplitChild splits the full child behind cursor i at its median key. The
// median moves up into p, the upper half moves to a new right sibling.
// y, z and p are written in that order; the three writes are not atomic.
func (p *Page) SplitChild(i int) error {
	if p.IsFull() {
		return errors.Wrapf(ErrNodeFull, "parent page(%d) is full, its child can't be split", p.num)
	}
	if i < 0 || i > p.KeyCount() {
		return errors.Wrapf(ErrInvalidArgument, "cursor(%d) not exists, keyCount=%d", i, p.KeyCount())
	}
	var (
		tr    = p.tree
		order = int(tr.order)
		y     = tr.NewPage()
		z     = tr.NewPage()
	)
	if err := y.ReadChild(p, i); err != nil {
		return err
	}
	if !y.IsFull() {
		return errors.Wrapf(ErrInvalidArgument, "child page(%d) has %d keys, only a full node can be split", y.num, y.KeyCount())
	}
	if err := z.Alloc(order-1, y.IsLeaf()); err != nil {
		return err
	}
	copy(z.keys(0, order-1), y.keys(order, order-1))
	if !y.IsLeaf() {
		copy(z.cursors(0, order), y.cursors(order, order))
	}
	if err := p.SetKeyCount(p.KeyCount() + 1); err != nil {
		return err
	}
	n := p.KeyCount()
	// cursors i+1..n-1 move one slot right, z goes right after y
	copy(p.cursors(i+2, n-i-1), p.cursors(i+1, n-i-1))
	if err := p.SetCursor(i+1, z.num); err != nil {
		return err
	}
	copy(p.keys(i+1, n-i-1), p.keys(i, n-i-1))
	copy(p.Key(i), y.Key(order-1))
	if err := y.SetKeyCount(order - 1); err != nil {
		return err
	}
	if err := y.Write(); err != nil {
		return err
	}
	if err := z.Write(); err != nil {
		return err
	}
	if err := p.Write(); err != nil {
		return err
	}
	tr.stat.splits.Add(1)
	return nil
}
