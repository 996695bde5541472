package pagebt

import "github.com/pkg/errors"

// params are the sizes derived from the order and the record size. They are
// computed once when a tree is created or loaded.
type params struct {
	order            uint16
	recSize          uint16
	minKeys          int
	maxKeys          int
	keyAreaSize      int
	cursorAreaOffset int
	pageSize         int
}

func checkTreeParams(order, recSize uint16) error {
	if order < 1 || recSize == 0 {
		return errors.Wrapf(ErrInvalidArgument, "order(%d) can't be less than 1 and record size(%d) can't be 0", order, recSize)
	}
	return nil
}

func newParams(order, recSize uint16) (params, error) {
	if err := checkTreeParams(order, recSize); err != nil {
		return params{}, err
	}
	p := params{
		order:   order,
		recSize: recSize,
		minKeys: int(order) - 1,
		maxKeys: 2*int(order) - 1,
	}
	if p.maxKeys > maxKeysCeiling {
		return params{}, errors.Wrapf(ErrInvalidArgument, "order(%d) gives maxKeys(%d) > maxKeysCeiling(%d)", order, p.maxKeys, maxKeysCeiling)
	}
	p.keyAreaSize = int(recSize) * p.maxKeys
	p.cursorAreaOffset = p.keyAreaSize + keyAreaBase
	p.pageSize = p.cursorAreaOffset + cursorSize*2*int(order)
	return p, nil
}

// checkKeyCount reports whether n keys are allowed in a node. The root may hold
// fewer than minKeys, including zero.
func (p *params) checkKeyCount(n int, isRoot bool) bool {
	if n < 0 || n > p.maxKeys {
		return false
	}
	if isRoot {
		return true
	}
	return n >= p.minKeys
}

func (p *params) checkKeyCountErr(n int, isRoot bool) error {
	if !p.checkKeyCount(n, isRoot) {
		return errors.Wrapf(ErrInvalidArgument, "invalid number of keys(%d) for a node, min=%d max=%d root=%v", n, p.minKeys, p.maxKeys, isRoot)
	}
	return nil
}
