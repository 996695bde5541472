package pagebt

import (
	"io"

	"github.com/pkg/errors"
)

var _ Store = (*MemStore)(nil)

// MemStore is a Store backed by a growable byte slice.
type MemStore struct {
	buf []byte
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "negative offset(%d)", off)
	}
	if off >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (m *MemStore) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "negative offset(%d)", off)
	}
	end := int(off) + len(p)
	if oldLen := len(m.buf); end > oldLen {
		if end > cap(m.buf) {
			grown := make([]byte, end, max(end, 2*cap(m.buf)))
			copy(grown, m.buf)
			m.buf = grown
		} else {
			m.buf = m.buf[:end]
		}
		if int(off) > oldLen {
			clear(m.buf[oldLen:off])
		}
	}
	return copy(m.buf[off:], p), nil
}

func (m *MemStore) Size() int64 {
	return int64(len(m.buf))
}

// Bytes returns the store content; it aliases the store.
func (m *MemStore) Bytes() []byte {
	return m.buf
}

func (m *MemStore) Truncate(size int64) {
	if size < int64(len(m.buf)) {
		m.buf = m.buf[:size]
	}
}
