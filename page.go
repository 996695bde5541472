package pagebt

import "github.com/pkg/errors"

// Page is a rebindable view over the buffer of one page. It owns the buffer
// but no disk state: Alloc or Read bind it to a page number, Write persists it.
//
// Slices returned by Key are views into the buffer and are only valid until
// the page is rebound.
type Page struct {
	tree *Tree
	data []byte
	num  uint32
}

func (p *Page) realloc(size int) {
	if len(p.data) == size {
		return
	}
	if size == 0 {
		p.data = nil
		return
	}
	p.data = make([]byte, size)
}

func (p *Page) release() {
	p.data = nil
	p.num = invalidPageNum
}

func (p *Page) clear() {
	clear(p.data)
}

func (p *Page) PageNum() uint32 {
	return p.num
}

// IsRoot reports whether p is the tree's root wrapper or is bound to the root page.
func (p *Page) IsRoot() bool {
	if p == p.tree.root {
		return true
	}
	return p.num != invalidPageNum && p.num == p.tree.rootPageNum
}

func (p *Page) headerWord() uint16 {
	if len(p.data) < pageHeaderSize {
		return 0
	}
	return byteOrder.Uint16(p.data[:pageHeaderSize])
}

func (p *Page) setHeaderWord(word uint16) {
	byteOrder.PutUint16(p.data[:pageHeaderSize], word)
}

func (p *Page) IsLeaf() bool {
	isLeaf, _ := decodePageHeader(p.headerWord())
	return isLeaf
}

func (p *Page) KeyCount() int {
	_, n := decodePageHeader(p.headerWord())
	return int(n)
}

func (p *Page) IsFull() bool {
	return p.KeyCount() == p.tree.maxKeys
}

func (p *Page) setKeyCountLeaf(n int, isRoot, isLeaf bool) error {
	if err := p.tree.checkKeyCountErr(n, isRoot); err != nil {
		return err
	}
	p.setHeaderWord(encodePageHeader(isLeaf, uint16(n)))
	return nil
}

// SetKeyCount changes the key count and keeps the leaf flag.
func (p *Page) SetKeyCount(n int) error {
	return p.setKeyCountLeaf(n, p.IsRoot(), p.IsLeaf())
}

// SetLeaf changes the leaf flag and keeps the key count.
func (p *Page) SetLeaf(isLeaf bool) {
	_, n := decodePageHeader(p.headerWord())
	p.setHeaderWord(encodePageHeader(isLeaf, n))
}

func (p *Page) keyOffset(i int) int {
	if i < 0 || i >= p.KeyCount() {
		return -1
	}
	return keyAreaBase + int(p.tree.recSize)*i
}

func (p *Page) cursorOffset(i int) int {
	if i < 0 || i > p.KeyCount() {
		return -1
	}
	return p.tree.cursorAreaOffset + cursorSize*i
}

// Key returns the i-th key, or nil when i >= KeyCount.
func (p *Page) Key(i int) []byte {
	off := p.keyOffset(i)
	if off == -1 {
		return nil
	}
	end := off + int(p.tree.recSize)
	return p.data[off:end:end]
}

func (p *Page) SetKey(i int, k []byte) error {
	dst := p.Key(i)
	if dst == nil {
		return errors.Wrapf(ErrInvalidArgument, "wrong key number(%d), keyCount=%d", i, p.KeyCount())
	}
	if len(k) != len(dst) {
		return errors.Wrapf(ErrInvalidArgument, "record len(%d) != recSize(%d)", len(k), len(dst))
	}
	copy(dst, k)
	return nil
}

func (p *Page) Cursor(i int) (uint32, error) {
	off := p.cursorOffset(i)
	if off == -1 {
		return invalidPageNum, errors.Wrapf(ErrInvalidArgument, "wrong cursor number(%d), keyCount=%d", i, p.KeyCount())
	}
	return byteOrder.Uint32(p.data[off : off+cursorSize]), nil
}

func (p *Page) SetCursor(i int, v uint32) error {
	off := p.cursorOffset(i)
	if off == -1 {
		return errors.Wrapf(ErrInvalidArgument, "wrong cursor number(%d), keyCount=%d", i, p.KeyCount())
	}
	byteOrder.PutUint32(p.data[off:off+cursorSize], v)
	return nil
}

// keys returns the raw key area for keys [i, i+n). Callers keep it in bounds.
func (p *Page) keys(i, n int) []byte {
	rs := int(p.tree.recSize)
	off := keyAreaBase + rs*i
	return p.data[off : off+rs*n]
}

// cursors returns the raw cursor area for cursors [i, i+n).
func (p *Page) cursors(i, n int) []byte {
	off := p.tree.cursorAreaOffset + cursorSize*i
	return p.data[off : off+cursorSize*n]
}

// Alloc appends a new zeroed page holding keyCount keys and binds p to it.
func (p *Page) Alloc(keyCount int, isLeaf bool) error {
	_, err := p.tree.AllocPage(p, keyCount, isLeaf)
	return err
}

// Read loads page pgId into the buffer.
func (p *Page) Read(pgId uint32) error {
	if err := p.tree.checkForOpenStore(); err != nil {
		return err
	}
	p.realloc(p.tree.pageSize)
	if err := p.tree.readPage(pgId, p.data); err != nil {
		return err
	}
	p.num = pgId
	return nil
}

// ReadChild loads the page that the i-th cursor of parent points to.
func (p *Page) ReadChild(parent *Page, i int) error {
	cur, err := parent.Cursor(i)
	if err != nil {
		return err
	}
	if cur == invalidPageNum {
		return errors.Wrapf(ErrInvalidArgument, "cursor(%d) of page(%d) does not point to an existing page", i, parent.num)
	}
	return p.Read(cur)
}

// Write persists the buffer to the bound page.
func (p *Page) Write() error {
	if p.num == invalidPageNum {
		return errors.WithMessage(ErrNotReady, "page number not set, can't write")
	}
	return p.tree.writePage(p.num, p.data)
}

// MarkAsRoot records p as the root. With persist the root page number is also
// written to the store; skip it when p was just read as the recorded root.
func (p *Page) MarkAsRoot(persist bool) error {
	if persist && p.num == invalidPageNum {
		return errors.WithMessage(ErrNotReady, "can't set a page as root until it is allocated")
	}
	return p.tree.setRootPageNum(p.num, persist)
}
