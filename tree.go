package pagebt

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

// Store is the random-access byte store a tree lives in. The tree computes
// every offset itself; the store does not know the page format.
type Store interface {
	io.ReaderAt
	io.WriterAt
}

// Tree is a disk-resident B-tree of fixed-size records. It is not safe for
// concurrent use and assumes it is the only writer of its store.
type Tree struct {
	params
	store       Store
	cmp         Comparator
	logger      *slog.Logger
	lastPageNum uint32
	rootPageNum uint32
	// root is the only long-lived page; every other page is scoped to one call.
	root *Page
	stat iStat
}

func NewTree(store Store, cmp Comparator, logger *slog.Logger) *Tree {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tree{
		store:  store,
		cmp:    cmp,
		logger: logger,
	}
	t.root = &Page{tree: t}
	return t
}

func (t *Tree) bind(store Store) {
	t.store = store
}

// Create formats an empty tree into the store: header, page counter, root
// page number and an empty leaf root on page 1.
func (t *Tree) Create(order, recSize uint16) error {
	if t.store == nil {
		return ErrNoStore
	}
	if t.IsOpen() {
		return ErrAlreadyOpen
	}
	p, err := newParams(order, recSize)
	if err != nil {
		return err
	}
	t.setParams(p)
	t.lastPageNum = 0
	t.rootPageNum = 0
	hdr := newFileHeader(order, recSize)
	if err = t.writeAt(hdr.marshal(), headerOffset); err != nil {
		return errors.WithMessage(err, "write header")
	}
	if err = t.writePageCounter(); err != nil {
		return err
	}
	if err = t.writeRootPageNum(); err != nil {
		return err
	}
	if err = t.createRootPage(); err != nil {
		return err
	}
	t.logger.Info("b-tree created", "order", order, "recSize", recSize, "pageSize", t.pageSize)
	return nil
}

// Load reads an existing tree from the store.
func (t *Tree) Load() (err error) {
	if t.store == nil {
		return ErrNoStore
	}
	defer func() {
		if err != nil {
			t.setParams(params{})
			t.lastPageNum, t.rootPageNum = 0, 0
			t.logger.Error("load b-tree failed", "err", err)
		}
	}()
	buf := make([]byte, headerSize)
	if err = t.readAt(buf, headerOffset); err != nil {
		return errors.WithMessage(err, "can't read header")
	}
	var hdr fileHeader
	hdr.unmarshal(buf)
	if !hdr.checkIntegrity() {
		return errors.Wrapf(ErrInvalidHeader, "sign=%#x order=%d recSize=%d", hdr.Sign, hdr.Order, hdr.RecordSize)
	}
	p, err := newParams(hdr.Order, hdr.RecordSize)
	if err != nil {
		return errors.Wrap(ErrInvalidHeader, err.Error())
	}
	t.setParams(p)
	if err = t.readPageCounter(); err != nil {
		return errors.WithMessage(err, "can't read necessary fields")
	}
	if err = t.readRootPageNum(); err != nil {
		return errors.WithMessage(err, "can't read necessary fields")
	}
	if err = t.loadRootPage(); err != nil {
		return err
	}
	t.logger.Info("b-tree loaded", "order", t.order, "recSize", t.recSize, "lastPageNum", t.lastPageNum, "rootPageNum", t.rootPageNum)
	return nil
}

// Close detaches the store and forgets the tree parameters. It does not close
// the store and is safe to call more than once.
func (t *Tree) Close() error {
	t.store = nil
	t.setParams(params{})
	t.lastPageNum = 0
	t.rootPageNum = 0
	t.root.release()
	t.stat.reset()
	return nil
}

func (t *Tree) setParams(p params) {
	t.params = p
	t.root.realloc(p.pageSize)
}

func (t *Tree) createRootPage() error {
	if _, err := t.allocPageInternal(t.root, 0, true, true); err != nil {
		return err
	}
	return t.root.MarkAsRoot(true)
}

func (t *Tree) loadRootPage() error {
	if t.rootPageNum == invalidPageNum {
		return errors.WithMessage(ErrCorrupt, "root page is not defined")
	}
	if err := t.root.Read(t.rootPageNum); err != nil {
		return err
	}
	// already recorded in the store
	return t.root.MarkAsRoot(false)
}

func (t *Tree) IsOpen() bool {
	return t.store != nil && t.pageSize > 0
}

func (t *Tree) checkForOpenStore() error {
	if !t.IsOpen() {
		return ErrNoStore
	}
	return nil
}

func (t *Tree) checkRecord(k []byte) error {
	if err := t.checkForOpenStore(); err != nil {
		return err
	}
	if t.cmp == nil {
		return ErrNoComparator
	}
	if len(k) != int(t.recSize) {
		return errors.Wrapf(ErrInvalidArgument, "record len(%d) != recSize(%d)", len(k), t.recSize)
	}
	return nil
}

// Insert adds a record. Duplicates are allowed.
func (t *Tree) Insert(k []byte) error {
	if err := t.checkRecord(k); err != nil {
		return err
	}
	if err := t.root.Read(t.rootPageNum); err != nil {
		return err
	}
	if t.root.IsFull() {
		// with order 1 a split leaves both halves empty and the new root
		// full again, so such a tree holds a single record
		if t.order == 1 {
			return errors.Wrapf(ErrNodeFull, "root page(%d) of an order 1 tree is full", t.root.num)
		}
		if err := t.growRoot(); err != nil {
			return err
		}
	}
	return t.root.InsertNonFull(k)
}

// growRoot puts a new empty root above the full one and splits the old root
// as its only child.
func (t *Tree) growRoot() error {
	old := t.root.num
	if err := t.allocNewRootPage(t.root); err != nil {
		return err
	}
	if err := t.root.SetCursor(0, old); err != nil {
		return err
	}
	if err := t.root.SplitChild(0); err != nil {
		return err
	}
	if err := t.root.MarkAsRoot(true); err != nil {
		return err
	}
	t.stat.rootGrowths.Add(1)
	t.logger.Debug("b-tree root grown", "oldRoot", old, "newRoot", t.root.num)
	return nil
}

// Search returns a copy of the first record equal to k.
func (t *Tree) Search(k []byte) ([]byte, bool, error) {
	if err := t.checkRecord(k); err != nil {
		return nil, false, err
	}
	if err := t.root.Read(t.rootPageNum); err != nil {
		return nil, false, err
	}
	return t.root.Search(k)
}

// SearchAll appends a copy of every record equal to k to dst.
func (t *Tree) SearchAll(k []byte, dst [][]byte) ([][]byte, error) {
	if err := t.checkRecord(k); err != nil {
		return dst, err
	}
	if err := t.root.Read(t.rootPageNum); err != nil {
		return dst, err
	}
	return t.root.SearchAll(k, dst)
}

// AllocPage appends a new page with keyCount keys to the store and binds p to it.
func (t *Tree) AllocPage(p *Page, keyCount int, isLeaf bool) (uint32, error) {
	if err := t.checkForOpenStore(); err != nil {
		return invalidPageNum, err
	}
	if err := t.checkKeyCountErr(keyCount, p.IsRoot()); err != nil {
		return invalidPageNum, err
	}
	return t.allocPageInternal(p, keyCount, p.IsRoot(), isLeaf)
}

func (t *Tree) allocNewRootPage(p *Page) error {
	if err := t.checkForOpenStore(); err != nil {
		return err
	}
	_, err := t.allocPageInternal(p, 0, true, false)
	return err
}

func (t *Tree) allocPageInternal(p *Page, keyCount int, isRoot, isLeaf bool) (uint32, error) {
	p.realloc(t.pageSize)
	p.clear()
	if err := p.setKeyCountLeaf(keyCount, isRoot, isLeaf); err != nil {
		return invalidPageNum, err
	}
	pgId := t.lastPageNum + 1
	if err := t.writeAt(p.data, pageOffset(t.pageSize, pgId)); err != nil {
		return invalidPageNum, errors.WithMessagef(err, "append page(%d)", pgId)
	}
	t.lastPageNum = pgId
	if err := t.writePageCounter(); err != nil {
		return invalidPageNum, err
	}
	p.num = pgId
	t.stat.pageAllocs.Add(1)
	t.logger.Debug("page allocated", "pgId", pgId, "keys", keyCount, "leaf", isLeaf)
	return pgId, nil
}

func (t *Tree) checkPageNum(pgId uint32) error {
	if pgId == invalidPageNum || pgId > t.lastPageNum {
		return errors.Wrapf(ErrInvalidArgument, "page(%d) not exists, lastPageNum=%d", pgId, t.lastPageNum)
	}
	return nil
}

func (t *Tree) readPage(pgId uint32, dst []byte) error {
	if err := t.checkForOpenStore(); err != nil {
		return err
	}
	if err := t.checkPageNum(pgId); err != nil {
		return err
	}
	if err := t.readAt(dst, pageOffset(t.pageSize, pgId)); err != nil {
		return errors.WithMessagef(err, "read page(%d)", pgId)
	}
	t.stat.pageReads.Add(1)
	return nil
}

func (t *Tree) writePage(pgId uint32, src []byte) error {
	if err := t.checkForOpenStore(); err != nil {
		return err
	}
	if err := t.checkPageNum(pgId); err != nil {
		return err
	}
	if err := t.writeAt(src, pageOffset(t.pageSize, pgId)); err != nil {
		return errors.WithMessagef(err, "write page(%d)", pgId)
	}
	t.stat.pageWrites.Add(1)
	return nil
}

func (t *Tree) readAt(buf []byte, off int64) error {
	n, err := t.store.ReadAt(buf, off)
	if n == len(buf) {
		return nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return corrupt(err, "read %d bytes at %d", len(buf), off)
}

func (t *Tree) writeAt(buf []byte, off int64) error {
	n, err := t.store.WriteAt(buf, off)
	if err == nil && n != len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return corrupt(err, "write %d bytes at %d", len(buf), off)
	}
	return nil
}

func (t *Tree) writePageCounter() error {
	buf := make([]byte, pageCounterSize)
	byteOrder.PutUint32(buf, t.lastPageNum)
	return t.writeAt(buf, pageCounterOffset)
}

func (t *Tree) readPageCounter() error {
	buf := make([]byte, pageCounterSize)
	if err := t.readAt(buf, pageCounterOffset); err != nil {
		return err
	}
	t.lastPageNum = byteOrder.Uint32(buf)
	return nil
}

func (t *Tree) writeRootPageNum() error {
	buf := make([]byte, rootPageNumSize)
	byteOrder.PutUint32(buf, t.rootPageNum)
	return t.writeAt(buf, rootPageNumOffset)
}

func (t *Tree) readRootPageNum() error {
	buf := make([]byte, rootPageNumSize)
	if err := t.readAt(buf, rootPageNumOffset); err != nil {
		return err
	}
	t.rootPageNum = byteOrder.Uint32(buf)
	return nil
}

func (t *Tree) setRootPageNum(pgId uint32, persist bool) error {
	t.rootPageNum = pgId
	if !persist {
		return nil
	}
	return t.writeRootPageNum()
}

func (t *Tree) SetComparator(cmp Comparator) {
	t.cmp = cmp
}

func (t *Tree) Comparator() Comparator {
	return t.cmp
}

// NewPage returns an unbound page of this tree.
func (t *Tree) NewPage() *Page {
	p := &Page{tree: t}
	if t.IsOpen() {
		p.realloc(t.pageSize)
	}
	return p
}

func (t *Tree) Stats() ExportStat {
	return t.stat.export()
}

func (t *Tree) Order() uint16         { return t.order }
func (t *Tree) RecordSize() uint16    { return t.recSize }
func (t *Tree) MinKeys() int          { return t.minKeys }
func (t *Tree) MaxKeys() int          { return t.maxKeys }
func (t *Tree) KeyAreaSize() int      { return t.keyAreaSize }
func (t *Tree) CursorAreaOffset() int { return t.cursorAreaOffset }
func (t *Tree) PageSize() int         { return t.pageSize }
func (t *Tree) LastPageNum() uint32   { return t.lastPageNum }
func (t *Tree) RootPageNum() uint32   { return t.rootPageNum }
