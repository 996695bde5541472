package pagebt

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nyan233/pagebt/internal/sys"
	"github.com/pkg/errors"
)

type Config struct {
	RootDir    string
	Name       string
	Order      uint16
	RecordSize uint16
	Comparator Comparator
	Logger     *slog.Logger
	// SyncOnClose flushes the file to stable storage before it is closed.
	SyncOnClose bool
}

func (c *Config) Path() string {
	return filepath.Join(c.RootDir, c.Name)
}

// FileTree binds a Tree to an exclusively locked OS file.
type FileTree struct {
	*Tree
	cfg  Config
	file *os.File
}

func NewFileTree(cfg Config) *FileTree {
	return &FileTree{
		Tree: NewTree(nil, cfg.Comparator, cfg.Logger),
		cfg:  cfg,
	}
}

// Create makes a new tree file with cfg.Order and cfg.RecordSize, replacing
// any existing content.
func (ft *FileTree) Create() error {
	if ft.IsOpen() {
		return ErrAlreadyOpen
	}
	if err := checkTreeParams(ft.cfg.Order, ft.cfg.RecordSize); err != nil {
		return err
	}
	if err := ft.openFile(true); err != nil {
		return errors.WithMessage(err, "can't open file for writing")
	}
	if err := ft.file.Truncate(0); err != nil {
		ft.closeFile()
		return corrupt(err, "truncate %s", ft.cfg.Path())
	}
	ft.bind(ft.file)
	if err := ft.Tree.Create(ft.cfg.Order, ft.cfg.RecordSize); err != nil {
		ft.closeFile()
		return err
	}
	return nil
}

// Open loads an existing tree file. Order and record size come from its header.
func (ft *FileTree) Open() error {
	if ft.IsOpen() {
		return ErrAlreadyOpen
	}
	if err := ft.openFile(false); err != nil {
		return errors.WithMessage(err, "can't open file for reading")
	}
	ft.bind(ft.file)
	if err := ft.Load(); err != nil {
		ft.closeFile()
		return err
	}
	return nil
}

func (ft *FileTree) openFile(create bool) error {
	path := ft.cfg.Path()
	file, err := sys.OpenFile(path, create)
	if err != nil {
		return corrupt(err, "open %s", path)
	}
	if err = sys.Lock(file); err != nil {
		_ = file.Close()
		if errors.Is(err, sys.ErrWouldBlock) {
			return errors.Wrap(ErrLocked, path)
		}
		return corrupt(err, "lock %s", path)
	}
	ft.file = file
	return nil
}

// closeFile releases the file and resets the tree after a failed create or open.
func (ft *FileTree) closeFile() {
	_ = sys.Unlock(ft.file)
	_ = ft.file.Close()
	ft.file = nil
	_ = ft.Tree.Close()
}

func (ft *FileTree) IsOpen() bool {
	return ft.file != nil
}

func (ft *FileTree) Sync() error {
	if !ft.IsOpen() {
		return ErrNoStore
	}
	return sys.Fsync(ft.file)
}

// Close is safe to call when the file is not open.
func (ft *FileTree) Close() (err error) {
	if !ft.IsOpen() {
		return nil
	}
	if ft.cfg.SyncOnClose {
		err = sys.Fsync(ft.file)
	}
	if uerr := sys.Unlock(ft.file); err == nil {
		err = uerr
	}
	if cerr := ft.file.Close(); err == nil {
		err = cerr
	}
	ft.file = nil
	_ = ft.Tree.Close()
	ft.logger.Info("b-tree file closed", "path", ft.cfg.Path())
	return err
}
