package pagebt

import "github.com/pkg/errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotReady        = errors.New("tree not ready")
	ErrCorrupt         = errors.New("store corrupt or unavailable")
	ErrNodeFull        = errors.New("node is full")
	ErrAlreadyOpen     = errors.New("b-tree file is already open")
	ErrLocked          = errors.New("b-tree file is locked by another owner")
)

// corruptError marks a store failure as ErrCorrupt and keeps the store's
// own error reachable through Unwrap.
type corruptError struct {
	cause error
}

func (e *corruptError) Error() string {
	return e.cause.Error() + ": " + ErrCorrupt.Error()
}

func (e *corruptError) Unwrap() error {
	return e.cause
}

func (e *corruptError) Is(target error) bool {
	return target == ErrCorrupt
}

func corrupt(cause error, format string, args ...any) error {
	return errors.WithStack(&corruptError{cause: errors.WithMessagef(cause, format, args...)})
}

var (
	ErrNoStore       = errors.WithMessage(ErrNotReady, "store is not open")
	ErrNoComparator  = errors.WithMessage(ErrNotReady, "comparator not set")
	ErrInvalidHeader = errors.WithMessage(ErrCorrupt, "not a valid b-tree file")
)
