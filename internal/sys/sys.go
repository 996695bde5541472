// Package sys wraps the OS file primitives the tree file needs: opening,
// an exclusive advisory lock and flushing to stable storage.
package sys

import "errors"

// ErrWouldBlock is returned by Lock when another owner holds the lock.
var ErrWouldBlock = errors.New("file is locked")
