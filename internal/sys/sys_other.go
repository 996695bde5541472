//go:build !unix && !windows

package sys

import "os"

func OpenFile(path string, create bool) (*os.File, error) {
	flags := os.O_RDWR
	if create {
		flags |= os.O_CREATE
	}
	return os.OpenFile(path, flags, 0644)
}

// Lock is a no-op where the platform has no advisory locks.
func Lock(file *os.File) error {
	return nil
}

func Unlock(file *os.File) error {
	return nil
}

func Fsync(file *os.File) error {
	return file.Sync()
}
