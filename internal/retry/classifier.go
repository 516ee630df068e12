package retry

import (
	"errors"
	"syscall"
)

// FilesystemErrorClassifier implements fsnav.ErrorClassifier for OS errors
// from file removal and rename.
type FilesystemErrorClassifier struct{}

// NewFilesystemErrorClassifier creates a new filesystem error classifier.
func NewFilesystemErrorClassifier() *FilesystemErrorClassifier {
	return &FilesystemErrorClassifier{}
}

var transientErrnos = []error{
	syscall.EBUSY,
	syscall.EAGAIN,
	syscall.EINTR,
	syscall.ETXTBSY,
}

// IsTransient reports whether err wraps an errno that usually clears on its own.
func (c *FilesystemErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}
	for _, errno := range transientErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	for _, errno := range platformTransientErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
