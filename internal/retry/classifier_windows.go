//go:build windows

package retry

import "syscall"

// ERROR_SHARING_VIOLATION and ERROR_LOCK_VIOLATION: another process has the file open.
var platformTransientErrnos = []error{
	syscall.Errno(32),
	syscall.Errno(33),
}
