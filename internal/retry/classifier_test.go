package retry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilesystemErrorClassifier_IsTransient(t *testing.T) {
	c := NewFilesystemErrorClassifier()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"busy", &os.PathError{Op: "remove", Path: "/x", Err: syscall.EBUSY}, true},
		{"again", &os.LinkError{Op: "rename", Old: "/a", New: "/b", Err: syscall.EAGAIN}, true},
		{"interrupted", syscall.EINTR, true},
		{"text busy wrapped", fmt.Errorf("rm: %w", syscall.ETXTBSY), true},
		{"not exist", &os.PathError{Op: "remove", Path: "/x", Err: syscall.ENOENT}, false},
		{"permission", fs.ErrPermission, false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.IsTransient(tt.err))
		})
	}
}
