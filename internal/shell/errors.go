package shell

import (
	"errors"
	"fmt"

	"github.com/vvka-141/fsnav/pkg/fsnav"
)

// usageError reports a malformed command line.
type usageError string

func (e usageError) Error() string { return string(e) }

// describe turns a command failure into the text printed after "Error: ".
func describe(err error) string {
	var pathErr *fsnav.PathError
	path := ""
	if errors.As(err, &pathErr) {
		path = pathErr.Path
	}

	switch fsnav.KindOf(err) {
	case fsnav.ErrNotFound:
		return fmt.Sprintf("Path '%s' does not exist", path)
	case fsnav.ErrNotADirectory:
		return fmt.Sprintf("Path '%s' is not a directory", path)
	case fsnav.ErrAlreadyExists:
		return fmt.Sprintf("'%s' already exists", path)
	case fsnav.ErrPermissionDenied:
		return fmt.Sprintf("Cannot access '%s': permission denied", path)
	case fsnav.ErrDeleteCurrentDirectory:
		return "Cannot delete the current working directory"
	case fsnav.ErrRenameCurrentDirectory:
		return "Cannot rename the current working directory"
	case fsnav.ErrNoHomeDirectory:
		return "Could not determine home directory"
	case fsnav.ErrEmptySearchTerm:
		return "Search term cannot be empty"
	case fsnav.ErrApprovalDenied:
		return fmt.Sprintf("Deletion of '%s' cancelled", path)
	case fsnav.ErrIO:
		if pathErr != nil && pathErr.Err != nil {
			return fmt.Sprintf("%s '%s' failed: %v", pathErr.Op, path, pathErr.Err)
		}
	}

	return err.Error()
}
