// Package files groups the filesystem-facing packages.
//
// Sub-packages:
//   - filesystem: filesystem abstraction over afero (OS and in-memory)
//   - policy: which paths every traversal skips
//   - walker: iterative depth-first traversal shared by display and search
//
// # Usage
//
//	fsProvider := filesystem.NewOSFileSystem()
//	w := walker.New(fsProvider, policy.Default(), logger)
//	result, err := w.Walk("/srv/data", func(e fsnav.DirectoryEntry) fsnav.VisitAction {
//	    fmt.Println(e.Kind.Tag(), e.Path)
//	    return fsnav.Continue
//	})
package files
