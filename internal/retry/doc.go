// Package retry repeats filesystem mutations that fail for transient reasons,
// such as a file held open by another process or an interrupted system call.
//
// # Example Usage
//
//	executor := retry.NewExecutor(
//	    retry.NewFilesystemErrorClassifier(),
//	    retry.NewBackoff(3),
//	)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return os.RemoveAll(path)
//	})
//
// # Error Classification
//
// FilesystemErrorClassifier treats EBUSY, EAGAIN, EINTR and ETXTBSY as
// transient everywhere, plus sharing and lock violations on Windows.
// Missing files, permission problems and everything else fail immediately.
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. WithOnRetry returns a copy.
package retry
