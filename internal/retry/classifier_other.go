//go:build !windows

package retry

var platformTransientErrnos []error
