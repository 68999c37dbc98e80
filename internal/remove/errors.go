package remove

import (
	"errors"
	"os"
	"syscall"
)

// skipReason condenses a removal failure into the short reason recorded on
// a skipped outcome. Every recoverable failure maps here; the run continues
// regardless.
func skipReason(err error) string {
	if os.IsNotExist(err) {
		return "vanished before removal"
	}
	if os.IsPermission(err) {
		return "permission denied"
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EXDEV:
			return "cross-device move"
		case syscall.EBUSY, syscall.ETXTBSY:
			return "in use"
		case syscall.ENOTEMPTY:
			return "directory not empty"
		}
	}

	return err.Error()
}
