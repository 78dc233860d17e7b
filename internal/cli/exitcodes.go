package cli

import "errors"

// Exit codes for mdtidy.
const (
	// ExitSuccess indicates successful execution with nothing to change.
	ExitSuccess = 0

	// ExitChanges indicates --check found files that would change.
	ExitChanges = 1

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrWouldChange signals that --check found unformatted files. It carries no
// message worth logging; main maps it to ExitChanges.
var ErrWouldChange = errors.New("files would change")
