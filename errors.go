package jist

// ErrorCategory is the grouping type for all errors raised by jist.
// Errors are tagged with one of these via the errcat package, so callers
// can branch on `errcat.Category(err)` rather than string-matching.
type ErrorCategory string

const (
	// ErrUsage covers malformed invocations: unknown commands, missing
	// arguments, or required configuration (e.g. an API token) not present.
	ErrUsage ErrorCategory = "jist-usage-error"

	// ErrGit is raised when the git subprocess cannot be spawned or exits
	// non-zero.  The error message carries the subprocess's stderr (or its
	// stdout, when stderr was empty).  Never retried.
	ErrGit ErrorCategory = "jist-git-error"

	// ErrAPI is raised for non-2xx responses or transport failures when
	// talking to the remote hosting API.
	ErrAPI ErrorCategory = "jist-api-error"

	// ErrPathConflict is raised during expand when a decoded filename needs
	// a directory at a path already occupied by a regular file.  The
	// conflicting file is left untouched and the whole expand aborts.
	ErrPathConflict ErrorCategory = "jist-path-conflict"

	// ErrFS is the catchall for filesystem trouble during flatten/expand
	// (failed renames, unreadable directories).  There is no transactional
	// guarantee: a partial flatten may be left on disk.
	ErrFS ErrorCategory = "jist-fs-error"

	// ErrCancelled is raised when a context cancelled an operation part-way.
	ErrCancelled ErrorCategory = "jist-cancelled"
)
