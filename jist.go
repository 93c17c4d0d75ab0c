package jist

import "fmt"

// Vocabulary shared by every workflow.
//
// The flattened filename scheme (path segments joined by Separator) is the
// on-disk format exchanged with the remote gist service; it must stay stable
// so that gists created by earlier versions keep round-tripping.
const (
	// DefaultSeparator is the token that stands in for '/' in flattened
	// filenames.  Overridable per invocation, but the segments of a path
	// must never contain it -- that contract is the caller's to keep.
	DefaultSeparator = "___"

	// MetadataDir is the reserved directory holding the VCS's own state.
	// Flatten never descends into it; expand never interprets its contents.
	MetadataDir = ".git"

	// CommitMessage is the fixed message used for every snapshot commit.
	CommitMessage = "jist synchronize"

	// PrimaryBranch and RemoteName pin the refs all push/pull traffic uses.
	PrimaryBranch = "master"
	RemoteName    = "origin"

	// UserAgent identifies us to the remote hosting API.
	UserAgent = "jist/0.1"
)

// GistRemoteURL returns the git remote address for a gist id.
func GistRemoteURL(id string) string {
	return fmt.Sprintf("git@gist.github.com:%s.git", id)
}

// GistWebURL returns the browser-facing address for a gist id.
func GistWebURL(id string) string {
	return fmt.Sprintf("https://gist.github.com/%s", id)
}

type ExitCode int

const (
	ExitSuccess ExitCode = 0
	ExitFailure ExitCode = 1
)
