/*
	Package workflow sequences the collaborators: flatten/expand on the
	local tree, the git subprocess for snapshots and transport, and the
	hosting API for gist creation and metadata.

	The working root is an explicit value threaded through every call;
	the process working directory is never changed.
*/
package workflow

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/durden/jist"
	"github.com/durden/jist/gist"
	"github.com/durden/jist/gitcmd"
)

// VCS is the slice of the git collaborator the workflows drive.
type VCS interface {
	Init(ctx context.Context) error
	Clone(ctx context.Context, remote, dest string) error
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	PushForce(ctx context.Context) error
	Pull(ctx context.Context) error
	AddRemote(ctx context.Context, name, url string) error
	RemoteURL() (string, error)
}

// API is the slice of the hosting service the workflows drive.
type API interface {
	Fetch(ctx context.Context, id string) (*gist.Metadata, error)
	Create(ctx context.Context, description string) (string, error)
}

// Workflow holds one invocation's collaborators and settings.
type Workflow struct {
	Root      string // base dir that relative path arguments resolve against
	Separator string
	API       API
	Log       *slog.Logger

	// Factories for the per-directory collaborators, swappable in tests.
	NewVCS func(dir string) VCS
	NewFS  func(dir string) billy.Filesystem
}

// New wires a Workflow to the real collaborators.  An empty root means the
// process's working directory (as a value, not via chdir).
func New(root, separator string, api API, log *slog.Logger) *Workflow {
	if separator == "" {
		separator = jist.DefaultSeparator
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Workflow{
		Root:      root,
		Separator: separator,
		API:       api,
		Log:       log,
		NewVCS:    func(dir string) VCS { return gitcmd.Client{Dir: dir} },
		NewFS:     func(dir string) billy.Filesystem { return osfs.New(dir) },
	}
}

// resolve turns an optional path argument into a concrete directory.
func (w *Workflow) resolve(path string) string {
	base := w.Root
	if base == "" {
		base = "."
	}
	switch {
	case path == "":
		return base
	case filepath.IsAbs(path):
		return path
	default:
		return filepath.Join(base, path)
	}
}
