package workflow

import (
	"context"
	"os"

	. "github.com/warpfork/go-errcat"

	"github.com/durden/jist"
	"github.com/durden/jist/fsOp"
	"github.com/durden/jist/gist"
)

// Clone fetches a gist into a local directory and expands it.  When dest is
// empty a name is guessed from the gist's metadata (a failed metadata lookup
// is logged and falls back to an id-derived name).  An already-existing
// destination skips the clone step, so re-running is harmless.
// Returns the gist's web URL.
func (w *Workflow) Clone(ctx context.Context, id, dest string) (string, error) {
	if dest == "" {
		meta, err := w.API.Fetch(ctx, id)
		if err != nil {
			w.Log.Warn("could not fetch gist metadata, deriving a name from the id", "gist", id, "err", err)
			meta = nil
		}
		dest = gist.GuessDest(id, meta)
		w.Log.Info("guessed destination", "dest", dest)
	}
	destPath := w.resolve(dest)
	if _, err := os.Stat(destPath); err == nil {
		w.Log.Info("destination already exists, skipping clone", "dest", destPath)
	} else {
		if err := w.NewVCS(w.resolve("")).Clone(ctx, jist.GistRemoteURL(id), dest); err != nil {
			return "", err
		}
	}
	if err := w.NewVCS(destPath).Pull(ctx); err != nil {
		return "", err
	}
	if err := fsOp.Expand(w.NewFS(destPath), w.Separator); err != nil {
		return "", err
	}
	return jist.GistWebURL(id), nil
}

// Init turns a directory into a gist-backed project: git init, create the
// remote gist, point origin at it, and run the push workflow.
// Returns the new gist's web URL.
func (w *Workflow) Init(ctx context.Context, path, description string) (string, error) {
	root := w.resolve(path)
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", Errorf(jist.ErrFS, "cannot create %s: %s", root, err)
	}
	vcs := w.NewVCS(root)
	if err := vcs.Init(ctx); err != nil {
		return "", err
	}
	id, err := w.API.Create(ctx, description)
	if err != nil {
		return "", err
	}
	w.Log.Info("created gist", "gist", id)
	if err := vcs.AddRemote(ctx, jist.RemoteName, jist.GistRemoteURL(id)); err != nil {
		return "", err
	}
	if _, err := w.Push(ctx, path); err != nil {
		return "", err
	}
	return jist.GistWebURL(id), nil
}

// Push snapshots the tree to the remote: flatten, stage and commit, force
// push, expand.  Any failure after the flatten triggers a best-effort expand
// before the original error propagates, so the tree is not left flattened --
// unless the restore itself fails, in which case that failure wins and the
// tree stays flat.  Returns the remote URL.
func (w *Workflow) Push(ctx context.Context, path string) (string, error) {
	root := w.resolve(path)
	afs := w.NewFS(root)
	w.Log.Debug("flattening tree", "root", root)
	if err := fsOp.Flatten(afs, w.Separator); err != nil {
		return "", err
	}
	vcs := w.NewVCS(root)
	if err := w.snapshotAndPush(ctx, vcs); err != nil {
		w.Log.Debug("push failed, restoring expanded tree", "root", root, "err", err)
		if exErr := fsOp.Expand(afs, w.Separator); exErr != nil {
			return "", exErr
		}
		return "", err
	}
	if err := fsOp.Expand(afs, w.Separator); err != nil {
		return "", err
	}
	return vcs.RemoteURL()
}

func (w *Workflow) snapshotAndPush(ctx context.Context, vcs VCS) error {
	if err := vcs.AddAll(ctx); err != nil {
		return err
	}
	if err := vcs.Commit(ctx, jist.CommitMessage); err != nil {
		return err
	}
	return vcs.PushForce(ctx)
}

// Pull fetches the remote's flattened state and expands it, so the tree
// is left in expanded form like every other command leaves it.
func (w *Workflow) Pull(ctx context.Context) error {
	root := w.resolve("")
	if err := w.NewVCS(root).Pull(ctx); err != nil {
		return err
	}
	return fsOp.Expand(w.NewFS(root), w.Separator)
}

// Commit stages everything and commits with the fixed message.
// No flatten/expand involved.
func (w *Workflow) Commit(ctx context.Context) error {
	vcs := w.NewVCS(w.resolve(""))
	if err := vcs.AddAll(ctx); err != nil {
		return err
	}
	return vcs.Commit(ctx, jist.CommitMessage)
}

// Flatten runs the flatten transform by itself.
func (w *Workflow) Flatten(path string) error {
	return fsOp.Flatten(w.NewFS(w.resolve(path)), w.Separator)
}

// Expand runs the expand transform by itself.
func (w *Workflow) Expand(path string) error {
	return fsOp.Expand(w.NewFS(w.resolve(path)), w.Separator)
}
