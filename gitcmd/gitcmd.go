/*
	Package gitcmd shells out to the git tool.

	Every operation returns a structured result: exit code 0 yields the
	trimmed stdout, a non-zero exit yields an error of category ErrGit
	carrying the subprocess's stderr (or stdout, when stderr was empty).
	Nothing is retried; callers decide what is fatal.
*/
package gitcmd

import (
	"bytes"
	"context"
	"strings"

	"os/exec"

	. "github.com/warpfork/go-errcat"
	git "gopkg.in/src-d/go-git.v4"

	"github.com/durden/jist"
)

// Client runs git against one repository directory.
// A zero Dir means the process's working directory.
type Client struct {
	Dir string
}

// Run invokes git with the given argument list, per the package contract.
func (c Client) Run(ctx context.Context, args ...string) (string, error) {
	argv := args
	if c.Dir != "" {
		argv = append([]string{"-C", c.Dir}, args...)
	}
	cmd := exec.CommandContext(ctx, "git", argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return strings.TrimSpace(stdout.String()), nil
	}
	if ctx.Err() != nil {
		return "", Errorf(jist.ErrCancelled, "git %s: %s", args[0], ctx.Err())
	}
	diag := strings.TrimSpace(stderr.String())
	if diag == "" {
		diag = strings.TrimSpace(stdout.String())
	}
	if diag == "" {
		diag = err.Error()
	}
	return "", Errorf(jist.ErrGit, "git %s: %s", args[0], diag)
}

func (c Client) Init(ctx context.Context) error {
	_, err := c.Run(ctx, "init")
	return err
}

func (c Client) Clone(ctx context.Context, remote, dest string) error {
	_, err := c.Run(ctx, "clone", remote, dest)
	return err
}

// AddAll stages everything under the repository, untracked files included.
func (c Client) AddAll(ctx context.Context) error {
	_, err := c.Run(ctx, "add", ".")
	return err
}

func (c Client) Commit(ctx context.Context, message string) error {
	_, err := c.Run(ctx, "commit", "-a", "-m", message)
	return err
}

// PushForce force-pushes the primary branch to the gist remote.  The remote
// side only ever holds jist's own flattened snapshots, so clobbering it is
// the intended behavior.
func (c Client) PushForce(ctx context.Context) error {
	_, err := c.Run(ctx, "push", "-f", jist.RemoteName, jist.PrimaryBranch)
	return err
}

func (c Client) Pull(ctx context.Context) error {
	_, err := c.Run(ctx, "pull", jist.RemoteName, jist.PrimaryBranch)
	return err
}

func (c Client) AddRemote(ctx context.Context, name, url string) error {
	_, err := c.Run(ctx, "remote", "add", name, url)
	return err
}

// ConfigGlobal reads one key from the tool's global configuration store.
// An unset key surfaces as an ErrGit error (git exits 1 for it), which
// callers usually treat as "no value".
func (c Client) ConfigGlobal(ctx context.Context, key string) (string, error) {
	return c.Run(ctx, "config", "--global", "--get", key)
}

// RemoteURL reads the origin remote's address straight out of the local
// repository config.  A pure read, so no subprocess involved.
func (c Client) RemoteURL() (string, error) {
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", Errorf(jist.ErrGit, "cannot open repository at %s: %s", dir, err)
	}
	cfg, err := repo.Config()
	if err != nil {
		return "", Errorf(jist.ErrGit, "cannot read repository config: %s", err)
	}
	remote, ok := cfg.Remotes[jist.RemoteName]
	if !ok || len(remote.URLs) == 0 {
		return "", Errorf(jist.ErrGit, "repository has no %q remote", jist.RemoteName)
	}
	return remote.URLs[0], nil
}
