/*
	Helpers for loading contextual config.

	Config for jist means "who you are and how to reach the hosting API":
	a username, an API token, and the separator token for flattened names.
	Resolution order is command-line flags, then environment variables,
	then the VCS tool's global configuration store (the `jist.*` namespace
	of the git global config).
*/
package config

import (
	"context"
	"os"

	"github.com/durden/jist"
)

// GlobalReader is the slice of the git collaborator config resolution needs.
type GlobalReader interface {
	ConfigGlobal(ctx context.Context, key string) (string, error)
}

// Flags carries the values given on the command line; empty means unset.
type Flags struct {
	User      string
	Token     string
	Separator string
}

// Config is the fully resolved configuration for one invocation.
type Config struct {
	User      string
	Token     string
	Separator string
}

// Resolve merges flags, environment, and the VCS global config.  A lookup
// miss in the global config is not an error, just an absent value; commands
// that genuinely need a user or token enforce that themselves.
func Resolve(ctx context.Context, vcs GlobalReader, flags Flags) Config {
	cfg := Config{
		User:      firstOf(flags.User, os.Getenv("JIST_USER")),
		Token:     firstOf(flags.Token, os.Getenv("JIST_TOKEN")),
		Separator: firstOf(flags.Separator, os.Getenv("JIST_SEPARATOR")),
	}
	if cfg.User == "" {
		cfg.User, _ = vcs.ConfigGlobal(ctx, "jist.user")
	}
	if cfg.Token == "" {
		cfg.Token, _ = vcs.ConfigGlobal(ctx, "jist.token")
	}
	if cfg.Separator == "" {
		cfg.Separator = jist.DefaultSeparator
	}
	return cfg
}

func firstOf(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
