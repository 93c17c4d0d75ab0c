package jist

import (
	"github.com/polydawn/refmt/obj/atlas"
)

// Result is the terminal event of a command, serializable for the
// machine-readable output format.
type Result struct {
	URL   string `refmt:"url,omitempty"`
	Error string `refmt:"error,omitempty"`
}

// SetError assigns the error detail, or noops on nil.
func (r *Result) SetError(err error) {
	if err == nil {
		return
	}
	r.Error = err.Error()
}

var Atlas = atlas.MustBuild(
	atlas.BuildEntry(Result{}).StructMap().Autogenerate().Complete(),
)
