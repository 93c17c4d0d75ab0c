package gist

import (
	"path"
	"strings"
)

/*
	Picks a destination directory name for a clone when the caller gave
	none, in order of preference:

	  1. the first word of the gist's description, lowercased;
	  2. the lexicographically greatest lowercased file stem;
	  3. a name derived from the gist id itself.

	Metadata may be nil (a failed lookup); only the id fallback applies then.
*/
func GuessDest(id string, meta *Metadata) string {
	if meta != nil {
		if fields := strings.Fields(meta.Description); len(fields) > 0 {
			return strings.ToLower(fields[0])
		}
		best := ""
		for _, name := range meta.Files {
			stem := strings.ToLower(strings.TrimSuffix(name, path.Ext(name)))
			if stem > best {
				best = stem
			}
		}
		if best != "" {
			return best
		}
	}
	name := "gist-" + id
	if len(name) > 10 {
		name = name[:10]
	}
	return name
}
