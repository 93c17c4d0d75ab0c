/*
	Package gist speaks to the remote hosting REST API.

	Exactly two calls are made: fetching a gist's metadata by id, and
	creating a new private gist to obtain an id.  Everything else about the
	gist's life happens over git.
*/
package gist

import (
	"context"
	"net/http"
	"sort"

	"github.com/google/go-github/github"
	. "github.com/warpfork/go-errcat"
	"golang.org/x/oauth2"

	"github.com/durden/jist"
)

// The initial gist must be born with at least one file; this one gets
// clobbered by the first real push.
const (
	placeholderFile = "jist"
	placeholderBody = "created by jist"
)

// Metadata is the slice of remote gist state the workflows care about.
// Fetched on demand, never cached.
type Metadata struct {
	Description string
	Files       []string
}

// Client wraps the hosting API.  Construct with New.
type Client struct {
	gh *github.Client
}

// New builds a client.  The token may be empty (anonymous metadata lookups
// still work against public gists); the username rides along as the
// X-Github-Username header when set.
func New(username, token string) *Client {
	hc := &http.Client{}
	if token != "" {
		hc = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		))
	}
	hc.Transport = &headerTransport{next: hc.Transport, username: username}
	gh := github.NewClient(hc)
	gh.UserAgent = jist.UserAgent
	return &Client{gh: gh}
}

// Fetch retrieves a gist's description and file list.
// Non-2xx responses and transport failures surface as ErrAPI.
func (c *Client) Fetch(ctx context.Context, id string) (*Metadata, error) {
	g, _, err := c.gh.Gists.Get(ctx, id)
	if err != nil {
		return nil, Errorf(jist.ErrAPI, "cannot fetch gist %s: %s", id, err)
	}
	meta := &Metadata{Description: g.GetDescription()}
	for name := range g.Files {
		meta.Files = append(meta.Files, string(name))
	}
	sort.Strings(meta.Files)
	return meta, nil
}

// Create registers a new private gist holding only the placeholder file and
// returns the id the service assigned.
func (c *Client) Create(ctx context.Context, description string) (string, error) {
	g := &github.Gist{
		Description: github.String(description),
		Public:      github.Bool(false),
		Files: map[github.GistFilename]github.GistFile{
			placeholderFile: {Content: github.String(placeholderBody)},
		},
	}
	created, _, err := c.gh.Gists.Create(ctx, g)
	if err != nil {
		return "", Errorf(jist.ErrAPI, "cannot create gist: %s", err)
	}
	if created.GetID() == "" {
		return "", Errorf(jist.ErrAPI, "create response carried no gist id")
	}
	return created.GetID(), nil
}

// headerTransport layers the identifying header onto every request, the same
// way oauth2 layers its Authorization header.
type headerTransport struct {
	next     http.RoundTripper
	username string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	if t.username != "" {
		req = req.Clone(req.Context())
		req.Header.Set("X-Github-Username", t.username)
	}
	return next.RoundTrip(req)
}
