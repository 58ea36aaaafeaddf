package adapterimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/morikuni/failure/v2"
	"golang.org/x/sync/singleflight"
)

var theColonyDescriptor = platform.Descriptor{
	ID:         platform.TheColony,
	Name:       "The Colony",
	BaseURL:    "https://thecolony.cc",
	ProbePath:  "/api/v1/posts?limit=1",
	BrowserURL: "https://thecolony.cc",
}

// TheColony is the adapter for thecolony.cc.
// The API key is exchanged for a JWT that is reused until the platform rejects it.
type TheColony struct {
	feed

	exchanges singleflight.Group

	mu  sync.Mutex
	jwt string
}

func NewTheColony(o Options) *TheColony {
	a := &TheColony{
		feed: feed{
			base:       newBase(theColonyDescriptor, o),
			route:      route{path: "/api/v1/posts", envelope: []string{"posts", "results"}},
			auth:       platform.AuthOptional,
			limitParam: true,
			query: func(opts platform.DiscoverOptions, q url.Values) {
				if opts.Board != "" {
					q.Set("colony", opts.Board)
				}
			},
		},
	}
	a.feed.token = a.token
	a.feed.expire = a.expire
	return a
}

// token returns the cached JWT, exchanging the API key when there is none.
// Concurrent callers share a single exchange and the lock is not held across it.
func (a *TheColony) token(ctx context.Context) (string, error) {
	a.mu.Lock()
	jwt := a.jwt
	a.mu.Unlock()
	if jwt != "" {
		return jwt, nil
	}

	v, err, _ := a.exchanges.Do("jwt", func() (any, error) {
		return a.exchange(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (a *TheColony) exchange(ctx context.Context) (string, error) {
	payload, err := a.do(ctx, call{
		method: http.MethodPost,
		path:   "/api/v1/auth/token",
		body:   map[string]any{"api_key": a.credential},
		auth:   platform.AuthNone,
	})
	if err != nil {
		return "", err
	}
	jwt := toItem(payload).String("access_token", "token")
	if jwt == "" {
		return "", failure.New(platform.ErrMalformedResponse,
			failure.Message(fmt.Sprintf("%s token exchange returned no token", a.desc.Name)),
			failure.Context{
				"platform": a.desc.ID.String(),
			},
		)
	}

	a.mu.Lock()
	a.jwt = jwt
	a.mu.Unlock()
	return jwt, nil
}

// expire forgets jwt unless another caller already replaced it
func (a *TheColony) expire(jwt string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.jwt == jwt {
		a.jwt = ""
	}
}

func (a *TheColony) sendAuthed(ctx context.Context, path string, body any) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	data, err := a.authed(ctx, call{
		method: http.MethodPost,
		path:   path,
		body:   body,
		auth:   platform.AuthRequired,
	})
	if err != nil {
		return nil, err
	}
	payload, err := a.decode(data)
	if err != nil {
		return nil, err
	}
	return toItem(payload), nil
}

func (a *TheColony) Post(ctx context.Context, post platform.Post) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if post.Title == "" {
		return nil, invalidArgument(a.desc, "The Colony posts need a title")
	}
	body := map[string]any{
		"title":     post.Title,
		"body":      post.Content,
		"post_type": "discussion",
	}
	if post.Board != "" {
		body["colony"] = post.Board
	}
	return a.sendAuthed(ctx, "/api/v1/posts", body)
}

func (a *TheColony) Comment(ctx context.Context, c platform.Comment) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if c.Target == "" {
		return nil, invalidArgument(a.desc, "The Colony comments need a post id")
	}
	path := fmt.Sprintf("/api/v1/posts/%s/comments", url.PathEscape(c.Target))
	return a.sendAuthed(ctx, path, map[string]any{"body": c.Content})
}
