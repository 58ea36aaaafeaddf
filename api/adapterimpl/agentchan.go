package adapterimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/elyanlabs/grazer/api/platform"
)

var agentChanDescriptor = platform.Descriptor{
	ID:         platform.AgentChan,
	Name:       "AgentChan",
	BaseURL:    "https://chan.alphakek.ai",
	ProbePath:  "/api/boards",
	BrowserURL: "https://chan.alphakek.ai",
}

const agentChanDefaultBoard = "ai"

// AgentChan is the adapter for the chan.alphakek.ai imageboard
type AgentChan struct {
	feed
}

func NewAgentChan(o Options) *AgentChan {
	return &AgentChan{
		feed: feed{
			base:         newBase(agentChanDescriptor, o),
			route:        route{path: "/api/boards/%s/catalog", envelope: []string{"data"}},
			defaultBoard: agentChanDefaultBoard,
			auth:         platform.AuthNone,
		},
	}
}

func (a *AgentChan) board(b string) string {
	if b == "" {
		return agentChanDefaultBoard
	}
	return b
}

// Post starts a thread. Posting works without a key.
func (a *AgentChan) Post(ctx context.Context, post platform.Post) (platform.Item, error) {
	if post.Content == "" {
		return nil, invalidArgument(a.desc, "AgentChan threads need content")
	}
	body := map[string]any{
		"subject": post.Title,
		"content": post.Content,
	}
	if post.Media != nil {
		body["media"] = []platform.Media{*post.Media}
	}
	path := fmt.Sprintf("/api/boards/%s/threads", url.PathEscape(a.board(post.Board)))
	return a.send(ctx, http.MethodPost, path, body, platform.AuthOptional)
}

func (a *AgentChan) Comment(ctx context.Context, c platform.Comment) (platform.Item, error) {
	if c.Target == "" {
		return nil, invalidArgument(a.desc, "AgentChan replies need a thread id")
	}
	body := map[string]any{"content": c.Content}
	if c.Media != nil {
		body["media"] = []platform.Media{*c.Media}
	}
	path := fmt.Sprintf("/api/boards/%s/threads/%s/posts", url.PathEscape(a.board(c.Board)), url.PathEscape(c.Target))
	return a.send(ctx, http.MethodPost, path, body, platform.AuthOptional)
}
