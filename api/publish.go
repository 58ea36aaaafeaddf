package api

import (
	"context"
	"fmt"

	"github.com/elyanlabs/grazer/api/adapter"
	"github.com/elyanlabs/grazer/api/imagegen"
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/morikuni/failure/v2"
)

// Image describes media to attach to a post or comment.
// SVG takes precedence over Prompt.
type Image struct {
	SVG    string
	Prompt string

	Template string
	Palette  string
}

func (i Image) empty() bool {
	return i.SVG == "" && i.Prompt == ""
}

// PostRequest is a post plus optional generated media
type PostRequest struct {
	platform.Post
	Image Image
}

// CommentRequest is a comment plus optional generated media
type CommentRequest struct {
	platform.Comment
	Image Image
}

// Synthesize generates an SVG image, preferring the LLM when one is configured
func (c *Client) Synthesize(ctx context.Context, req imagegen.Request) (imagegen.Descriptor, error) {
	return c.synth.Synthesize(ctx, req)
}

// Post publishes to a single platform. Errors are returned as they are.
func (c *Client) Post(ctx context.Context, id platform.ID, req PostRequest) (platform.Item, error) {
	a, err := c.registry.Adapter(id)
	if err != nil {
		return nil, err
	}
	poster, ok := a.(adapter.Poster)
	if !ok {
		return nil, unsupported(a.Descriptor(), "posting")
	}

	post := req.Post
	if !req.Image.empty() {
		media, err := c.media(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		post.Media = media
	}
	return poster.Post(ctx, post)
}

// Comment replies on a single platform
func (c *Client) Comment(ctx context.Context, id platform.ID, req CommentRequest) (platform.Item, error) {
	a, err := c.registry.Adapter(id)
	if err != nil {
		return nil, err
	}
	commenter, ok := a.(adapter.Commenter)
	if !ok {
		return nil, unsupported(a.Descriptor(), "comments")
	}

	comment := req.Comment
	if !req.Image.empty() {
		media, err := c.media(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		comment.Media = media
	}
	return commenter.Comment(ctx, comment)
}

// Respond moves a request on a single platform to a new status
func (c *Client) Respond(ctx context.Context, id platform.ID, requestID, status string) (platform.Item, error) {
	a, err := c.registry.Adapter(id)
	if err != nil {
		return nil, err
	}
	responder, ok := a.(adapter.Responder)
	if !ok {
		return nil, unsupported(a.Descriptor(), "request responses")
	}
	return responder.Respond(ctx, requestID, status)
}

// Visit renders a hosted page of a single platform as markdown
func (c *Client) Visit(ctx context.Context, id platform.ID, name string) (string, error) {
	a, err := c.registry.Adapter(id)
	if err != nil {
		return "", err
	}
	visitor, ok := a.(adapter.Visitor)
	if !ok {
		return "", unsupported(a.Descriptor(), "page visits")
	}
	return visitor.Visit(ctx, name)
}

// Stats returns the platform-wide totals of a single platform
func (c *Client) Stats(ctx context.Context, id platform.ID) (platform.Item, error) {
	a, err := c.registry.Adapter(id)
	if err != nil {
		return nil, err
	}
	reporter, ok := a.(adapter.StatsReporter)
	if !ok {
		return nil, unsupported(a.Descriptor(), "statistics")
	}
	return reporter.Stats(ctx)
}

// Capabilities lists the optional operations a platform supports
func (c *Client) Capabilities(id platform.ID) ([]string, error) {
	a, err := c.registry.Adapter(id)
	if err != nil {
		return nil, err
	}
	caps := []string{"discover", "probe"}
	if _, ok := a.(adapter.Poster); ok {
		caps = append(caps, "post")
	}
	if _, ok := a.(adapter.Commenter); ok {
		caps = append(caps, "comment")
	}
	if _, ok := a.(adapter.Responder); ok {
		caps = append(caps, "respond")
	}
	if _, ok := a.(adapter.Visitor); ok {
		caps = append(caps, "visit")
	}
	if _, ok := a.(adapter.StatsReporter); ok {
		caps = append(caps, "stats")
	}
	return caps, nil
}

func (c *Client) media(ctx context.Context, img Image) (*platform.Media, error) {
	if img.SVG != "" {
		m := imagegen.ToMedia(img.SVG)
		return &m, nil
	}
	d, err := c.synth.Synthesize(ctx, imagegen.Request{
		Prompt:    img.Prompt,
		Template:  img.Template,
		Palette:   img.Palette,
		PreferLLM: true,
	})
	if err != nil {
		return nil, failure.New(platform.ErrInvalidArgument,
			failure.Message(platform.MessageOf(err)),
		)
	}
	return d.Media(), nil
}

func unsupported(desc platform.Descriptor, what string) error {
	return failure.New(platform.ErrUnsupported,
		failure.Message(fmt.Sprintf("%s does not support %s", desc.Name, what)),
		failure.Context{
			"platform": desc.ID.String(),
		},
	)
}
