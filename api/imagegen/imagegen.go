// Package imagegen produces SVG images for posts. A configured language model
// is tried first and a deterministic template renderer always backs it up.
package imagegen

import (
	"context"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/elyanlabs/grazer/metrics"
)

// Request describes the image to produce
type Request struct {
	Prompt string
	// Template and Palette force a catalog entry; empty means derive from the prompt
	Template string
	Palette  string
	// PreferLLM tries the model first when one is configured
	PreferLLM bool
}

// Descriptor is a generated image
type Descriptor struct {
	MimeType string `json:"mime_type"`
	SVG      string `json:"svg"`
	// Encoded is the base64 data URI of SVG
	Encoded  string   `json:"encoded"`
	Method   Method   `json:"method"`
	Bytes    int      `json:"bytes"`
	Template Template `json:"template"`
	Palette  string   `json:"palette"`
}

// Media returns the image as an attachable media object
func (d Descriptor) Media() *platform.Media {
	m := ToMedia(d.SVG)
	return &m
}

// Synthesizer runs the generation chain
type Synthesizer struct {
	llm *LLMClient
}

// New returns a synthesizer. A zero LLMConfig disables the model step.
func New(cfg LLMConfig) *Synthesizer {
	s := &Synthesizer{}
	if cfg.Configured() {
		s.llm = NewLLMClient(cfg)
	}
	return s
}

// Synthesize always returns an image unless an explicit template or palette is unknown.
// Model failures fall back to the template renderer and are never returned.
func (s *Synthesizer) Synthesize(ctx context.Context, req Request) (Descriptor, error) {
	t, err := ResolveTemplate(req.Prompt, req.Template)
	if err != nil {
		return Descriptor{}, err
	}
	p, err := ResolvePalette(req.Prompt, req.Palette)
	if err != nil {
		return Descriptor{}, err
	}

	var steps []Step
	if s.llm != nil && req.PreferLLM {
		steps = append(steps, func(ctx context.Context) Result {
			svg, err := s.llm.Generate(ctx, req.Prompt, t, p)
			return Result{SVG: svg, Method: MethodLLM, Err: err}
		})
	}
	steps = append(steps, func(context.Context) Result {
		return Result{SVG: Render(req.Prompt, t, p), Method: MethodTemplate}
	})

	res := FirstOf(ctx, steps...)
	metrics.ObserveSynthesis(string(res.Method))

	return Descriptor{
		MimeType: MimeSVG,
		SVG:      res.SVG,
		Encoded:  ToMedia(res.SVG).Data,
		Method:   res.Method,
		Bytes:    len(res.SVG),
		Template: t,
		Palette:  p.Name,
	}, nil
}
