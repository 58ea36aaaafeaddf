package imagegen

import (
	"context"

	"github.com/elyanlabs/grazer/log"
	"github.com/morikuni/failure/v2"
)

// Method tags how an image was produced
type Method string

const (
	MethodLLM      Method = "llm"
	MethodTemplate Method = "template"
)

// Result is the outcome of one generation step
type Result struct {
	SVG    string
	Method Method
	Err    error
}

// OK reports whether the step produced an image
func (r Result) OK() bool {
	return r.Err == nil && r.SVG != ""
}

// Step is one generator in a fallback chain
type Step func(ctx context.Context) Result

// FirstOf runs steps in order and returns the first successful result.
// When every step fails, the last result is returned.
func FirstOf(ctx context.Context, steps ...Step) Result {
	last := Result{Err: synthesisFailure("no generation step")}
	for _, step := range steps {
		last = step(ctx)
		if last.OK() {
			return last
		}
		log.Debug("Image generation step failed, falling back",
			"method", last.Method,
			"code", failureCode(last.Err),
			"error", last.Err,
		)
	}
	return last
}

func failureCode(err error) string {
	if failure.Is(err, ErrSynthesisFailure) {
		return string(ErrSynthesisFailure)
	}
	return ""
}
