package imagegen

// ErrorCode classifies image generation failures
type ErrorCode string

const (
	// ErrSynthesisFailure means the LLM was unreachable or returned unusable SVG.
	// It never leaves Synthesize; the template fallback absorbs it.
	ErrSynthesisFailure ErrorCode = "SynthesisFailure"
	// ErrUnknownOption means an explicit template or palette is not in the catalog
	ErrUnknownOption ErrorCode = "UnknownOption"
	// ErrInvalidMedia means a media object is not an SVG data URI
	ErrInvalidMedia ErrorCode = "InvalidMedia"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
