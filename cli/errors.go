package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidPlatform    ErrorCode = "InvalidPlatform"
	PlatformRequired   ErrorCode = "PlatformRequired"
	InvalidArguments   ErrorCode = "InvalidArguments"
	OutputWriteFailure ErrorCode = "OutputWriteFailure"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
