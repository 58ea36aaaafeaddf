package platform

import "github.com/morikuni/failure/v2"

// ErrorCode classifies adapter and registry failures
type ErrorCode string

const (
	// ErrCredentialMissing means a required secret is absent; raised before any network attempt
	ErrCredentialMissing ErrorCode = "CredentialMissing"
	// ErrNetworkFailure covers timeouts, connection errors and non-success statuses
	ErrNetworkFailure ErrorCode = "NetworkFailure"
	// ErrMalformedResponse means the payload does not have the expected shape
	ErrMalformedResponse ErrorCode = "MalformedResponse"
	// ErrNotFound means the platform id is not registered
	ErrNotFound ErrorCode = "NotFound"
	// ErrUnsupported means the platform has no such capability
	ErrUnsupported ErrorCode = "Unsupported"
	// ErrInvalidArgument means a publish or comment call lacks a field the platform needs
	ErrInvalidArgument ErrorCode = "InvalidArgument"
	// ErrUnknown is used when an error carries none of the codes above
	ErrUnknown ErrorCode = "Unknown"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

var knownCodes = []ErrorCode{
	ErrCredentialMissing,
	ErrNetworkFailure,
	ErrMalformedResponse,
	ErrNotFound,
	ErrUnsupported,
	ErrInvalidArgument,
}

// CodeOf returns the platform error code carried by err, or ErrUnknown
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	for _, c := range knownCodes {
		if failure.Is(err, c) {
			return c
		}
	}
	return ErrUnknown
}

// MessageOf returns the user-facing message of err
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if msg := failure.MessageOf(err); msg != "" {
		return msg.String()
	}
	return err.Error()
}
