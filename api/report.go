package api

import (
	"unicode/utf8"

	"github.com/elyanlabs/grazer/api/platform"
)

// ErrorRecord describes why a platform is missing from a report
type ErrorRecord struct {
	Code    platform.ErrorCode `json:"code"`
	Message string             `json:"message"`
}

// Report is the outcome of a discovery fan-out.
// Every selected platform has an entry in Results, empty when it failed, and
// failed platforms additionally have an entry in Errors.
type Report struct {
	// Order lists the selected platforms in registry order
	Order   []platform.ID                            `json:"order"`
	Results map[platform.ID]platform.DiscoveryResult `json:"results"`
	Errors  map[platform.ID]ErrorRecord              `json:"errors"`
}

// Failed reports whether id has an error record
func (r *Report) Failed(id platform.ID) bool {
	_, ok := r.Errors[id]
	return ok
}

// Total returns the number of items across all platforms
func (r *Report) Total() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Items)
	}
	return n
}

func newErrorRecord(err error, width int) ErrorRecord {
	return ErrorRecord{
		Code:    platform.CodeOf(err),
		Message: truncate(platform.MessageOf(err), width),
	}
}

func truncate(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}
