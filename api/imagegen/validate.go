package imagegen

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/morikuni/failure/v2"
)

// MaxSVGBytes bounds the size of SVG accepted from the LLM
const MaxSVGBytes = 32 << 10

// ExtractSVG cuts the first valid <svg>...</svg> element out of free-form model output.
// Each <svg start is paired with every later </svg> in turn, so prose that mentions
// the tag before the real element is skipped. When no pair validates, the widest
// cut is returned for ValidateSVG to reject.
func ExtractSVG(text string) (string, bool) {
	first := strings.Index(text, "<svg")
	last := strings.LastIndex(text, "</svg>")
	if first < 0 || last < first {
		return "", false
	}

	for start := first; start >= 0 && start < last; {
		for end := start; ; {
			i := strings.Index(text[end:], "</svg>")
			if i < 0 {
				break
			}
			end += i + len("</svg>")
			if candidate := text[start:end]; ValidateSVG(candidate) == nil {
				return candidate, true
			}
		}
		next := strings.Index(text[start+1:], "<svg")
		if next < 0 {
			break
		}
		start += next + 1
	}
	return text[first : last+len("</svg>")], true
}

// ValidateSVG checks that svg is well-formed XML with a root svg element and fits in MaxSVGBytes
func ValidateSVG(svg string) error {
	if len(svg) > MaxSVGBytes {
		return synthesisFailure(fmt.Sprintf("svg is %d bytes, limit is %d", len(svg), MaxSVGBytes))
	}

	dec := xml.NewDecoder(strings.NewReader(svg))
	depth := 0
	roots := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return synthesisFailure("svg is not well-formed: " + err.Error())
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if el.Name.Local != "svg" {
					return synthesisFailure("root element is " + el.Name.Local)
				}
				roots++
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if roots != 1 {
		return synthesisFailure(fmt.Sprintf("expected one root svg element, found %d", roots))
	}
	return nil
}

func synthesisFailure(msg string) error {
	return failure.New(ErrSynthesisFailure, failure.Message(msg))
}
