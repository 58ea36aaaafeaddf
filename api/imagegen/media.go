package imagegen

import (
	"encoding/base64"
	"strings"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/morikuni/failure/v2"
)

const (
	// MimeSVG is the media type of every generated image
	MimeSVG = "image/svg+xml"

	dataURIPrefix = "data:" + MimeSVG + ";base64,"
)

// ToMedia wraps SVG markup as a base64 data URI. It performs no I/O.
func ToMedia(svg string) platform.Media {
	return platform.Media{
		Type: MimeSVG,
		Data: dataURIPrefix + base64.StdEncoding.EncodeToString([]byte(svg)),
	}
}

// FromMedia decodes a media object produced by ToMedia
func FromMedia(m platform.Media) (string, error) {
	if m.Type != MimeSVG || !strings.HasPrefix(m.Data, dataURIPrefix) {
		return "", failure.New(ErrInvalidMedia,
			failure.Message("media is not an svg data uri"),
			failure.Context{
				"type": m.Type,
			},
		)
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(m.Data, dataURIPrefix))
	if err != nil {
		return "", failure.New(ErrInvalidMedia,
			failure.Message("media payload is not valid base64"),
			failure.Context{
				"error": err.Error(),
			},
		)
	}
	return string(data), nil
}
