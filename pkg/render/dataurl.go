package render

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// DecodeDataURL splits a data URL as returned by [Handle.Export] into its
// media type and payload. Both base64 and percent-encoded payloads are
// accepted.
func DecodeDataURL(s string) (mediaType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, errors.New(errors.ErrCodeInvalidFormat, "not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New(errors.ErrCodeInvalidFormat, "data URL has no payload")
	}

	meta, isBase64 := strings.CutSuffix(meta, ";base64")
	mediaType = meta
	if mediaType == "" {
		mediaType = "text/plain;charset=US-ASCII"
	}

	if isBase64 {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode base64 payload")
		}
		return mediaType, data, nil
	}

	unescaped, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode payload")
	}
	return mediaType, []byte(unescaped), nil
}
