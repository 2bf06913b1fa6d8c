package render

import (
	"math"
	"strings"

	"github.com/matzehuels/chartkit/pkg/element"
	"github.com/matzehuels/chartkit/pkg/errors"
)

// SizeOptions is the optional explicit size passed to the engine's init
// call. Unset dimensions are derived from the host element's layout.
type SizeOptions struct {
	Width  *uint32 `json:"width,omitempty"`
	Height *uint32 `json:"height,omitempty"`
}

// Explicit reports whether any dimension is set.
func (s SizeOptions) Explicit() bool { return s.Width != nil || s.Height != nil }

// ResizeOptions describes a sized, optionally animated resize. A zero Width
// or Height keeps that dimension automatic.
type ResizeOptions struct {
	Width     uint32             `json:"width,omitempty"`
	Height    uint32             `json:"height,omitempty"`
	Silent    bool               `json:"silent"`
	Animation *element.Animation `json:"animation,omitempty"`
}

// ImageType is an export image format.
type ImageType string

// Export formats.
const (
	ImagePNG  ImageType = "png"
	ImageJPEG ImageType = "jpeg"
)

// ParseImageType resolves a format name; "jpg" is accepted for jpeg.
func ParseImageType(s string) (ImageType, error) {
	switch strings.ToLower(s) {
	case "png":
		return ImagePNG, nil
	case "jpeg", "jpg":
		return ImageJPEG, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported image type %q (want png or jpeg)", s)
	}
}

// Extension returns the file extension for the format, including the dot.
func (t ImageType) Extension() string {
	if t == ImageJPEG {
		return ".jpg"
	}
	return ".png"
}

// ImageOptions configures an export. The zero value exports a PNG at pixel
// ratio 1 on the chart's own background.
type ImageOptions struct {
	Type            ImageType      `json:"type"`
	PixelRatio      float64        `json:"pixelRatio,omitempty"`
	BackgroundColor *element.Color `json:"backgroundColor,omitempty"`
}

// normalize fills defaults and rejects unusable values.
func (o ImageOptions) normalize() (ImageOptions, error) {
	if o.Type == "" {
		o.Type = ImagePNG
	}
	if o.Type != ImagePNG && o.Type != ImageJPEG {
		return o, errors.New(errors.ErrCodeInvalidFormat, "unsupported image type %q (want png or jpeg)", o.Type)
	}
	if math.IsNaN(o.PixelRatio) || math.IsInf(o.PixelRatio, 0) || o.PixelRatio < 0 {
		return o, errors.New(errors.ErrCodeInvalidInput, "pixel ratio must be a positive number, got %v", o.PixelRatio)
	}
	if o.PixelRatio == 0 {
		o.PixelRatio = 1
	}
	return o, nil
}
