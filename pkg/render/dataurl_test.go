package render

import (
	"testing"

	"github.com/matzehuels/chartkit/pkg/errors"
)

func TestDecodeDataURL(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		mediaType string
		data      string
	}{
		{"base64", "data:image/png;base64,aGVsbG8=", "image/png", "hello"},
		{"jpeg", "data:image/jpeg;base64,", "image/jpeg", ""},
		{"percent", "data:text/plain,a%20b", "text/plain", "a b"},
		{"default type", "data:,x", "text/plain;charset=US-ASCII", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, data, err := DecodeDataURL(tt.in)
			if err != nil {
				t.Fatalf("DecodeDataURL() error: %v", err)
			}
			if mt != tt.mediaType {
				t.Errorf("mediaType = %q, want %q", mt, tt.mediaType)
			}
			if string(data) != tt.data {
				t.Errorf("data = %q, want %q", data, tt.data)
			}
		})
	}
}

func TestDecodeDataURLInvalid(t *testing.T) {
	for _, in := range []string{"", "http://x", "data:image/png;base64", "data:image/png;base64,***"} {
		if _, _, err := DecodeDataURL(in); !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("DecodeDataURL(%q) error = %v, want INVALID_FORMAT", in, err)
		}
	}
}

func TestParseImageType(t *testing.T) {
	tests := []struct {
		in      string
		want    ImageType
		ext     string
		wantErr bool
	}{
		{"png", ImagePNG, ".png", false},
		{"JPEG", ImageJPEG, ".jpg", false},
		{"jpg", ImageJPEG, ".jpg", false},
		{"webp", "", "", true},
	}
	for _, tt := range tests {
		got, err := ParseImageType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseImageType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && (got != tt.want || got.Extension() != tt.ext) {
			t.Errorf("ParseImageType(%q) = %q (%s), want %q (%s)", tt.in, got, got.Extension(), tt.want, tt.ext)
		}
	}
}

func TestImageOptionsNormalize(t *testing.T) {
	got, err := ImageOptions{}.normalize()
	if err != nil {
		t.Fatalf("normalize() error: %v", err)
	}
	if got.Type != ImagePNG || got.PixelRatio != 1 {
		t.Errorf("normalize() = %+v, want png at ratio 1", got)
	}
}

func TestHostLookupErrorCode(t *testing.T) {
	err := error(&HostLookupError{Target: LookupElement, ID: "x"})
	if errors.GetCode(err) != errors.ErrCodeHostLookup {
		t.Errorf("GetCode() = %q, want %q", errors.GetCode(err), errors.ErrCodeHostLookup)
	}
}
