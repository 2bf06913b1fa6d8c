package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data. Documents are identified by it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns "prefix:<sha256 of the JSON encoded parts>".
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// ArtifactKeyOpts are the sink settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Theme      string `json:"theme,omitempty"`
	Width      uint32 `json:"width,omitempty"`
	Height     uint32 `json:"height,omitempty"`
	ElementID  string `json:"element_id,omitempty"`
	AssetsHost string `json:"assets_host,omitempty"`
	Title      string `json:"title,omitempty"`
	Indent     string `json:"indent,omitempty"`
}

// ExportKeyOpts are the settings that change an exported image.
type ExportKeyOpts struct {
	Type            string  `json:"type"`
	PixelRatio      float64 `json:"pixel_ratio,omitempty"`
	BackgroundColor string  `json:"background_color,omitempty"`
	Theme           string  `json:"theme,omitempty"`
	Width           uint32  `json:"width,omitempty"`
	Height          uint32  `json:"height,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
	ExportKey(docHash string, opts ExportKeyOpts) string
}

// DefaultKeyer hashes the document hash together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}

// ExportKey returns "export:<sha256>".
func (DefaultKeyer) ExportKey(docHash string, opts ExportKeyOpts) string {
	return hashKey("export", docHash, opts)
}

// ScopedKeyer prefixes every key of an inner keyer, for example to keep
// entries of different projects apart in a shared directory.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(docHash, opts)
}

// ExportKey generates a prefixed export key.
func (k *ScopedKeyer) ExportKey(docHash string, opts ExportKeyOpts) string {
	return k.prefix + k.inner.ExportKey(docHash, opts)
}
