package errors

import (
	"net"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// elementIDRegex matches identifiers accepted for host elements. It follows
// the HTML id grammar minus whitespace, restricted to a safe ASCII subset so
// ids can be embedded into generated pages without escaping.
var elementIDRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_:.-]*$`)

// ValidateElementID validates the identifier of a host element a chart is
// attached to.
//
// The rules are intentionally conservative:
//   - No empty ids
//   - Must start with a letter
//   - Letters, digits, '-', '_', ':' and '.' only
//   - Maximum length of 128 characters
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidElementID, "element id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidElementID, "element id too long (max 128 characters)")
	}

	if !elementIDRegex.MatchString(id) {
		return New(ErrCodeInvalidElementID, "invalid element id: %q", id)
	}

	return nil
}

// ValidatePath validates an input or output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateListenAddr validates a host:port listen address for the preview server.
// The host may be empty (all interfaces); the port must be in 0-65535.
func ValidateListenAddr(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return New(ErrCodeInvalidInput, "listen address cannot be empty")
	}

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid listen address %q", addr)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return New(ErrCodeInvalidInput, "invalid port in listen address %q", addr)
	}

	return nil
}
