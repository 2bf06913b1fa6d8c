package render

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// ErrDisposed is returned by every operation on a disposed handle.
var ErrDisposed = errors.New(errors.ErrCodeDisposed, "render target handle disposed")

// LookupTarget names the host object a [HostLookupError] could not find.
type LookupTarget int

// Host objects looked up during attach, in lookup order.
const (
	LookupWindow LookupTarget = iota
	LookupDocument
	LookupElement
)

// HostLookupError reports that the host window, its document or the named
// element is unavailable. It is only returned by attach and never leaves a
// handle behind.
type HostLookupError struct {
	Target LookupTarget
	ID     string // element identifier, set for LookupElement
}

// Error implements the error interface.
func (e *HostLookupError) Error() string {
	switch e.Target {
	case LookupWindow:
		return "no `window` object found"
	case LookupDocument:
		return "no `document` object found"
	default:
		return fmt.Sprintf("no element with id `%s` found", e.ID)
	}
}

// Code returns the error code for this error type.
func (e *HostLookupError) Code() errors.Code {
	return errors.ErrCodeHostLookup
}

// engineError wraps a failed engine call. Deadline expiry is reported as a
// timeout so callers can tell a slow engine from a failing one.
func engineError(call string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(errors.ErrCodeTimeout, err, "engine %s", call)
	}
	return errors.Wrap(errors.ErrCodeEngine, err, "engine %s", call)
}
