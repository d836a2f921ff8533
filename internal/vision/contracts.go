// Package vision integrates the external vision-capable inference service as
// the medium-confidence extraction strategy. It owns the wire schema, the
// response sanitize/validate path and the error taxonomy the retry policy
// classifies against.
package vision

import (
	"context"
	"errors"
	"fmt"

	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/schema"
)

// ModelConfidence is assigned uniformly to every field the model returns.
// Model-reported confidence is not calibrated and is never trusted.
const ModelConfidence = 0.6

// GroupRequest asks the service to read one field group off one page raster.
type GroupRequest struct {
	Page        int
	ImagePNG    []byte
	Group       string
	Instruction string // declared per field group, never generated
	Specs       []schema.FieldSpec
}

// FieldExtractor is the interface the pipeline depends on.
type FieldExtractor interface {
	// ExtractGroup returns one attempt per field present in the model's
	// response, plus the raw (sanitized) payload for audit. A malformed or
	// unvalidatable response is a *ServiceError, not an empty result.
	ExtractGroup(ctx context.Context, req GroupRequest) ([]extract.Attempt, []byte, error)
}

// ErrorKind classifies a service failure for the retry policy.
type ErrorKind int

const (
	// KindTransient covers network errors, timeouts, 429 and 5xx. Worth
	// retrying.
	KindTransient ErrorKind = iota
	// KindTerminal covers 4xx and unparseable/invalid responses. Retrying
	// cannot fix a malformed instruction or payload.
	KindTerminal
)

// ServiceError is any failure of the external inference call, including a
// response that cannot be parsed into the expected shape.
type ServiceError struct {
	Kind   ErrorKind
	Status int // HTTP status when applicable, 0 otherwise
	Op     string
	Err    error
}

func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("vision %s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("vision %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Transient builds a retryable service error.
func Transient(op string, status int, err error) *ServiceError {
	return &ServiceError{Kind: KindTransient, Status: status, Op: op, Err: err}
}

// Terminal builds a non-retryable service error.
func Terminal(op string, status int, err error) *ServiceError {
	return &ServiceError{Kind: KindTerminal, Status: status, Op: op, Err: err}
}

// ClassifyStatus maps an HTTP status to an error kind.
func ClassifyStatus(status int) ErrorKind {
	switch {
	case status == 429, status >= 500:
		return KindTransient
	case status >= 400:
		return KindTerminal
	default:
		return KindTransient
	}
}

// IsTransient reports whether an error is worth retrying. Anything that is
// not a classified ServiceError (raw network failures, timeouts) counts as
// transient; caller cancellation does not.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind == KindTransient
	}
	return true
}
