package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrOptionNotFound    = errors.New("reference option not found")
	ErrOptionInUse       = errors.New("reference option is still referenced by equipment")
	ErrInvalidOptionName = errors.New("invalid reference option name")
	ErrFilterRowNotFound = errors.New("filter row not found")
	ErrFiltersNotAllowed = errors.New("model family does not take filters")

	// ErrRemoteOperation matches every *RemoteError.
	ErrRemoteOperation = errors.New("remote store operation failed")

	ErrMissingRequiredField = errors.New("missing required field")
	ErrDuplicateTag         = errors.New("duplicate equipment tag")
	ErrUnknownReference     = errors.New("unknown brand or location")
	ErrInvalidValue         = errors.New("invalid field value")
)

// RemoteError reports a failed round trip to the remote store. The local
// cache is left untouched whenever one is returned.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrRemoteOperation, e.Op, e.Err)
}

func (e *RemoteError) Unwrap() []error {
	return []error{ErrRemoteOperation, e.Err}
}

type ValidationKind string

const (
	ValidationMissingField     ValidationKind = "missing_field"
	ValidationDuplicateTag     ValidationKind = "duplicate_tag"
	ValidationUnknownReference ValidationKind = "unknown_reference"
	ValidationInvalidValue     ValidationKind = "invalid_value"
)

// ValidationError is returned when a draft is rejected before reaching the
// remote store. Fields lists the offending field names (store column names).
type ValidationError struct {
	Kind   ValidationKind
	Fields []string
}

func newValidationError(kind ValidationKind, fields ...string) *ValidationError {
	return &ValidationError{Kind: kind, Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.Unwrap(), strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case ValidationMissingField:
		return ErrMissingRequiredField
	case ValidationDuplicateTag:
		return ErrDuplicateTag
	case ValidationUnknownReference:
		return ErrUnknownReference
	default:
		return ErrInvalidValue
	}
}
