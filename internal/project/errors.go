package project

import (
	"fmt"

	"github.com/askidmobile/transcriptcore/internal/segment"
)

// ErrorKind is the machine-readable taxonomy from §7: validation errors are
// always fatal for the attempted operation, import errors abort an import
// with no partial project returned, resource errors are user-recoverable,
// protocol errors are logged and dropped, persistence errors block a load.
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindImport      ErrorKind = "import"
	KindResource    ErrorKind = "resource"
	KindProtocol    ErrorKind = "protocol"
	KindPersistence ErrorKind = "persistence"
)

// CoreError is the common envelope for every error the core returns. Fields
// carries enough structured detail (clip/segment indices, offending times)
// to seed a bug report without parsing a message string.
type CoreError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]any
	Cause   error
}

func (e *CoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CoreError) Unwrap() error { return e.Cause }

func newErr(kind ErrorKind, fields map[string]any, format string, args ...any) *CoreError {
	return &CoreError{Kind: kind, Message: fmt.Sprintf(format, args...), Fields: fields}
}

// ValidationError reports an I1-I7 invariant violation.
func ValidationError(result segment.ValidationResult, context string) *CoreError {
	return newErr(KindValidation, map[string]any{"issues": result.Errors}, "invariant violation in %s", context)
}

// ImportError reports that raw ASR data could not be coerced into a valid
// project. No partial ProjectData is returned alongside it.
func ImportError(reason string, fields map[string]any) *CoreError {
	return newErr(KindImport, fields, "%s", reason)
}

// ResourceError reports missing/unreadable audio or an unwritable temp
// directory. Always recoverable at the UI level.
func ResourceError(reason string, cause error) *CoreError {
	e := newErr(KindResource, nil, "%s", reason)
	e.Cause = cause
	return e
}

// ProtocolError reports a malformed event from the transport backend.
func ProtocolError(reason string) *CoreError {
	return newErr(KindProtocol, nil, "%s", reason)
}

// PersistenceError reports an unreadable package, version mismatch, or
// checksum mismatch. No project is loaded alongside it.
func PersistenceError(reason string, cause error) *CoreError {
	e := newErr(KindPersistence, nil, "%s", reason)
	e.Cause = cause
	return e
}

// OperationError wraps a store operation failure with the operation id that
// produced it, for the operation:failed event payload.
type OperationError struct {
	OperationID string
	Err         error
}

func (e *OperationError) Error() string { return fmt.Sprintf("operation %s failed: %v", e.OperationID, e.Err) }
func (e *OperationError) Unwrap() error { return e.Err }
