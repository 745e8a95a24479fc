package domain

import "fmt"

// FailureKind classifies pipeline failures so callers can branch on the
// kind instead of string-matching error messages.
type FailureKind string

const (
	FailureConfig    FailureKind = "config"    // missing credential, bad request parameters
	FailureAuth      FailureKind = "auth"      // token refresh rejected
	FailureJob       FailureKind = "job"       // FATAL/CANCELLED status or polling timeout
	FailureTransport FailureKind = "transport" // HTTP/download error on a unit of work
	FailurePartial   FailureKind = "partial"   // soft degradation, processing continued
)

// Failure is a pipeline error carrying its classification and, where the
// remote service returned one, the raw diagnostic payload.
type Failure struct {
	Kind       FailureKind
	Message    string
	Diagnostic string
	Err        error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error { return f.Err }

// NewFailure builds a Failure with a formatted message.
func NewFailure(kind FailureKind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapFailure attaches an underlying error to a new Failure.
func WrapFailure(err error, kind FailureKind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// WithDiagnostic attaches the raw payload reported by the remote service.
func (f *Failure) WithDiagnostic(payload string) *Failure {
	f.Diagnostic = payload
	return f
}

// KindOf extracts the failure kind from an error chain, defaulting to
// transport for plain errors.
func KindOf(err error) FailureKind {
	for err != nil {
		if f, ok := err.(*Failure); ok {
			return f.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return FailureTransport
}
