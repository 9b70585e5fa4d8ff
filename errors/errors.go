package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseArgs   Phase = "args"   // command line and input path
	PhaseDecode Phase = "decode" // NBS bytes to song
	PhaseOutput Phase = "output" // song to JSON file
)

// Kind categorizes the error
type Kind string

const (
	KindArgument           Kind = "argument"
	KindUnsupportedFormat  Kind = "unsupported_format"
	KindUnsupportedVersion Kind = "unsupported_version"
	KindUnexpectedEnd      Kind = "unexpected_end"
	KindInvalidUTF8        Kind = "invalid_utf8"
	KindRead               Kind = "read"
	KindOutput             Kind = "output"
)

// Sentinels for errors.Is. They match any *Error with the same phase and kind.
var (
	ErrArgument           = &Error{Phase: PhaseArgs, Kind: KindArgument}
	ErrUnsupportedFormat  = &Error{Phase: PhaseDecode, Kind: KindUnsupportedFormat}
	ErrUnsupportedVersion = &Error{Phase: PhaseDecode, Kind: KindUnsupportedVersion}
	ErrUnexpectedEnd      = &Error{Phase: PhaseDecode, Kind: KindUnexpectedEnd}
	ErrInvalidUTF8        = &Error{Phase: PhaseDecode, Kind: KindInvalidUTF8}
	ErrRead               = &Error{Phase: PhaseDecode, Kind: KindRead}
	ErrOutput             = &Error{Phase: PhaseOutput, Kind: KindOutput}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	// Offset is the byte position in the input, or -1 when not applicable.
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Offset >= 0 && e.Phase == PhaseDecode {
		b.WriteString(" (offset ")
		fmt.Fprintf(&b, "%d", e.Offset)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Offset sets the byte offset in the input
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// WithPath sets the field path on err if it is an *Error without one.
// Other errors are returned unchanged.
func WithPath(err error, path ...string) error {
	if e, ok := err.(*Error); ok && len(e.Path) == 0 {
		e.Path = path
	}
	return err
}

// Convenience constructors for common error patterns

// Argument creates an invalid argument error
func Argument(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseArgs,
		Kind:   KindArgument,
		Detail: detail,
		Cause:  cause,
		Offset: -1,
	}
}

// UnsupportedFormat creates an error for an unrecognized protocol marker
func UnsupportedFormat(marker uint16) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnsupportedFormat,
		Path:   []string{"protocol_marker"},
		Detail: fmt.Sprintf("protocol marker %d, file uses the legacy format or is not an NBS file", marker),
		Value:  marker,
		Offset: 0,
	}
}

// UnsupportedVersion creates an error for a version byte with no decoder
func UnsupportedVersion(version uint8) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnsupportedVersion,
		Path:   []string{"version"},
		Detail: fmt.Sprintf("NBS version %d is not supported", version),
		Value:  version,
		Offset: 2,
	}
}

// UnexpectedEnd creates an error for input that ended mid-field
func UnexpectedEnd(offset, want, got int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnexpectedEnd,
		Detail: fmt.Sprintf("need %d bytes, only %d available", want, got),
		Offset: offset,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(offset int, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
		Offset: offset,
	}
}

// Read wraps a non-EOF failure of the input source
func Read(offset int, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindRead,
		Detail: "read input",
		Cause:  cause,
		Offset: offset,
	}
}

// Output creates an output file error
func Output(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseOutput,
		Kind:   KindOutput,
		Detail: detail,
		Cause:  cause,
		Offset: -1,
	}
}
