// Package errors provides structured error types for nbs-json.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the field path being decoded, the byte offset in the
// input, and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindUnexpectedEnd).
//		Path("header", "song_name").
//		Offset(17).
//		Detail("need %d bytes, only %d available", 10, 3).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedVersion(6)
//	err := errors.Output("create output.json", cause)
//
// Match a category with the package sentinels:
//
//	if errors.Is(err, nbserrors.ErrUnexpectedEnd) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
