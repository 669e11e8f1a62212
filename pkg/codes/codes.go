// Package codes defines the stable numeric error contract shared between the
// decoding pipeline and the hosting process. Every failure mode maps to a
// distinct non-zero value so embedders (and the CLI) can surface it directly
// as an exit status; 0 is reserved for a fully successful run.
package codes

import (
	"errors"
	"fmt"
)

// Code enumerates every failure the pipeline can report. The numeric values
// double as process exit codes and must never be renumbered.
type Code uint64

const (
	// OK marks a successful run. It never appears inside an Error.
	OK Code = 0

	// Parameter parsing.
	InvalidArgCount   Code = 1
	InvalidDOB0Output Code = 2
	InvalidTraitsBase Code = 3

	// Schema decoding.
	InsufficientElements   Code = 4
	InvalidName            Code = 5
	InvalidTraitName       Code = 6
	InvalidType            Code = 7
	TypeMismatch           Code = 8
	InvalidPattern         Code = 9
	PatternMismatch        Code = 10
	InvalidArgs            Code = 11
	InvalidArgsElement     Code = 12
	InvalidParsedTraitType Code = 13

	// Matching and output assembly.
	InvalidOptionArgs  Code = 14
	InvalidRawValue    Code = 15
	BadUTF8Format      Code = 16
	BadColorCodeFormat Code = 17
)

// Internal is the catch-all exit status for failures that carry no Code, such
// as I/O errors raised outside the decoding pipeline.
const Internal Code = 101

var codeNames = map[Code]string{
	OK:                     "ok",
	InvalidArgCount:        "invalid argument count",
	InvalidDOB0Output:      "invalid DOB0 output",
	InvalidTraitsBase:      "invalid traits base",
	InsufficientElements:   "insufficient schema elements",
	InvalidName:            "invalid image name",
	InvalidTraitName:       "invalid trait name",
	InvalidType:            "invalid image type",
	TypeMismatch:           "image type mismatch",
	InvalidPattern:         "invalid pattern",
	PatternMismatch:        "pattern mismatch",
	InvalidArgs:            "invalid match table",
	InvalidArgsElement:     "invalid match table element",
	InvalidParsedTraitType: "invalid parsed trait type",
	InvalidOptionArgs:      "missing or unusable match table",
	InvalidRawValue:        "invalid raw value",
	BadUTF8Format:          "bad UTF-8 format",
	BadColorCodeFormat:     "bad color code format",
}

// String returns the human-readable name for the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", uint64(c))
}

// Error couples a Code with a human-readable cause. Library packages return
// it for every domain failure so callers can recover the numeric contract
// with FromError while still unwrapping the underlying cause.
type Error struct {
	Code  Code
	Msg   string
	Cause error
}

// New constructs an Error with a static message.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Newf constructs an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an Error that records an underlying cause.
func Wrap(code Code, msg string, cause error) *Error {
	return &Error{Code: code, Msg: msg, Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg == "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Code, e.Cause)
		}
		return e.Code.String()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap exposes the underlying cause to errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// FromError extracts the Code carried by err. Errors without an embedded
// Error map to Internal so the CLI still exits non-zero; a nil error maps
// to OK.
func FromError(err error) Code {
	if err == nil {
		return OK
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return Internal
}
