// Package fault defines the error taxonomy reported by extraction sessions.
//
// Every failure carries a Kind and a human-readable message. Kinds can be
// matched with errors.Is against the package sentinels:
//
//	if errors.Is(err, fault.ErrParse) { ... }
package fault

import (
	"errors"
	"fmt"
)

// Kind identifies the class of a failure.
type Kind uint8

const (
	// Network is a transport-level failure.
	Network Kind = iota + 1
	// Parse means the response lacked the expected structure.
	Parse
	// Regex means the video id pattern was invalid or did not match.
	Regex
	// URL means an empty or unusable URL was supplied or required.
	URL
	// ID means the video identifier was empty at start time.
	ID
	// File means a thumbnail destination could not be written.
	File
)

var kindNames = map[Kind]string{
	Network: "network error",
	Parse:   "parse error",
	Regex:   "regex error",
	URL:     "url error",
	ID:      "id error",
	File:    "file error",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown error"
}

// Error is a tagged extraction failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// Sentinels for errors.Is matching.
var (
	ErrNetwork = &Error{Kind: Network, Message: Network.String()}
	ErrParse   = &Error{Kind: Parse, Message: Parse.String()}
	ErrRegex   = &Error{Kind: Regex, Message: Regex.String()}
	ErrURL     = &Error{Kind: URL, Message: URL.String()}
	ErrID      = &Error{Kind: ID, Message: ID.String()}
	ErrFile    = &Error{Kind: File, Message: File.String()}
)

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags err with a kind, keeping its message. Returns nil for a nil err.
func Wrap(kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}

// KindOf returns the Kind of err, or zero if err is not a fault.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
