package util

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Is reports whether target is the code the error was wrapped with.
func (e *Error) Is(target error) bool {
	return e.code != nil && e.code == target
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	ErrInvalidValue     = errors.New("invalid option value")
	ErrParse            = errors.New("invalid command line")
	ErrMissingArgument  = errors.New("missing argument")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrMissingOption    = errors.New("missing mandatory option")
	ErrNotRegularFile   = errors.New("output is not a regular file")
	ErrNoInput          = errors.New("no answer on standard input")
	ErrWrite            = errors.New("cannot write output")

	// clean exits
	ErrHelp    = errors.New("help requested")
	ErrAborted = errors.New("aborted by the user")
)

// ExitCode maps an error returned by the command to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, ErrHelp), errors.Is(err, ErrAborted):
		return 0
	default:
		return 1
	}
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
