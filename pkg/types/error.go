// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

import (
	"fmt"
	"strings"
)

type ErrorKind uint8

const (
	ErrorKindGeneric       ErrorKind = iota // Generic
	ErrorKindIo                             // Io
	ErrorKindPathNotFound                   // PathNotFound
	ErrorKindWatchNotFound                  // WatchNotFound
	ErrorKindInvalidConfig                  // InvalidConfig
	ErrorKindMaxFilesWatch                  // MaxFilesWatch
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrorKind -linecomment

// Error is the error type returned by the watcher.
// errors.Is matches two *Error values when their kinds are equal,
// so the sentinels below can be used to test for a kind.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Err   error
	Paths []string
}

var (
	ErrGeneric       = &Error{Kind: ErrorKindGeneric}
	ErrIo            = &Error{Kind: ErrorKindIo}
	ErrPathNotFound  = &Error{Kind: ErrorKindPathNotFound}
	ErrWatchNotFound = &Error{Kind: ErrorKindWatchNotFound}
	ErrInvalidConfig = &Error{Kind: ErrorKindInvalidConfig}
	ErrMaxFilesWatch = &Error{Kind: ErrorKindMaxFilesWatch}
)

func NewError(kind ErrorKind, err error, paths ...string) *Error {
	return &Error{Kind: kind, Err: err, Paths: paths}
}

func GenericError(msg string, paths ...string) *Error {
	return &Error{Kind: ErrorKindGeneric, Msg: msg, Paths: paths}
}

func (e *Error) Error() string {
	var b strings.Builder

	switch {
	case e.Msg != "" && e.Err != nil:
		fmt.Fprintf(&b, "%s: %s", e.Msg, e.Err)
	case e.Msg != "":
		b.WriteString(e.Msg)
	case e.Err != nil:
		fmt.Fprintf(&b, "%s: %s", e.Kind, e.Err)
	default:
		b.WriteString(defaultMessage(e.Kind))
	}

	if len(e.Paths) != 0 {
		fmt.Fprintf(&b, " about %q", e.Paths)
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

func defaultMessage(kind ErrorKind) string {
	switch kind {
	case ErrorKindPathNotFound:
		return "No path was found."
	case ErrorKindWatchNotFound:
		return "No watch was found."
	case ErrorKindInvalidConfig:
		return "Invalid configuration."
	case ErrorKindMaxFilesWatch:
		return "OS file watch limit reached."
	case ErrorKindIo:
		return "Input/output error."
	}

	return "Unknown error."
}
