// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

import (
	"fmt"
	"strings"
)

// Event is built fresh for every notification and must not be modified
// once it has been handed to a handler.
type Event struct {
	Kind  EventKind
	Paths []string
	Attrs EventAttributes
}

// EventAttributes holds auxiliary information. A zero field means the
// attribute is absent.
type EventAttributes struct {
	Flag Flag
	Info string
	// ProcessID is set when the change was caused by this process.
	ProcessID uint32
	// Tracker would pair the two halves of a rename. It is never set by
	// the FSEvents backend.
	Tracker uint64
}

func (e Event) WithPath(path string) Event {
	e.Paths = append(e.Paths[:len(e.Paths):len(e.Paths)], path)
	return e
}

func (e Event) WithFlag(flag Flag) Event {
	e.Attrs.Flag = flag
	return e
}

func (e Event) WithInfo(info string) Event {
	e.Attrs.Info = info
	return e
}

func (e Event) WithProcessID(pid uint32) Event {
	e.Attrs.ProcessID = pid
	return e
}

func (e Event) NeedRescan() bool {
	return e.Attrs.Flag == FlagRescan
}

func (e Event) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %v", e.Kind, e.Paths)

	if e.Attrs.Flag != FlagNone {
		fmt.Fprintf(&b, " flag=%s", e.Attrs.Flag)
	}
	if e.Attrs.Info != "" {
		fmt.Fprintf(&b, " info=%q", e.Attrs.Info)
	}
	if e.Attrs.ProcessID != 0 {
		fmt.Fprintf(&b, " pid=%d", e.Attrs.ProcessID)
	}

	return b.String()
}

// Result is what handlers receive: an event or an error.
type Result struct {
	Event Event
	Err   error
}
