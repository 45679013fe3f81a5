// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fsevents is the boundary to the FSEvents service of Darwin.
//
// The interfaces mirror the native calls one to one so that the stream
// lifecycle can be driven, and tested, without the native library.
package fsevents

import "time"

// CreateFlags are the FSEventStreamCreateFlags.
type CreateFlags uint32

const (
	CreateFlagNone CreateFlags = 0x00000000
	UseCFTypes     CreateFlags = 0x00000001
	NoDefer        CreateFlags = 0x00000002
	WatchRoot      CreateFlags = 0x00000004
	IgnoreSelf     CreateFlags = 0x00000008
	FileEvents     CreateFlags = 0x00000010
	MarkSelf       CreateFlags = 0x00000020
)

// SinceNow asks for live events only.
const SinceNow uint64 = 0xFFFFFFFFFFFFFFFF

// RawEvent is one entry of a bulk notification, not yet decoded.
type RawEvent struct {
	Path  string
	Flags uint32
	ID    uint64
}

// Receiver is the payload bound to a stream.
//
// Receive is called on the run-loop thread with the entries of one
// callback, in order. The slice is reused after Receive returns.
//
// Release is called exactly once when the stream is deallocated.
type Receiver interface {
	Receive(events []RawEvent)
	Release()
}

type StreamOptions struct {
	Paths     []string
	SinceWhen uint64
	Latency   time.Duration
	Flags     CreateFlags
}

type Service interface {
	// CreateStream hands r over to the stream. If it fails, r has not
	// been retained by anyone.
	CreateStream(r Receiver, opts StreamOptions) (Stream, error)
	// CurrentRunLoop returns a retained reference to the run loop of the
	// calling thread.
	CurrentRunLoop() RunLoop
}

type Stream interface {
	// Schedule registers the stream with rl in the default mode.
	Schedule(rl RunLoop)
	Start() error
	Stop()
	Invalidate()
	// Release drops the stream. The receiver is released with it.
	Release()
}

type RunLoop interface {
	// Run blocks the calling thread, which must own the run loop, until
	// Stop is called.
	Run()
	IsWaiting() bool
	// Stop makes Run return and wakes the run loop up.
	Stop()
	Release()
}
