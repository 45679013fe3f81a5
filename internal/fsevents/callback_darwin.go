// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build darwin && cgo

package fsevents

/*
#include <CoreServices/CoreServices.h>
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/black-desk/fsevwatch/pkg/pool"
)

var batches = pool.New(
	func() *[]RawEvent {
		s := make([]RawEvent, 0, 64)
		return &s
	},
	func(s *[]RawEvent) *[]RawEvent {
		clear(*s)
		*s = (*s)[:0]
		return s
	},
)

//export fsevwatchCallback
func fsevwatchCallback(
	info C.uintptr_t,
	n C.size_t,
	paths **C.char,
	flags *C.FSEventStreamEventFlags,
	ids *C.FSEventStreamEventId,
) {
	r := cgo.Handle(info).Value().(Receiver)

	count := int(n)
	if count == 0 {
		return
	}

	cPaths := unsafe.Slice(paths, count)
	cFlags := unsafe.Slice(flags, count)
	cIDs := unsafe.Slice(ids, count)

	batch := batches.Get()
	defer batches.Put(batch)

	for i := 0; i < count; i++ {
		*batch = append(*batch, RawEvent{
			Path:  C.GoString(cPaths[i]),
			Flags: uint32(cFlags[i]),
			ID:    uint64(cIDs[i]),
		})
	}

	r.Receive(*batch)
}

//export fsevwatchRelease
func fsevwatchRelease(info C.uintptr_t) {
	h := cgo.Handle(info)
	r := h.Value().(Receiver)
	h.Delete()
	r.Release()
}
