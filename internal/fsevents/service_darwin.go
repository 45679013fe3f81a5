// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build darwin && cgo

package fsevents

/*
#cgo LDFLAGS: -framework CoreServices
#include <CoreServices/CoreServices.h>
#include <stdint.h>
#include <stdlib.h>

extern void fsevwatchCallback(uintptr_t, size_t, char **, FSEventStreamEventFlags *, FSEventStreamEventId *);
extern void fsevwatchRelease(uintptr_t);

static void fsevwatch_callback(
	ConstFSEventStreamRef stream,
	void *info,
	size_t n,
	void *paths,
	const FSEventStreamEventFlags flags[],
	const FSEventStreamEventId ids[])
{
	(void)stream;
	fsevwatchCallback(
		(uintptr_t)info, n, (char **)paths,
		(FSEventStreamEventFlags *)flags, (FSEventStreamEventId *)ids);
}

static void fsevwatch_release(const void *info)
{
	fsevwatchRelease((uintptr_t)info);
}

static FSEventStreamRef fsevwatch_create(
	uintptr_t info,
	CFArrayRef paths,
	FSEventStreamEventId since,
	CFTimeInterval latency,
	FSEventStreamCreateFlags flags)
{
	FSEventStreamContext context = {0, (void *)info, NULL, fsevwatch_release, NULL};
	return FSEventStreamCreate(
		kCFAllocatorDefault, fsevwatch_callback, &context,
		paths, since, latency, flags);
}

static CFMutableArrayRef fsevwatch_paths_new(void)
{
	return CFArrayCreateMutable(kCFAllocatorDefault, 0, &kCFTypeArrayCallBacks);
}

// The array retains the string, our own reference is dropped here.
static int fsevwatch_paths_append(CFMutableArrayRef paths, const char *path)
{
	CFStringRef s = CFStringCreateWithCString(
		kCFAllocatorDefault, path, kCFStringEncodingUTF8);
	if (s == NULL) {
		return 0;
	}
	CFArrayAppendValue(paths, s);
	CFRelease(s);
	return 1;
}

static void fsevwatch_cf_release(CFTypeRef ref)
{
	CFRelease(ref);
}

static CFRunLoopRef fsevwatch_runloop_current(void)
{
	CFRunLoopRef rl = CFRunLoopGetCurrent();
	CFRetain(rl);
	return rl;
}

static void fsevwatch_schedule(FSEventStreamRef stream, CFRunLoopRef rl)
{
	FSEventStreamScheduleWithRunLoop(stream, rl, kCFRunLoopDefaultMode);
}

static void fsevwatch_runloop_stop(CFRunLoopRef rl)
{
	CFRunLoopStop(rl);
	CFRunLoopWakeUp(rl);
}
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	. "github.com/black-desk/lib/go/errwrap"
)

type native struct{}

// New returns the native service.
func New() (Service, error) {
	return native{}, nil
}

func (native) CreateStream(r Receiver, opts StreamOptions) (ret Stream, err error) {
	defer Wrap(&err, "create FSEvents stream")

	if len(opts.Paths) == 0 {
		err = ErrNoPaths
		return
	}

	paths := C.fsevwatch_paths_new()
	if paths == 0 {
		err = ErrCreateStream
		return
	}
	// The stream keeps its own reference to the array.
	defer C.fsevwatch_cf_release(C.CFTypeRef(paths))

	for _, path := range opts.Paths {
		cPath := C.CString(path)
		ok := C.fsevwatch_paths_append(paths, cPath)
		C.free(unsafe.Pointer(cPath))

		if ok == 0 {
			err = ErrPathConversion
			Wrap(&err, "path %s", path)
			return
		}
	}

	h := cgo.NewHandle(r)

	ref := C.fsevwatch_create(
		C.uintptr_t(h),
		C.CFArrayRef(paths),
		C.FSEventStreamEventId(opts.SinceWhen),
		C.CFTimeInterval(opts.Latency.Seconds()),
		C.FSEventStreamCreateFlags(opts.Flags),
	)
	if ref == nil {
		// The release hook is never called for a stream that was not
		// created.
		h.Delete()
		err = ErrCreateStream
		return
	}

	ret = &stream{ref: ref}
	return
}

func (native) CurrentRunLoop() RunLoop {
	return &runLoop{ref: C.fsevwatch_runloop_current()}
}

type stream struct {
	ref C.FSEventStreamRef
}

func (s *stream) Schedule(rl RunLoop) {
	C.fsevwatch_schedule(s.ref, rl.(*runLoop).ref)
}

func (s *stream) Start() error {
	if C.FSEventStreamStart(s.ref) == 0 {
		return ErrStartStream
	}

	return nil
}

func (s *stream) Stop() {
	C.FSEventStreamStop(s.ref)
}

func (s *stream) Invalidate() {
	C.FSEventStreamInvalidate(s.ref)
}

func (s *stream) Release() {
	C.FSEventStreamRelease(s.ref)
}

type runLoop struct {
	ref C.CFRunLoopRef
}

func (rl *runLoop) Run() {
	C.CFRunLoopRun()
}

func (rl *runLoop) IsWaiting() bool {
	return C.CFRunLoopIsWaiting(rl.ref) != 0
}

func (rl *runLoop) Stop() {
	C.fsevwatch_runloop_stop(rl.ref)
}

func (rl *runLoop) Release() {
	C.fsevwatch_cf_release(C.CFTypeRef(rl.ref))
}
