// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watcher

import (
	"maps"
	"runtime"
	"slices"

	"github.com/black-desk/fsevwatch/internal/fsevents"
	"github.com/black-desk/fsevwatch/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/sourcegraph/conc"
)

// runner tracks the goroutine that owns the run loop of one stream.
type runner struct {
	wg conc.WaitGroup

	// Both are written before ready is closed.
	rl  fsevents.RunLoop
	err error

	ready chan struct{}
	done  chan struct{}
}

func (w *Watcher) streamOptions(paths []string) fsevents.StreamOptions {
	since := w.settings.since
	if since != SinceNow {
		// Resume where the previous stream stopped instead of replaying
		// history twice.
		if last := w.lastEventID.Load(); last != 0 {
			since = last
		}
	}

	return fsevents.StreamOptions{
		Paths:     paths,
		SinceWhen: since,
		Latency:   w.settings.latency,
		Flags:     fsevents.FileEvents | fsevents.NoDefer,
	}
}

// start creates a stream for the registered paths and waits until its
// run loop is running. Nothing is started without paths.
// The caller holds w.mu.
func (w *Watcher) start() (err error) {
	defer Wrap(&err, "start FSEvents stream")

	roots := w.registry.Snapshot()
	if len(roots) == 0 {
		w.log.Debugw("No path to watch, stay idle.")
		return
	}

	opts := w.streamOptions(slices.Sorted(maps.Keys(roots)))
	sc := w.newStreamContext(roots)

	r := &runner{
		ready: make(chan struct{}),
		done:  make(chan struct{}),
	}

	r.wg.Go(func() { w.run(r, sc, opts) })

	<-r.ready

	if r.rl != nil {
		w.running = r
		w.log.Debugw("Stream started.",
			"paths", opts.Paths,
			"since", opts.SinceWhen,
			"latency", opts.Latency,
		)
		return
	}

	err = r.err
	if recovered := r.wg.WaitAndRecover(); recovered != nil {
		err = recovered.AsError()
	}

	err = &types.Error{
		Kind:  types.ErrorKindGeneric,
		Msg:   "unable to start the event stream",
		Err:   err,
		Paths: opts.Paths,
	}
	return
}

// run is the body of the run-loop goroutine. It keeps its OS thread
// locked to the end, so the thread goes away with it.
func (w *Watcher) run(r *runner, sc *streamContext, opts fsevents.StreamOptions) {
	defer close(r.done)

	published := false
	defer func() {
		if !published {
			close(r.ready)
		}
	}()

	runtime.LockOSThread()

	// Once published, stop releases the run loop after the join.
	rl := w.svc.CurrentRunLoop()
	defer func() {
		if !published {
			rl.Release()
		}
	}()

	stream, err := w.svc.CreateStream(sc, opts)
	if err != nil {
		sc.Release()
		r.err = err
		return
	}
	defer stream.Release()

	stream.Schedule(rl)

	err = stream.Start()
	if err != nil {
		stream.Invalidate()
		r.err = err
		return
	}
	defer stream.Invalidate()
	defer stream.Stop()

	r.rl = rl
	published = true
	close(r.ready)

	rl.Run()

	w.log.Debugw("Run loop exited.")
}

// stop ends the running stream, if any, and joins its goroutine.
// The caller holds w.mu.
func (w *Watcher) stop() (err error) {
	r := w.running
	if r == nil {
		return
	}
	w.running = nil

	defer r.rl.Release()

	// A stop request sent while the run loop is still busy with a
	// callback may get lost, so wait until it sleeps.
	exited := false
WAIT:
	for !r.rl.IsWaiting() {
		select {
		case <-r.done:
			exited = true
			break WAIT
		default:
			runtime.Gosched()
		}
	}

	if !exited {
		r.rl.Stop()
	}

	if recovered := r.wg.WaitAndRecover(); recovered != nil {
		err = recovered.AsError()
		Wrap(&err, "stop FSEvents stream")
		return
	}

	w.log.Debugw("Stream stopped.")
	return
}

// restore starts a stream for the current registry after a failed
// change and only logs if that fails too.
func (w *Watcher) restore() {
	err := w.start()
	if err == nil {
		return
	}

	w.log.Errorw("Failed to restart the previous stream.",
		"error", err,
	)
}
