// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fake implements the FSEvents service in process.
//
// Notifications are injected with Emit and delivered on the goroutine
// running the current run loop, the same way the native service calls
// back on the run-loop thread.
package fake

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/black-desk/fsevwatch/internal/fsevents"
)

var ErrNotRunning = errors.New("no stream is running.")

// Stats counts native objects created and released by a Service.
type Stats struct {
	StreamsCreated   int
	StreamsReleased  int
	ContextsReleased int
	RunLoopsRetained int
	RunLoopsReleased int
}

type Service struct {
	mu sync.Mutex

	createErr error
	startErr  error

	stats   Stats
	options []fsevents.StreamOptions
	active  *Stream
}

func New() *Service {
	return &Service{}
}

// FailCreate makes the next CreateStream call fail with err.
func (s *Service) FailCreate(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createErr = err
}

// FailStart makes the next Start call fail with err.
func (s *Service) FailStart(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.startErr = err
}

func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stats
}

// Options returns the options of every stream created so far.
func (s *Service) Options() []fsevents.StreamOptions {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.options)
}

// Running reports whether a started stream is scheduled on a run loop.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active != nil
}

// Emit delivers one bulk notification to the running stream and waits
// until the receiver has handled it.
func (s *Service) Emit(events ...fsevents.RawEvent) error {
	s.mu.Lock()
	active := s.active
	var loop *RunLoop
	if active != nil {
		loop = active.loop
	}
	s.mu.Unlock()

	if loop == nil {
		return ErrNotRunning
	}

	done := make(chan struct{})
	work := func() {
		defer close(done)
		active.receiver.Receive(slices.Clone(events))
	}

	select {
	case loop.work <- work:
	case <-loop.stop:
		return ErrNotRunning
	}

	<-done
	return nil
}

func (s *Service) CreateStream(
	r fsevents.Receiver, opts fsevents.StreamOptions,
) (ret fsevents.Stream, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(opts.Paths) == 0 {
		err = fsevents.ErrNoPaths
		return
	}

	if s.createErr != nil {
		err = s.createErr
		s.createErr = nil
		return
	}

	opts.Paths = slices.Clone(opts.Paths)
	s.options = append(s.options, opts)
	s.stats.StreamsCreated++

	ret = &Stream{svc: s, receiver: r, opts: opts}
	return
}

func (s *Service) CurrentRunLoop() fsevents.RunLoop {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.RunLoopsRetained++

	return &RunLoop{
		svc:  s,
		work: make(chan func()),
		stop: make(chan struct{}),
	}
}

type Stream struct {
	svc      *Service
	receiver fsevents.Receiver
	opts     fsevents.StreamOptions
	loop     *RunLoop
	released bool
}

func (st *Stream) Schedule(rl fsevents.RunLoop) {
	st.svc.mu.Lock()
	defer st.svc.mu.Unlock()

	st.loop = rl.(*RunLoop)
}

func (st *Stream) Start() error {
	st.svc.mu.Lock()
	defer st.svc.mu.Unlock()

	if st.svc.startErr != nil {
		err := st.svc.startErr
		st.svc.startErr = nil
		return err
	}

	st.svc.active = st
	return nil
}

func (st *Stream) Stop() {
	st.svc.mu.Lock()
	defer st.svc.mu.Unlock()

	if st.svc.active == st {
		st.svc.active = nil
	}
}

func (st *Stream) Invalidate() {
	st.svc.mu.Lock()
	defer st.svc.mu.Unlock()

	st.loop = nil
}

func (st *Stream) Release() {
	st.svc.mu.Lock()
	if st.released {
		st.svc.mu.Unlock()
		panic("fake: stream released twice")
	}
	st.released = true
	st.svc.stats.StreamsReleased++
	st.svc.stats.ContextsReleased++
	st.svc.mu.Unlock()

	st.receiver.Release()
}

type RunLoop struct {
	svc *Service

	work chan func()
	stop chan struct{}

	stopOnce sync.Once
	waiting  atomic.Bool
	released atomic.Bool
}

func (rl *RunLoop) Run() {
	for {
		rl.waiting.Store(true)

		select {
		case <-rl.stop:
			rl.waiting.Store(false)
			return
		case fn := <-rl.work:
			rl.waiting.Store(false)
			fn()
		}
	}
}

func (rl *RunLoop) IsWaiting() bool {
	return rl.waiting.Load()
}

func (rl *RunLoop) Stop() {
	if rl.released.Load() {
		panic("fake: run loop stopped after release")
	}

	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RunLoop) Release() {
	if rl.released.Swap(true) {
		panic("fake: run loop released twice")
	}

	rl.svc.mu.Lock()
	defer rl.svc.mu.Unlock()

	rl.svc.stats.RunLoopsReleased++
}
