// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watcher_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/black-desk/fsevwatch/internal/fsevents"
	"github.com/black-desk/fsevwatch/internal/fsevents/fake"
	"github.com/black-desk/fsevwatch/internal/tests/logger"
	"github.com/black-desk/fsevwatch/pkg/fsevent"
	"github.com/black-desk/fsevwatch/pkg/types"
	. "github.com/black-desk/fsevwatch/pkg/watcher"
	. "github.com/black-desk/lib/go/gomega-helper"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sourcegraph/conc/pool"
)

type recorder struct {
	mu      sync.Mutex
	results []types.Result
	hook    func(types.Result) error
}

func (r *recorder) HandleEvent(result types.Result) error {
	r.mu.Lock()
	r.results = append(r.results, result)
	hook := r.hook
	r.mu.Unlock()

	if hook == nil {
		return nil
	}

	return hook(result)
}

func (r *recorder) Events() (ret []types.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, result := range r.results {
		ret = append(ret, result.Event)
	}
	return
}

func raw(path string, flags fsevent.FlagSet, id uint64) fsevents.RawEvent {
	return fsevents.RawEvent{Path: path, Flags: uint32(flags), ID: id}
}

func lastOptions(svc *fake.Service) fsevents.StreamOptions {
	opts := svc.Options()
	ExpectWithOffset(1, opts).NotTo(BeEmpty())
	return opts[len(opts)-1]
}

func expectBalanced(svc *fake.Service) {
	stats := svc.Stats()
	ExpectWithOffset(1, stats.StreamsReleased).To(Equal(stats.StreamsCreated))
	ExpectWithOffset(1, stats.ContextsReleased).To(Equal(stats.StreamsCreated))
	ExpectWithOffset(1, stats.RunLoopsReleased).To(Equal(stats.RunLoopsRetained))
}

var _ = Describe("FSEvents watcher", func() {
	var (
		svc    *fake.Service
		rec    *recorder
		w      *Watcher
		tmpDir string
		fatals []string

		dirA, dirB, dirC string
	)

	BeforeEach(func() {
		var err error

		svc = fake.New()
		rec = &recorder{}
		fatals = nil

		tmpDir, err = os.MkdirTemp("", "fsevwatch-watcher-*")
		Expect(err).To(Succeed())
		tmpDir, err = filepath.EvalSymlinks(tmpDir)
		Expect(err).To(Succeed())

		dirA = filepath.Join(tmpDir, "a")
		dirB = filepath.Join(dirA, "b")
		dirC = filepath.Join(tmpDir, "c")
		Expect(os.MkdirAll(dirB, 0o755)).To(Succeed())
		Expect(os.MkdirAll(dirC, 0o755)).To(Succeed())

		log, err := logger.ProvideLogger()
		Expect(err).To(Succeed())

		w, err = New(
			WithHandler(rec),
			WithLogger(log),
			WithService(svc),
			WithFatal(func(msg string, _ ...any) {
				fatals = append(fatals, msg)
			}),
		)
		Expect(err).To(Succeed())
	})

	AfterEach(func() {
		_ = w.Close()
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	Context("created", func() {
		It("should require a handler", func() {
			_, err := New(WithService(svc))
			Expect(err).To(MatchErr(ErrHandlerMissing))
		})

		It("should reject a negative latency", func() {
			_, err := New(
				WithHandler(rec),
				WithService(svc),
				WithConfig(Latency(-time.Second)),
			)
			Expect(err).To(MatchErr(types.ErrInvalidConfig))
		})

		It("should stay idle without paths", func() {
			Expect(w.IsRunning()).To(BeFalse())
			Expect(w.Paths()).To(BeEmpty())
			Expect(svc.Stats()).To(Equal(fake.Stats{}))
		})
	})

	Context("watching", func() {
		It("should start a stream for the canonical path", func() {
			Expect(w.Watch(filepath.Join(dirB, ".."), types.Recursive)).To(Succeed())

			Expect(w.IsRunning()).To(BeTrue())
			Expect(w.Paths()).To(Equal(map[string]types.RecursiveMode{
				dirA: types.Recursive,
			}))

			opts := lastOptions(svc)
			Expect(opts.Paths).To(Equal([]string{dirA}))
			Expect(opts.SinceWhen).To(Equal(SinceNow))
			Expect(opts.Latency).To(Equal(DefaultLatency))
			Expect(opts.Flags).To(Equal(fsevents.FileEvents | fsevents.NoDefer))
		})

		It("should reject a missing path and stay idle", func() {
			err := w.Watch(filepath.Join(tmpDir, uuid.NewString()), types.Recursive)
			Expect(err).To(MatchErr(types.ErrPathNotFound))

			Expect(w.IsRunning()).To(BeFalse())
			Expect(svc.Stats().StreamsCreated).To(BeZero())
		})

		It("should keep watching the old paths when a path is missing", func() {
			Expect(w.Watch(dirA, types.Recursive)).To(Succeed())

			err := w.Watch(filepath.Join(tmpDir, uuid.NewString()), types.Recursive)
			Expect(err).To(MatchErr(types.ErrPathNotFound))

			Expect(w.IsRunning()).To(BeTrue())
			Expect(lastOptions(svc).Paths).To(Equal([]string{dirA}))
		})

		It("should not restart the stream for a missing path", func() {
			Expect(w.Watch(dirA, types.Recursive)).To(Succeed())

			err := w.Watch(filepath.Join(tmpDir, uuid.NewString()), types.Recursive)
			Expect(err).To(MatchErr(types.ErrPathNotFound))

			stats := svc.Stats()
			Expect(stats.StreamsCreated).To(Equal(1))
			Expect(stats.StreamsReleased).To(BeZero())

			Expect(svc.Emit(
				raw(filepath.Join(dirA, "kept"), fsevent.ItemCreated|fsevent.IsFile, 1),
			)).To(Succeed())
			Expect(rec.Events()).To(HaveLen(1))
		})

		It("should cover every path with one stream", func() {
			Expect(w.Watch(dirC, types.NonRecursive)).To(Succeed())
			Expect(w.Watch(dirA, types.Recursive)).To(Succeed())

			Expect(lastOptions(svc).Paths).To(Equal([]string{dirA, dirC}))

			stats := svc.Stats()
			Expect(stats.StreamsCreated).To(Equal(2))
			Expect(stats.StreamsReleased).To(Equal(1))
		})

		It("should let the last recursive mode win", func() {
			Expect(w.Watch(dirA, types.Recursive)).To(Succeed())
			Expect(w.Watch(dirA, types.NonRecursive)).To(Succeed())

			Expect(w.Paths()).To(Equal(map[string]types.RecursiveMode{
				dirA: types.NonRecursive,
			}))
		})

		It("should report stream creation failures as generic errors", func() {
			svc.FailCreate(errors.New("no stream for you"))

			err := w.Watch(dirA, types.Recursive)
			Expect(err).To(MatchErr(types.ErrGeneric))

			Expect(w.IsRunning()).To(BeFalse())
			Expect(w.Paths()).To(BeEmpty())
			expectBalanced(svc)
		})

		It("should roll back when the new stream does not start", func() {
			Expect(w.Watch(dirA, types.Recursive)).To(Succeed())

			svc.FailStart(fsevents.ErrStartStream)

			err := w.Watch(dirC, types.Recursive)
			Expect(err).To(MatchErr(types.ErrGeneric))
			Expect(err).To(MatchErr(fsevents.ErrStartStream))

			Expect(w.IsRunning()).To(BeTrue())
			Expect(w.Paths()).To(Equal(map[string]types.RecursiveMode{
				dirA: types.Recursive,
			}))
			Expect(lastOptions(svc).Paths).To(Equal([]string{dirA}))

			stats := svc.Stats()
			Expect(stats.StreamsReleased).To(Equal(stats.StreamsCreated - 1))
			Expect(stats.RunLoopsReleased).To(Equal(stats.RunLoopsRetained - 1))
		})
	})

	Context("unwatching", func() {
		It("should fail for paths that are not watched", func() {
			Expect(w.Unwatch(dirA)).To(MatchErr(types.ErrWatchNotFound))
		})

		It("should go idle after the last path", func() {
			Expect(w.Watch(dirA, types.Recursive)).To(Succeed())
			Expect(w.Unwatch(dirA)).To(Succeed())

			Expect(w.IsRunning()).To(BeFalse())
			Expect(w.Paths()).To(BeEmpty())
			expectBalanced(svc)
		})

		It("should undo a watch", func() {
			Expect(w.Watch(dirA, types.Recursive)).To(Succeed())
			before := w.Paths()

			Expect(w.Watch(dirC, types.NonRecursive)).To(Succeed())
			Expect(w.Unwatch(dirC)).To(Succeed())

			Expect(w.Paths()).To(Equal(before))
			Expect(w.IsRunning()).To(BeTrue())
			Expect(lastOptions(svc).Paths).To(Equal([]string{dirA}))
		})

		It("should find paths removed from disk", func() {
			Expect(w.Watch(dirC, types.Recursive)).To(Succeed())
			Expect(os.Remove(dirC)).To(Succeed())

			Expect(w.Unwatch(dirC)).To(Succeed())
			Expect(w.IsRunning()).To(BeFalse())
		})

		It("should find paths removed from disk below a symbolic link", func() {
			link := filepath.Join(tmpDir, "link")
			Expect(os.Symlink(dirC, link)).To(Succeed())

			path := filepath.Join(link, "project")
			Expect(os.Mkdir(path, 0o755)).To(Succeed())

			Expect(w.Watch(path, types.Recursive)).To(Succeed())
			Expect(w.Paths()).To(HaveKey(filepath.Join(dirC, "project")))
			Expect(os.Remove(path)).To(Succeed())

			Expect(w.Unwatch(path)).To(Succeed())
			Expect(w.Paths()).To(BeEmpty())
			Expect(w.IsRunning()).To(BeFalse())
			expectBalanced(svc)
		})
	})

	Context("delivering events", func() {
		BeforeEach(func() {
			Expect(w.Watch(dirA, types.Recursive)).To(Succeed())
			Expect(w.Watch(dirC, types.NonRecursive)).To(Succeed())

			recognized, err := w.Configure(PreciseEvents(true))
			Expect(err).To(Succeed())
			Expect(recognized).To(BeTrue())
		})

		It("should filter paths by recursive mode", func() {
			Expect(svc.Emit(
				raw(filepath.Join(dirB, "deep"), fsevent.ItemCreated|fsevent.IsFile, 1),
				raw(filepath.Join(dirC, "child"), fsevent.ItemCreated|fsevent.IsDir, 2),
				raw(filepath.Join(dirC, "child", "grandchild"), fsevent.ItemCreated|fsevent.IsFile, 3),
				raw(filepath.Join(tmpDir, "outside"), fsevent.ItemCreated|fsevent.IsFile, 4),
				raw(dirC, fsevent.InodeMetaMod|fsevent.IsDir, 5),
			)).To(Succeed())

			Expect(rec.Events()).To(Equal([]types.Event{
				types.Event{Kind: types.KindCreate(types.CreateFile)}.
					WithPath(filepath.Join(dirB, "deep")),
				types.Event{Kind: types.KindCreate(types.CreateFolder)}.
					WithPath(filepath.Join(dirC, "child")),
				types.Event{Kind: types.KindModifyMetadata(types.MetadataAny)}.
					WithPath(dirC),
			}))
		})

		It("should keep index and rule order", func() {
			file := filepath.Join(dirA, "file")

			Expect(svc.Emit(
				raw(file, fsevent.ItemRenamed|fsevent.InodeMetaMod|fsevent.IsFile, 10),
				raw(file, fsevent.ItemRemoved|fsevent.IsFile, 11),
			)).To(Succeed())

			Expect(rec.Events()).To(Equal([]types.Event{
				types.Event{Kind: types.KindModifyName(types.RenameFrom)}.WithPath(file),
				types.Event{Kind: types.KindModifyMetadata(types.MetadataAny)}.WithPath(file),
				types.Event{Kind: types.KindRemove(types.RemoveFile)}.WithPath(file),
			}))
		})

		It("should report every notification as Any when imprecise", func() {
			recognized, err := w.Configure(PreciseEvents(false))
			Expect(err).To(Succeed())
			Expect(recognized).To(BeTrue())

			file := filepath.Join(dirA, "file")
			Expect(svc.Emit(
				raw(file, fsevent.MustScanSubDirs|fsevent.ItemModified, 1),
			)).To(Succeed())

			Expect(rec.Events()).To(Equal([]types.Event{
				types.Event{Kind: types.KindOther()}.
					WithFlag(types.FlagRescan).
					WithPath(file),
				types.Event{Kind: types.KindAny()}.WithPath(file),
			}))
		})

		It("should stamp own events with the process id", func() {
			file := filepath.Join(dirA, "file")
			Expect(svc.Emit(
				raw(file, fsevent.ItemModified|fsevent.OwnEvent|fsevent.IsFile, 1),
			)).To(Succeed())

			events := rec.Events()
			Expect(events).To(HaveLen(1))
			Expect(events[0].Attrs.ProcessID).To(BeEquivalentTo(os.Getpid()))
		})

		It("should drop paths that are not UTF-8", func() {
			Expect(svc.Emit(
				raw(dirA+"/\xff\xfe", fsevent.ItemCreated|fsevent.IsFile, 41),
				raw(filepath.Join(dirA, "ok"), fsevent.ItemCreated|fsevent.IsFile, 42),
			)).To(Succeed())

			Expect(rec.Events()).To(Equal([]types.Event{
				types.Event{Kind: types.KindCreate(types.CreateFile)}.
					WithPath(filepath.Join(dirA, "ok")),
			}))
			Expect(w.LastEventID()).To(BeEquivalentTo(42))
		})

		It("should treat unknown flags as fatal", func() {
			Expect(svc.Emit(
				fsevents.RawEvent{Path: dirA, Flags: 0x00800000 | uint32(fsevent.ItemModified)},
			)).To(Succeed())

			Expect(fatals).To(HaveLen(1))
			Expect(rec.Events()).To(BeEmpty())
		})

		It("should survive a panicking handler", func() {
			rec.hook = func(types.Result) error {
				panic("handler is broken")
			}

			Expect(svc.Emit(
				raw(filepath.Join(dirA, "1"), fsevent.ItemCreated|fsevent.IsFile, 1),
				raw(filepath.Join(dirA, "2"), fsevent.ItemCreated|fsevent.IsFile, 2),
			)).To(Succeed())

			Expect(rec.Events()).To(HaveLen(2))
			Expect(w.IsRunning()).To(BeTrue())
		})

		It("should clean up after the run loop died", func() {
			dyingSvc := fake.New()

			log, err := logger.ProvideLogger()
			Expect(err).To(Succeed())

			dying, err := New(
				WithHandler(rec),
				WithLogger(log),
				WithService(dyingSvc),
				WithFatal(func(msg string, _ ...any) {
					panic(msg)
				}),
			)
			Expect(err).To(Succeed())
			Expect(dying.Watch(dirA, types.Recursive)).To(Succeed())

			Expect(dyingSvc.Emit(
				fsevents.RawEvent{Path: dirA, Flags: 0x00800000 | uint32(fsevent.ItemModified)},
			)).To(Succeed())

			Expect(dying.Close()).NotTo(Succeed())
			expectBalanced(dyingSvc)
			Expect(dyingSvc.Stats().RunLoopsRetained).To(Equal(1))
		})

		It("should keep going after handler errors", func() {
			rec.hook = func(types.Result) error {
				return errors.New("sink is gone")
			}

			Expect(svc.Emit(
				raw(filepath.Join(dirA, "1"), fsevent.ItemCreated|fsevent.IsFile, 1),
			)).To(Succeed())
			Expect(svc.Emit(
				raw(filepath.Join(dirA, "2"), fsevent.ItemCreated|fsevent.IsFile, 2),
			)).To(Succeed())

			Expect(rec.Events()).To(HaveLen(2))
		})

		It("should not deliver events of unwatched paths", func() {
			Expect(w.Unwatch(dirC)).To(Succeed())

			Expect(svc.Emit(
				raw(filepath.Join(dirC, "child"), fsevent.ItemCreated|fsevent.IsFile, 1),
			)).To(Succeed())

			Expect(rec.Events()).To(BeEmpty())
		})
	})

	Context("configured", func() {
		It("should not recognize ongoing events", func() {
			recognized, err := w.Configure(OngoingEvents(true, time.Second))
			Expect(err).To(Succeed())
			Expect(recognized).To(BeFalse())
		})

		It("should reject a negative latency", func() {
			recognized, err := w.Configure(Latency(-time.Millisecond))
			Expect(err).To(MatchErr(types.ErrInvalidConfig))
			Expect(recognized).To(BeFalse())
		})

		It("should restart a running stream", func() {
			Expect(w.Watch(dirA, types.Recursive)).To(Succeed())

			recognized, err := w.Configure(Latency(time.Second))
			Expect(err).To(Succeed())
			Expect(recognized).To(BeTrue())

			Expect(w.IsRunning()).To(BeTrue())
			Expect(lastOptions(svc).Latency).To(Equal(time.Second))
			Expect(svc.Stats().StreamsCreated).To(Equal(2))
		})

		It("should not start an idle watcher", func() {
			recognized, err := w.Configure(Latency(time.Second))
			Expect(err).To(Succeed())
			Expect(recognized).To(BeTrue())

			Expect(w.IsRunning()).To(BeFalse())
			Expect(svc.Stats().StreamsCreated).To(BeZero())
		})

		It("should resume replay from the last event id", func() {
			_, err := w.Configure(SinceEventID(100))
			Expect(err).To(Succeed())

			Expect(w.Watch(dirA, types.Recursive)).To(Succeed())
			Expect(lastOptions(svc).SinceWhen).To(BeEquivalentTo(100))

			Expect(svc.Emit(
				raw(filepath.Join(dirA, "f"), fsevent.ItemModified, 150),
				raw("", fsevent.HistoryDone, 151),
			)).To(Succeed())

			Expect(w.Watch(dirC, types.Recursive)).To(Succeed())
			Expect(lastOptions(svc).SinceWhen).To(BeEquivalentTo(151))

			_, err = w.Configure(SinceEventID(SinceNow))
			Expect(err).To(Succeed())
			Expect(lastOptions(svc).SinceWhen).To(Equal(SinceNow))
		})
	})

	Context("closed", func() {
		It("should release every native object", func() {
			Expect(w.Watch(dirA, types.Recursive)).To(Succeed())
			Expect(w.Watch(dirC, types.Recursive)).To(Succeed())

			Expect(w.Close()).To(Succeed())

			Expect(w.IsRunning()).To(BeFalse())
			Expect(svc.Running()).To(BeFalse())
			expectBalanced(svc)
		})

		It("should balance native objects under concurrent use", func() {
			const rounds = 50

			p := pool.New().WithErrors()

			p.Go(func() error {
				for i := 0; i < rounds; i++ {
					if err := w.Watch(dirA, types.Recursive); err != nil {
						return err
					}
					if err := w.Unwatch(dirA); err != nil {
						return err
					}
				}
				return nil
			})

			p.Go(func() error {
				for i := 0; i < rounds; i++ {
					if err := w.Watch(dirC, types.NonRecursive); err != nil {
						return err
					}
					if _, err := w.Configure(Latency(time.Duration(i) * time.Millisecond)); err != nil {
						return err
					}
					if err := w.Unwatch(dirC); err != nil {
						return err
					}
				}
				return nil
			})

			p.Go(func() error {
				for i := 0; i < 4*rounds; i++ {
					err := svc.Emit(
						raw(filepath.Join(dirA, "busy"), fsevent.ItemModified|fsevent.IsFile, uint64(i+1)),
						raw(filepath.Join(dirC, "busy"), fsevent.ItemModified|fsevent.IsFile, uint64(i+1)),
					)
					if err != nil && !errors.Is(err, fake.ErrNotRunning) {
						return err
					}
				}
				return nil
			})

			Expect(p.Wait()).To(Succeed())
			Expect(w.Close()).To(Succeed())

			Expect(svc.Running()).To(BeFalse())
			Expect(svc.Stats().StreamsCreated).To(BeNumerically(">=", rounds))
			expectBalanced(svc)
			Expect(fatals).To(BeEmpty())
		})

		It("should refuse every later call", func() {
			Expect(w.Close()).To(Succeed())

			err := w.Watch(dirA, types.Recursive)
			Expect(err).To(MatchErr(ErrWatcherClosed))
			Expect(err).To(MatchErr(types.ErrGeneric))

			Expect(w.Unwatch(dirA)).To(MatchErr(ErrWatcherClosed))

			_, err = w.Configure(PreciseEvents(true))
			Expect(err).To(MatchErr(ErrWatcherClosed))

			Expect(w.Close()).To(MatchErr(ErrWatcherClosed))
		})
	})
})

var _ = DescribeTable("Recursive filter",
	func(root, path string, mode types.RecursiveMode, expect bool) {
		Expect(Within(root, path, mode)).To(Equal(expect))
	},
	Entry("root itself", "/w", "/w", types.NonRecursive, true),
	Entry("direct child", "/w", "/w/x", types.NonRecursive, true),
	Entry("grandchild of a flat root", "/w", "/w/x/y", types.NonRecursive, false),
	Entry("grandchild of a recursive root", "/w", "/w/x/y", types.Recursive, true),
	Entry("sibling sharing a prefix", "/w", "/wx", types.Recursive, false),
	Entry("parent", "/w/x", "/w", types.Recursive, false),
	Entry("child of the file system root", "/", "/x", types.NonRecursive, true),
	Entry("grandchild of the file system root", "/", "/x/y", types.NonRecursive, false),
)
