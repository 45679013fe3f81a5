// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watcher

import (
	"sync"
	"sync/atomic"

	"github.com/black-desk/fsevwatch/internal/fsevents"
	"github.com/black-desk/fsevwatch/pkg/fsevent"
	"github.com/black-desk/fsevwatch/pkg/handler"
	"github.com/black-desk/fsevwatch/pkg/registry"
	"github.com/black-desk/fsevwatch/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// Watcher delivers FSEvents notifications of the registered paths to a
// handler. One stream covers all paths; it is rebuilt whenever the set
// of paths or a recognized option changes.
//
// The handler runs on a dedicated OS thread. It must not call back into
// the Watcher.
type Watcher struct {
	mu sync.Mutex

	log      *zap.SugaredLogger
	svc      fsevents.Service
	handler  handler.Handler
	registry *registry.Registry

	translator fsevent.Translator
	fatal      func(msg string, keysAndValues ...any)

	settings settings

	lastEventID atomic.Uint64

	running *runner
	closed  bool
}

//go:generate go run github.com/rjeczalik/interfaces/cmd/interfacer@v0.3.0 -for github.com/black-desk/fsevwatch/pkg/watcher.Watcher -as interfaces.Watcher -o ../interfaces/watcher.go

func New(opts ...Opt) (ret *Watcher, err error) {
	defer Wrap(&err, "create FSEvents watcher")

	w := &Watcher{
		registry:   registry.New(),
		translator: fsevent.DefaultTranslator(),
		settings:   defaultSettings(),
	}

	for i := range opts {
		w, err = opts[i](w)
		if err != nil {
			return
		}
	}

	if w.log == nil {
		w.log = zap.NewNop().Sugar()
	}

	if w.fatal == nil {
		w.fatal = w.log.Fatalw
	}

	if w.handler == nil {
		err = ErrHandlerMissing
		return
	}

	if w.svc == nil {
		w.svc, err = fsevents.New()
		if err != nil {
			return
		}
	}

	ret = w

	w.log.Debugw("Create a new FSEvents watcher.",
		"latency", w.settings.latency,
		"precise", w.settings.precise,
	)

	return
}

type Opt func(w *Watcher) (ret *Watcher, err error)

func WithHandler(h handler.Handler) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if h == nil {
			err = ErrHandlerMissing
			return
		}

		w.handler = h
		ret = w
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		w.log = log
		ret = w
		return
	}
}

// WithService replaces the native FSEvents service.
func WithService(svc fsevents.Service) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if svc == nil {
			err = ErrServiceMissing
			return
		}

		w.svc = svc
		ret = w
		return
	}
}

// WithConfig applies options before the first stream is created.
// Unrecognized options are ignored.
func WithConfig(cfgs ...Config) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		for _, cfg := range cfgs {
			_, err = w.settings.apply(cfg)
			if err != nil {
				err = &types.Error{
					Kind: types.ErrorKindInvalidConfig,
					Msg:  cfg.String(),
					Err:  err,
				}
				return
			}
		}

		ret = w
		return
	}
}
