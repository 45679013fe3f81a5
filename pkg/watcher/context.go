// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watcher

import (
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/black-desk/fsevwatch/internal/fsevents"
	"github.com/black-desk/fsevwatch/pkg/fsevent"
	"github.com/black-desk/fsevwatch/pkg/handler"
	"github.com/black-desk/fsevwatch/pkg/types"
	"go.uber.org/zap"
)

// streamContext is bound to exactly one stream. All its methods but
// Release run on the run-loop thread.
type streamContext struct {
	log        *zap.SugaredLogger
	handler    handler.Handler
	roots      map[string]types.RecursiveMode
	precise    bool
	translator fsevent.Translator
	fatal      func(msg string, keysAndValues ...any)

	lastEventID *atomic.Uint64

	handlerFailed bool
	released      atomic.Bool
}

func (w *Watcher) newStreamContext(roots map[string]types.RecursiveMode) *streamContext {
	return &streamContext{
		log:         w.log,
		handler:     w.handler,
		roots:       roots,
		precise:     w.settings.precise,
		translator:  w.translator,
		fatal:       w.fatal,
		lastEventID: &w.lastEventID,
	}
}

func (c *streamContext) Receive(events []fsevents.RawEvent) {
	for i := range events {
		c.receive(&events[i])
	}
}

func (c *streamContext) receive(raw *fsevents.RawEvent) {
	if raw.ID != 0 {
		c.lastEventID.Store(raw.ID)
	}

	if !utf8.ValidString(raw.Path) {
		c.log.Debugw("Drop notification with invalid UTF-8 path.",
			"path", []byte(raw.Path),
		)
		return
	}

	flags, err := fsevent.Decode(raw.Flags)
	if err != nil {
		c.fatal("Unknown FSEvents flags.",
			"path", raw.Path,
			"id", raw.ID,
			"error", err,
		)
		return
	}

	if !c.covers(raw.Path) {
		return
	}

	for _, event := range c.translator.Translate(flags, c.precise) {
		c.deliver(event.WithPath(raw.Path))
	}
}

// covers reports whether path is a root itself, a descendant of a
// recursive root or a direct child of a non-recursive root.
func (c *streamContext) covers(path string) bool {
	for root, mode := range c.roots {
		if within(root, path, mode) {
			return true
		}
	}

	return false
}

func within(root, path string, mode types.RecursiveMode) bool {
	if path == root {
		return true
	}

	prefix := root
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	rest, ok := strings.CutPrefix(path, prefix)
	if !ok || rest == "" {
		return false
	}

	return mode == types.Recursive || !strings.Contains(rest, "/")
}

func (c *streamContext) deliver(event types.Event) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}

		c.log.Errorw("Event handler panicked.",
			"event", event,
			"panic", p,
		)
	}()

	err := c.handler.HandleEvent(types.Result{Event: event})
	if err == nil || c.handlerFailed {
		return
	}

	c.handlerFailed = true
	c.log.Warnw("Event handler failed, later failures of this stream are not logged.",
		"event", event,
		"error", err,
	)
}

func (c *streamContext) Release() {
	if c.released.Swap(true) {
		c.log.DPanicw("Stream context released twice.")
		return
	}

	c.log.Debugw("Stream context released.")
}
