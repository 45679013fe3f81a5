// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watcher

import (
	"github.com/black-desk/fsevwatch/pkg/registry"
	"github.com/black-desk/fsevwatch/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
)

// Watch adds path to the watched set, replacing the mode of a path that
// is already watched. The stream is rebuilt to include it.
func (w *Watcher) Watch(path string, mode types.RecursiveMode) (err error) {
	defer Wrap(&err, "watch %s", path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		err = types.NewError(types.ErrorKindGeneric, ErrWatcherClosed, path)
		return
	}

	// Leave the running stream alone for a path that cannot be added.
	_, err = registry.Canonicalize(path)
	if err != nil {
		return
	}

	err = w.stop()
	if err != nil {
		return
	}

	prevPath, prevMode, existed := w.registry.Lookup(path)

	var canonical string
	canonical, err = w.registry.Add(path, mode)
	if err != nil {
		w.restore()
		return
	}

	w.log.Debugw("Path added.",
		"path", canonical,
		"mode", mode,
	)

	err = w.start()
	if err == nil {
		return
	}

	if existed {
		w.registry.Set(prevPath, prevMode)
	} else {
		w.registry.Delete(canonical)
	}

	w.restore()
	return
}

// Unwatch removes path from the watched set. The watcher goes idle when
// no path is left.
func (w *Watcher) Unwatch(path string) (err error) {
	defer Wrap(&err, "unwatch %s", path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		err = types.NewError(types.ErrorKindGeneric, ErrWatcherClosed, path)
		return
	}

	err = w.stop()
	if err != nil {
		return
	}

	canonical, mode, err := w.registry.Remove(path)
	if err != nil {
		w.restore()
		return
	}

	w.log.Debugw("Path removed.",
		"path", canonical,
	)

	err = w.start()
	if err == nil {
		return
	}

	w.registry.Set(canonical, mode)
	w.restore()
	return
}

// Configure applies a runtime option and rebuilds a running stream so
// that it takes effect. It returns false for options FSEvents does not
// support.
func (w *Watcher) Configure(cfg Config) (recognized bool, err error) {
	defer Wrap(&err, "configure %s", cfg)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		err = types.NewError(types.ErrorKindGeneric, ErrWatcherClosed)
		return
	}

	prev := w.settings

	recognized, err = w.settings.apply(cfg)
	if err != nil {
		err = &types.Error{Kind: types.ErrorKindInvalidConfig, Err: err}
		return
	}

	if !recognized {
		w.log.Debugw("Ignore unrecognized option.", "option", cfg)
		return
	}

	wasRunning := w.running != nil

	err = w.stop()
	if err != nil {
		return
	}

	// A new replay position wins over the position of the old stream.
	if cfg.kind == configSinceEventID {
		w.lastEventID.Store(0)
	}

	if !wasRunning {
		return
	}

	err = w.start()
	if err == nil {
		return
	}

	w.settings = prev
	w.restore()
	return
}

// IsRunning reports whether a stream is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.running != nil
}

// Paths returns a copy of the watched paths in canonical form.
func (w *Watcher) Paths() map[string]types.RecursiveMode {
	return w.registry.Snapshot()
}

// LastEventID returns the id of the last notification received. Pass it
// to SinceEventID to resume after the watcher has been closed.
func (w *Watcher) LastEventID() uint64 {
	return w.lastEventID.Load()
}

// Close stops the stream. The watcher cannot be used afterwards.
func (w *Watcher) Close() (err error) {
	defer Wrap(&err, "close FSEvents watcher")

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		err = types.NewError(types.ErrorKindGeneric, ErrWatcherClosed)
		return
	}

	w.closed = true

	err = w.stop()
	if err != nil {
		return
	}

	w.log.Debugw("FSEvents watcher closed.")
	return
}
