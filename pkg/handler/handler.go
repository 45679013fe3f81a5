// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler adapts the sinks a user can hand to a watcher.
//
// Handlers are called from the run-loop thread of the watcher, one
// result at a time. A handler that blocks stalls event delivery of that
// watcher. A returned error is logged by the watcher and never stops
// the stream.
package handler

import (
	"github.com/black-desk/fsevwatch/pkg/types"
)

type Handler interface {
	HandleEvent(result types.Result) error
}

// Func calls a plain function for every result.
type Func func(result types.Result)

func (f Func) HandleEvent(result types.Result) error {
	f(result)
	return nil
}

// Chan sends to a bounded channel without waiting.
// Results that do not fit are dropped and ErrQueueFull is returned.
type Chan chan<- types.Result

func (c Chan) HandleEvent(result types.Result) error {
	select {
	case c <- result:
		return nil
	default:
		return ErrQueueFull
	}
}
