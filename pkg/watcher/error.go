// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watcher

import "errors"

var (
	ErrHandlerMissing  = errors.New("event handler is missing.")
	ErrLoggerMissing   = errors.New("logger is missing.")
	ErrServiceMissing  = errors.New("FSEvents service is missing.")
	ErrWatcherClosed   = errors.New("watcher is closed.")
	ErrNegativeLatency = errors.New("latency must not be negative.")
)
