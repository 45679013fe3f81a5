// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fsevents

import "errors"

var (
	ErrUnsupported    = errors.New("FSEvents is not available on this platform.")
	ErrNoPaths        = errors.New("no paths to watch.")
	ErrCreateStream   = errors.New("FSEventStreamCreate failed.")
	ErrStartStream    = errors.New("FSEventStreamStart failed.")
	ErrPathConversion = errors.New("path cannot be converted to CFString.")
)
