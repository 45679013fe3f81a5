// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !darwin || !cgo

package fsevents

// New returns the native service. FSEvents only exists on Darwin and
// needs cgo.
func New() (Service, error) {
	return nil, ErrUnsupported
}
