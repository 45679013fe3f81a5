// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import "errors"

var (
	ErrQueueFull    = errors.New("queue is full.")
	ErrDisconnected = errors.New("receiver disconnected.")
)
