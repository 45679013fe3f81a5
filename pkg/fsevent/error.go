// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fsevent

import "fmt"

type ErrUnknownFlags struct {
	Raw     uint32
	Unknown uint32
}

func (e *ErrUnknownFlags) Error() string {
	return fmt.Sprintf(
		"Unable to decode event flags 0x%08x: unknown bits 0x%08x.",
		e.Raw, e.Unknown,
	)
}
