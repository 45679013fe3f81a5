// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

type Flag uint8

const (
	FlagNone    Flag = iota // None
	FlagRescan              // Rescan
	FlagOngoing             // Ongoing
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Flag -linecomment
