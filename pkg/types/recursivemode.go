// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

// RecursiveMode tells whether changes below the direct children of a
// watched directory are reported.
type RecursiveMode uint8

const (
	NonRecursive RecursiveMode = iota // NonRecursive
	Recursive                         // Recursive
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=RecursiveMode -linecomment
