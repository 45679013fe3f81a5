// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fsevent

import (
	"fmt"
	"math/bits"
	"strings"
)

// FlagSet is the decoded form of an FSEventStreamEventFlags word.
type FlagSet uint32

const (
	MustScanSubDirs FlagSet = 0x00000001
	UserDropped     FlagSet = 0x00000002
	KernelDropped   FlagSet = 0x00000004
	IdsWrapped      FlagSet = 0x00000008
	HistoryDone     FlagSet = 0x00000010
	RootChanged     FlagSet = 0x00000020
	Mount           FlagSet = 0x00000040
	Unmount         FlagSet = 0x00000080
	ItemCreated     FlagSet = 0x00000100
	ItemRemoved     FlagSet = 0x00000200
	InodeMetaMod    FlagSet = 0x00000400
	ItemRenamed     FlagSet = 0x00000800
	ItemModified    FlagSet = 0x00001000
	FinderInfoMod   FlagSet = 0x00002000
	ItemChangeOwner FlagSet = 0x00004000
	ItemXattrMod    FlagSet = 0x00008000
	IsFile          FlagSet = 0x00010000
	IsDir           FlagSet = 0x00020000
	IsSymlink       FlagSet = 0x00040000
	OwnEvent        FlagSet = 0x00080000
	IsHardlink      FlagSet = 0x00100000
	IsLastHardlink  FlagSet = 0x00200000
	ItemCloned      FlagSet = 0x00400000
)

// KnownFlags has every bit this package knows how to translate.
// Supporting a new OS flag means adding a constant above and widening
// this mask.
const KnownFlags FlagSet = 0x007fffff

var flagNames = [...]string{
	"MustScanSubDirs",
	"UserDropped",
	"KernelDropped",
	"IdsWrapped",
	"HistoryDone",
	"RootChanged",
	"Mount",
	"Unmount",
	"ItemCreated",
	"ItemRemoved",
	"InodeMetaMod",
	"ItemRenamed",
	"ItemModified",
	"FinderInfoMod",
	"ItemChangeOwner",
	"ItemXattrMod",
	"IsFile",
	"IsDir",
	"IsSymlink",
	"OwnEvent",
	"IsHardlink",
	"IsLastHardlink",
	"ItemCloned",
}

// Decode checks that raw only has known bits set.
func Decode(raw uint32) (FlagSet, error) {
	unknown := FlagSet(raw) &^ KnownFlags
	if unknown != 0 {
		return 0, &ErrUnknownFlags{Raw: raw, Unknown: uint32(unknown)}
	}

	return FlagSet(raw), nil
}

// Has reports whether all bits of other are set in s.
func (s FlagSet) Has(other FlagSet) bool {
	return s&other == other
}

func (s FlagSet) Union(other FlagSet) FlagSet {
	return s | other
}

func (s FlagSet) Intersect(other FlagSet) FlagSet {
	return s & other
}

func (s FlagSet) IsEmpty() bool {
	return s == 0
}

func (s FlagSet) String() string {
	if s == 0 {
		return "None"
	}

	var names []string
	for rest := uint32(s); rest != 0; rest &= rest - 1 {
		i := bits.TrailingZeros32(rest)
		if i < len(flagNames) {
			names = append(names, flagNames[i])
			continue
		}
		names = append(names, fmt.Sprintf("0x%x", uint32(1)<<i))
	}

	return strings.Join(names, "|")
}
