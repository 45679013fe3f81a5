// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fsevent

import (
	"github.com/black-desk/fsevwatch/pkg/types"
	"golang.org/x/sys/unix"
)

const (
	InfoUserDropped   = "rescan: user dropped"
	InfoKernelDropped = "rescan: kernel dropped"
	InfoRootChanged   = "root changed"
	// InfoMount is used for unmount notifications as well.
	InfoMount      = "mount"
	InfoSymlink    = "is: symlink"
	InfoHardlink   = "is: hardlink"
	InfoClone      = "is: clone"
	InfoFinderInfo = "meta: finder info"
)

// Translator turns one FSEvents flag word into events.
// ProcessID is stamped on events caused by this process.
type Translator struct {
	ProcessID uint32
}

var defaultTranslator = Translator{ProcessID: uint32(unix.Getpid())}

// DefaultTranslator stamps own events with the id of the current
// process.
func DefaultTranslator() Translator {
	return defaultTranslator
}

// Translate uses the id of the current process for own events.
func Translate(flags FlagSet, precise bool) []types.Event {
	return defaultTranslator.Translate(flags, precise)
}

// Translate returns the events of a single notification in a fixed
// order. The caller attaches the path.
//
// When precise is false every notification that is not a history-done
// sentinel becomes a single Any event, preceded by a rescan event if
// the OS dropped notifications.
func (t Translator) Translate(flags FlagSet, precise bool) (ret []types.Event) {
	if flags.Has(HistoryDone) {
		return nil
	}

	ret = make([]types.Event, 0, 2)

	if flags.Has(MustScanSubDirs) {
		ev := types.Event{Kind: types.KindOther()}.WithFlag(types.FlagRescan)

		if flags.Has(UserDropped) {
			ev = ev.WithInfo(InfoUserDropped)
		} else if flags.Has(KernelDropped) {
			ev = ev.WithInfo(InfoKernelDropped)
		}

		ret = append(ret, ev)
	}

	if !precise {
		ret = append(ret, types.Event{Kind: types.KindAny()})
		return
	}

	first := len(ret)

	if flags.Has(RootChanged) {
		ret = append(ret, newEvent(types.KindModifyName(types.RenameFrom)).
			WithInfo(InfoRootChanged))
	}

	if flags.Has(Mount) {
		ret = append(ret, newEvent(types.KindCreate(types.CreateOther)).
			WithInfo(InfoMount))
	}

	if flags.Has(Unmount) {
		ret = append(ret, newEvent(types.KindRemove(types.RemoveOther)).
			WithInfo(InfoMount))
	}

	if flags.Has(ItemCreated) {
		ret = append(ret, created(flags))
	}

	if flags.Has(ItemRemoved) {
		ret = append(ret, removed(flags))
	}

	// FSEvents does not tell which half of a rename this is.
	if flags.Has(ItemRenamed) {
		ret = append(ret, newEvent(types.KindModifyName(types.RenameFrom)))
	}

	if flags.Has(InodeMetaMod) {
		ret = append(ret, newEvent(types.KindModifyMetadata(types.MetadataAny)))
	}

	if flags.Has(FinderInfoMod) {
		ret = append(ret, newEvent(types.KindModifyMetadata(types.MetadataOther)).
			WithInfo(InfoFinderInfo))
	}

	if flags.Has(ItemChangeOwner) {
		ret = append(ret, newEvent(types.KindModifyMetadata(types.MetadataOwnership)))
	}

	if flags.Has(ItemXattrMod) {
		ret = append(ret, newEvent(types.KindModifyMetadata(types.MetadataExtended)))
	}

	if flags.Has(ItemModified) {
		ret = append(ret, newEvent(types.KindModifyData(types.DataContent)))
	}

	if flags.Has(OwnEvent) {
		for i := first; i < len(ret); i++ {
			ret[i].Attrs.ProcessID = t.ProcessID
		}
	}

	return
}

func newEvent(kind types.EventKind) types.Event {
	return types.Event{Kind: kind}
}

func created(flags FlagSet) types.Event {
	switch {
	case flags.Has(IsDir):
		return newEvent(types.KindCreate(types.CreateFolder))
	case flags.Has(IsFile):
		return newEvent(types.KindCreate(types.CreateFile))
	}

	if info := linkInfo(flags); info != "" {
		return newEvent(types.KindCreate(types.CreateOther)).WithInfo(info)
	}

	return newEvent(types.KindCreate(types.CreateAny))
}

func removed(flags FlagSet) types.Event {
	switch {
	case flags.Has(IsDir):
		return newEvent(types.KindRemove(types.RemoveFolder))
	case flags.Has(IsFile):
		return newEvent(types.KindRemove(types.RemoveFile))
	}

	if info := linkInfo(flags); info != "" {
		return newEvent(types.KindRemove(types.RemoveOther)).WithInfo(info)
	}

	return newEvent(types.KindRemove(types.RemoveAny))
}

func linkInfo(flags FlagSet) string {
	switch {
	case flags.Has(IsSymlink):
		return InfoSymlink
	case flags.Has(IsHardlink):
		return InfoHardlink
	case flags.Has(ItemCloned):
		return InfoClone
	}

	return ""
}
