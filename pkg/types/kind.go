// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

import "fmt"

// EventType is the top-level variant of an EventKind.
type EventType uint8

const (
	EventTypeAny    EventType = iota // Any
	EventTypeAccess                  // Access
	EventTypeCreate                  // Create
	EventTypeModify                  // Modify
	EventTypeRemove                  // Remove
	EventTypeOther                   // Other
)

type CreateKind uint8

const (
	CreateAny    CreateKind = iota // Any
	CreateFile                     // File
	CreateFolder                   // Folder
	CreateOther                    // Other
)

type RemoveKind uint8

const (
	RemoveAny    RemoveKind = iota // Any
	RemoveFile                     // File
	RemoveFolder                   // Folder
	RemoveOther                    // Other
)

type ModifyKind uint8

const (
	ModifyAny      ModifyKind = iota // Any
	ModifyData                       // Data
	ModifyMetadata                   // Metadata
	ModifyName                       // Name
	ModifyOther                      // Other
)

type DataChange uint8

const (
	DataAny     DataChange = iota // Any
	DataSize                      // Size
	DataContent                   // Content
	DataOther                     // Other
)

type MetadataKind uint8

const (
	MetadataAny       MetadataKind = iota // Any
	MetadataOwnership                     // Ownership
	MetadataExtended                      // Extended
	MetadataOther                         // Other
)

type RenameMode uint8

const (
	RenameAny   RenameMode = iota // Any
	RenameTo                      // To
	RenameFrom                    // From
	RenameBoth                    // Both
	RenameOther                   // Other
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=EventType,CreateKind,RemoveKind,ModifyKind,DataChange,MetadataKind,RenameMode,AccessKind -linecomment -output eventkind_string.go

// AccessKind is reserved. No backend in this module emits access events.
type AccessKind uint8

const (
	AccessAny   AccessKind = iota // Any
	AccessRead                    // Read
	AccessOpen                    // Open
	AccessClose                   // Close
	AccessOther                   // Other
)

// EventKind is a tagged variant. Only the sub-kind fields belonging to
// Type are meaningful, the others stay zero so that two kinds can be
// compared with ==.
type EventKind struct {
	Type EventType

	Create CreateKind
	Remove RemoveKind
	Modify ModifyKind
	Access AccessKind

	// Valid when Modify is ModifyData.
	Data DataChange
	// Valid when Modify is ModifyMetadata.
	Metadata MetadataKind
	// Valid when Modify is ModifyName.
	Rename RenameMode
}

func KindAny() EventKind {
	return EventKind{Type: EventTypeAny}
}

func KindOther() EventKind {
	return EventKind{Type: EventTypeOther}
}

func KindAccess(k AccessKind) EventKind {
	return EventKind{Type: EventTypeAccess, Access: k}
}

func KindCreate(k CreateKind) EventKind {
	return EventKind{Type: EventTypeCreate, Create: k}
}

func KindRemove(k RemoveKind) EventKind {
	return EventKind{Type: EventTypeRemove, Remove: k}
}

func KindModify(k ModifyKind) EventKind {
	return EventKind{Type: EventTypeModify, Modify: k}
}

func KindModifyData(c DataChange) EventKind {
	return EventKind{Type: EventTypeModify, Modify: ModifyData, Data: c}
}

func KindModifyMetadata(k MetadataKind) EventKind {
	return EventKind{Type: EventTypeModify, Modify: ModifyMetadata, Metadata: k}
}

func KindModifyName(m RenameMode) EventKind {
	return EventKind{Type: EventTypeModify, Modify: ModifyName, Rename: m}
}

func (k EventKind) IsCreate() bool { return k.Type == EventTypeCreate }
func (k EventKind) IsRemove() bool { return k.Type == EventTypeRemove }
func (k EventKind) IsModify() bool { return k.Type == EventTypeModify }
func (k EventKind) IsAccess() bool { return k.Type == EventTypeAccess }
func (k EventKind) IsOther() bool  { return k.Type == EventTypeOther }

// String renders the variant the way it is written in documentation,
// e.g. "Modify(Name(From))".
func (k EventKind) String() string {
	switch k.Type {
	case EventTypeAny:
		return "Any"
	case EventTypeOther:
		return "Other"
	case EventTypeAccess:
		return fmt.Sprintf("Access(%s)", k.Access)
	case EventTypeCreate:
		return fmt.Sprintf("Create(%s)", k.Create)
	case EventTypeRemove:
		return fmt.Sprintf("Remove(%s)", k.Remove)
	case EventTypeModify:
		switch k.Modify {
		case ModifyData:
			return fmt.Sprintf("Modify(Data(%s))", k.Data)
		case ModifyMetadata:
			return fmt.Sprintf("Modify(Metadata(%s))", k.Metadata)
		case ModifyName:
			return fmt.Sprintf("Modify(Name(%s))", k.Rename)
		default:
			return fmt.Sprintf("Modify(%s)", k.Modify)
		}
	}

	return fmt.Sprintf("EventKind(%d)", k.Type)
}
