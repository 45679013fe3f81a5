// Created by interfacer; DO NOT EDIT

package interfaces

import (
	"github.com/black-desk/fsevwatch/pkg/types"
	"github.com/black-desk/fsevwatch/pkg/watcher"
)

// Watcher is an interface generated for "github.com/black-desk/fsevwatch/pkg/watcher.Watcher".
type Watcher interface {
	Close() error
	Configure(watcher.Config) (bool, error)
	IsRunning() bool
	LastEventID() uint64
	Paths() map[string]types.RecursiveMode
	Unwatch(string) error
	Watch(string, types.RecursiveMode) error
}
