// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"github.com/black-desk/fsevwatch/pkg/types"
	"github.com/black-desk/fsevwatch/pkg/watcher"
)

// WatcherConfig returns the watcher options described by c.
func (c *Config) WatcherConfig() []watcher.Config {
	return []watcher.Config{
		watcher.Latency(c.Latency),
		watcher.SinceEventID(c.sinceEventID),
		watcher.PreciseEvents(*c.Precise),
	}
}

func (p *Path) Mode() types.RecursiveMode {
	if p.Recursive != nil && !*p.Recursive {
		return types.NonRecursive
	}

	return types.Recursive
}

// SinceEventID is watcher.SinceNow unless a replay position is set.
func (c *Config) SinceEventID() uint64 {
	return c.sinceEventID
}
