// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watcher

import (
	"fmt"
	"time"

	"github.com/black-desk/fsevwatch/internal/fsevents"
)

// SinceNow disables replay of historical events.
const SinceNow = fsevents.SinceNow

// DefaultLatency is the coalescing window used when none is configured.
const DefaultLatency time.Duration = 0

type configKind uint8

const (
	configLatency configKind = iota
	configSinceEventID
	configPreciseEvents
	configOngoingEvents
)

// Config is a single runtime option of a Watcher.
// Build one with Latency, SinceEventID, PreciseEvents or OngoingEvents.
type Config struct {
	kind     configKind
	duration time.Duration
	id       uint64
	enabled  bool
}

// Latency sets how long the OS may coalesce notifications before
// delivering them.
func Latency(d time.Duration) Config {
	return Config{kind: configLatency, duration: d}
}

// SinceEventID makes the next stream replay history starting after id.
// Use SinceNow for live events only.
func SinceEventID(id uint64) Config {
	return Config{kind: configSinceEventID, id: id}
}

// PreciseEvents turns on the fine grained event kinds. Without it every
// notification is reported as an Any event.
func PreciseEvents(enabled bool) Config {
	return Config{kind: configPreciseEvents, enabled: enabled}
}

// OngoingEvents is not supported by FSEvents; Configure reports it as
// unrecognized.
func OngoingEvents(enabled bool, delay time.Duration) Config {
	return Config{kind: configOngoingEvents, enabled: enabled, duration: delay}
}

func (c Config) String() string {
	switch c.kind {
	case configLatency:
		return fmt.Sprintf("Latency(%s)", c.duration)
	case configSinceEventID:
		if c.id == SinceNow {
			return "SinceEventID(now)"
		}
		return fmt.Sprintf("SinceEventID(%d)", c.id)
	case configPreciseEvents:
		return fmt.Sprintf("PreciseEvents(%t)", c.enabled)
	case configOngoingEvents:
		return fmt.Sprintf("OngoingEvents(%t, %s)", c.enabled, c.duration)
	}

	return "Unknown"
}

type settings struct {
	latency time.Duration
	since   uint64
	precise bool
}

func defaultSettings() settings {
	return settings{
		latency: DefaultLatency,
		since:   SinceNow,
	}
}

// apply returns false for options the FSEvents backend does not know.
func (s *settings) apply(c Config) (recognized bool, err error) {
	switch c.kind {
	case configLatency:
		if c.duration < 0 {
			err = ErrNegativeLatency
			return
		}
		s.latency = c.duration
	case configSinceEventID:
		s.since = c.id
	case configPreciseEvents:
		s.precise = c.enabled
	default:
		return false, nil
	}

	return true, nil
}
