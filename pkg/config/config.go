// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"time"

	"go.uber.org/zap"
)

type Config struct {
	Version string `yaml:"version" validate:"required,eq=1"`

	// Latency is how long FSEvents may coalesce notifications.
	Latency time.Duration `yaml:"latency" validate:"gte=0"`
	// Since is "now" or the event id to replay history from.
	Since string `yaml:"since" validate:"omitempty,eq=now|number"`
	// Precise reports fine grained event kinds. It defaults to true.
	Precise *bool `yaml:"precise"`

	Paths []Path `yaml:"paths" validate:"dive"`

	log *zap.SugaredLogger `yaml:"-"`

	sinceEventID uint64
}

type Path struct {
	Path string `yaml:"path" validate:"required"`
	// Recursive defaults to true.
	Recursive *bool `yaml:"recursive"`
}
