// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strconv"

	"github.com/black-desk/fsevwatch/pkg/watcher"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/go-playground/validator/v10"
)

func (c *Config) check() (err error) {
	defer Wrap(&err, "check configuration")

	var validator = validator.New()
	err = validator.Struct(c)
	if err != nil {
		err = fmt.Errorf("validator: %w", err)
		return
	}

	c.sinceEventID = watcher.SinceNow
	if c.Since != "" && c.Since != SinceNowStr {
		c.sinceEventID, err = strconv.ParseUint(c.Since, 10, 64)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrEventIDRange, err)
			return
		}
	}

	if c.Precise == nil {
		precise := true
		c.Precise = &precise
	}

	for i := range c.Paths {
		if c.Paths[i].Recursive != nil {
			continue
		}

		recursive := true
		c.Paths[i].Recursive = &recursive
	}

	if len(c.Paths) == 0 {
		c.log.Debugw("No paths in configuration.")
	}

	return
}
