// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type opts struct {
	content []byte
	log     *zap.SugaredLogger
}

type Opt func(o *opts) (ret *opts, err error)

func New(options ...Opt) (ret *Config, err error) {
	defer Wrap(&err, "create configuration")

	o := &opts{}
	for i := range options {
		o, err = options[i](o)
		if err != nil {
			return
		}
	}

	if o.log == nil {
		o.log = zap.NewNop().Sugar()
	}

	if o.content == nil {
		err = ErrContentMissing
		return
	}

	ret, err = load(o.content, o.log)
	return
}

func WithContent(content []byte) Opt {
	return func(o *opts) (ret *opts, err error) {
		if content == nil {
			err = ErrContentMissing
			return
		}

		o.content = content
		ret = o
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(o *opts) (ret *opts, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		o.log = log
		ret = o
		return
	}
}

func load(content []byte, log *zap.SugaredLogger) (ret *Config, err error) {
	defer Wrap(&err, "load configuration")

	cfg := &Config{log: log}

	err = yaml.Unmarshal(content, cfg)
	if err != nil {
		Wrap(&err, "unmarshal configuration")
		return
	}

	err = cfg.check()
	if err != nil {
		return
	}

	ret = cfg
	return
}
