// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/black-desk/fsevwatch/pkg/config"
	"github.com/black-desk/fsevwatch/pkg/handler"
	"github.com/black-desk/fsevwatch/pkg/interfaces"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func injectedWatcher(
	*config.Config, *zap.SugaredLogger, *handler.Queue,
) (
	interfaces.Watcher, error,
) {
	panic(wire.Build(set))
}
