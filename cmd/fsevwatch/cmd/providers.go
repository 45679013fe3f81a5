// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"github.com/black-desk/fsevwatch/internal/fsevents"
	"github.com/black-desk/fsevwatch/pkg/config"
	"github.com/black-desk/fsevwatch/pkg/handler"
	"github.com/black-desk/fsevwatch/pkg/interfaces"
	"github.com/black-desk/fsevwatch/pkg/watcher"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func provideHandler(q *handler.Queue) handler.Handler {
	return q
}

func provideService() (fsevents.Service, error) {
	return fsevents.New()
}

func provideWatcherConfig(cfg *config.Config) []watcher.Config {
	return cfg.WatcherConfig()
}

func provideWatcher(
	h handler.Handler,
	svc fsevents.Service,
	cfgs []watcher.Config,
	logger *zap.SugaredLogger,
) (
	interfaces.Watcher, error,
) {
	return watcher.New(
		watcher.WithHandler(h),
		watcher.WithService(svc),
		watcher.WithConfig(cfgs...),
		watcher.WithLogger(logger),
	)
}

var set = wire.NewSet(
	provideHandler,
	provideService,
	provideWatcher,
	provideWatcherConfig,
)
