// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/black-desk/fsevwatch/pkg/config"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/lib/go/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkConfigCmd represents the config command
var checkConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Check configuration",
	Long:  `Validate configuration.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n%w\n"+CheckDocumentString, err)

			return
		}()

		err = checkConfigCmdRun()
		return
	},
}

func checkLogger() *zap.SugaredLogger {
	if checkFlags.EnableLogger {
		return logger.Get("fsevwatch")
	}

	return zap.NewNop().Sugar()
}

func checkConfigCmdRun() (err error) {
	defer Wrap(&err)

	var cfg *config.Config
	cfg, err = loadConfig(checkLogger())
	if err != nil {
		return
	}

	checkLogger().Infow("Configuration is valid.",
		"paths", len(cfg.Paths),
	)

	return
}

func init() {
	checkCmd.AddCommand(checkConfigCmd)
}
