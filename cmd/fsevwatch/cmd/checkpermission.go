// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/black-desk/fsevwatch/pkg/config"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

// checkPermissionCmd represents the permission command
var checkPermissionCmd = &cobra.Command{
	Use:   "permission",
	Short: "Check permission",
	Long: `Check fsevwatch can list every path in the configuration.
FSEvents does not report changes of directories the process cannot read.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n\n%w\n"+CheckDocumentString, err)

			return
		}()

		err = checkPermissionCmdRun()
		return
	},
}

func checkPermissionCmdRun() (err error) {
	defer Wrap(&err)

	var cfg *config.Config
	cfg, err = loadConfig(checkLogger())
	if err != nil {
		return
	}

	for i := range cfg.Paths {
		path := cfg.Paths[i].Path

		err = unix.Access(path, unix.R_OK|unix.X_OK)
		if err != nil {
			Wrap(&err, "access %s", path)
			return
		}
	}

	return
}

func init() {
	checkCmd.AddCommand(checkPermissionCmd)
}
