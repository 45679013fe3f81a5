// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/black-desk/fsevwatch/internal/fsevents"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/spf13/cobra"
)

// checkPlatformCmd represents the platform command
var checkPlatformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Check FSEvents availability",
	Long:  `Check that this binary was built with the FSEvents backend.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n\n%w\n"+CheckDocumentString, err)

			return
		}()

		err = checkPlatformCmdRun()
		return
	},
}

func checkPlatformCmdRun() (err error) {
	defer Wrap(&err, "check platform")

	_, err = fsevents.New()
	return
}

func init() {
	checkCmd.AddCommand(checkPlatformCmd)
}
