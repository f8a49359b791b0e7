// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"

	"github.com/urfave/cli/v3"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	app := &cli.Command{
		Name:      "numsort",
		Usage:     "sort numbers from a text file",
		UsageText: `numsort <input-file> <output-file>`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "numsort version info",
				HideDefault: true,
			},
		},
		Action: SortAction,
	}

	return app, nil
}
