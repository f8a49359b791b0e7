// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/staranto/numsortgo/internal/command"
	mylog "github.com/staranto/numsortgo/internal/log"
	"github.com/staranto/numsortgo/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		// The usage line has already been printed by the action.
		if !errors.Is(err, command.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		return 1
	}

	return 0
}
