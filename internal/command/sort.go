// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/numsortgo/internal/config"
	"github.com/staranto/numsortgo/internal/input"
	"github.com/staranto/numsortgo/internal/output"
	"github.com/staranto/numsortgo/internal/sorter"
)

// ErrUsage signals an invocation with the wrong argument count. The usage
// line has already been printed when it is returned.
var ErrUsage = errors.New("usage")

// SortAction is the action handler for the root command. It runs the
// read-sort-write pipeline over the two positional paths and reports count,
// smallest and largest on success.
func SortAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() != 2 {
		fmt.Println("Usage: numsort <input-file> <output-file>")
		return ErrUsage
	}

	inPath, outPath := args.Get(0), args.Get(1)
	log.Debugf("input=%s, output=%s", inPath, outPath)

	fmt.Printf("Reading numbers from %s...\n", inPath)
	numbers, err := input.Read(inPath)
	if err != nil {
		return err
	}
	fmt.Printf("Found %s numbers\n", humanize.Comma(int64(len(numbers))))

	fmt.Println("Sorting numbers...")
	sorted := sorter.Sort(numbers)

	fmt.Printf("Writing sorted numbers to %s...\n", outPath)
	if err := output.Write(sorted, outPath); err != nil {
		return err
	}

	fmt.Println("Sorting completed successfully!")

	// The smallest/largest lines are skipped for an empty sequence rather
	// than indexing into it.
	summary, _ := config.GetBool("summary", true)
	if summary && len(sorted) > 0 {
		fmt.Printf("Smallest number: %s\n", output.Format(sorted[0]))
		fmt.Printf("Largest number: %s\n", output.Format(sorted[len(sorted)-1]))
	}

	return nil
}
