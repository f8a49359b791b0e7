// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the CLI for numsort. It wires flags and the
// read-sort-write action onto the root command.
package command
