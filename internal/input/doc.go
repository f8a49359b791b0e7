// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package input reads numeric values from line-oriented text files and
// reports unreadable paths and malformed lines as typed errors.
package input
