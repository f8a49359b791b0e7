// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package sorter orders numeric sequences ascending without mutating its
// input.
package sorter
