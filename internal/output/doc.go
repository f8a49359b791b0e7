// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output formats numeric values and emits them to line-oriented
// text files.
package output
