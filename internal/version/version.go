// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package version

// Version is overridden at build time via -ldflags.
var Version = "dev"
