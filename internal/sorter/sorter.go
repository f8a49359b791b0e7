// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package sorter

import "sort"

// Sort returns a new slice holding the same values in non-descending order.
// The input slice is never mutated; duplicates are retained.
func Sort(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}
