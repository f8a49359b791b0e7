// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/apex/log"
)

// WriteError reports an output destination that could not be created or
// written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write '%s': %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Format renders a value for output. Whole values get the integer text with
// no fractional suffix; everything else gets the shortest decimal that
// round-trips.
func Format(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Write emits one value per line to path in the given order, LF terminated.
// The file is created if absent and truncated if present.
func Write(values []float64, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	for _, v := range values {
		if _, err := w.WriteString(Format(v) + "\n"); err != nil {
			f.Close()
			return &WriteError{Path: path, Err: err}
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	log.Debugf("wrote %d numbers to %s", len(values), path)
	return nil
}
