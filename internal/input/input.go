// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
)

// NotFoundError reports an input path that does not exist or could not be
// opened.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file '%s' not found", e.Path)
}

// ParseError reports a non-blank line that is not a valid number. Line is
// the 1-indexed position in the file, counting blank lines.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number '%s' on line %d", e.Text, e.Line)
}

// Read loads one number per non-blank line from path, preserving file
// order. Lines are trimmed of surrounding whitespace; lines that are empty
// after trimming are skipped. The first line that fails to parse aborts the
// read with a ParseError and no partial result.
func Read(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path}
	}
	defer f.Close()

	var numbers []float64

	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		n, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Text: line}
		}
		numbers = append(numbers, n)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	log.Debugf("read %d numbers from %s", len(numbers), path)
	return numbers, nil
}
