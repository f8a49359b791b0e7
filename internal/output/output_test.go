// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"whole value drops fraction", 10.0, "10"},
		{"zero", 0, "0"},
		{"negative whole", -10.0, "-10"},
		{"decimal kept", 20.5, "20.5"},
		{"negative decimal", -0.5, "-0.5"},
		{"sub-one decimal", 0.1, "0.1"},
		{"large whole", 1000000, "1000000"},
		{"decimal round-trips minimally", 40.7, "40.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.value))
		})
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{
			name:   "integers",
			values: []float64{10, 20, 30},
			want:   "10\n20\n30\n",
		},
		{
			name:   "decimals",
			values: []float64{10.5, 20.7, 30.2},
			want:   "10.5\n20.7\n30.2\n",
		},
		{
			name:   "mixed whole and decimal",
			values: []float64{10.0, 20.5, 30.0, 40.7},
			want:   "10\n20.5\n30\n40.7\n",
		},
		{
			name:   "empty sequence writes empty file",
			values: []float64{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.txt")
			require.NoError(t, Write(tt.values, path))

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))
		})
	}
}

func TestWrite_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\nmore\n"), 0o644))

	require.NoError(t, Write([]float64{5}, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5\n", string(content))
}

func TestWrite_MissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")

	err := Write([]float64{1, 2}, path)

	var we *WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, path, we.Path)
	assert.Contains(t, err.Error(), path)
}
