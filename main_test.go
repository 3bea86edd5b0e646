// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/logcmp/internal/command"
	"github.com/tfctl/logcmp/internal/comparer"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "divergence", err: command.ErrDivergence, want: 1},
		{name: "wrapped divergence", err: fmt.Errorf("run: %w", command.ErrDivergence), want: 1},
		{name: "file access", err: &comparer.FileAccessError{Source: "A", Path: "output.txt", Err: os.ErrNotExist}, want: 2},
		{name: "other", err: errors.New("boom"), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestHandleVersion(t *testing.T) {
	assert.True(t, handleVersion([]string{"logcmp", "--version"}))
	assert.True(t, handleVersion([]string{"logcmp", "-v"}))
	assert.False(t, handleVersion([]string{"logcmp", "a.txt", "b.txt"}))
}

func TestInitAndRunApp(t *testing.T) {
	dir := t.TempDir()
	col := strings.Repeat(" ", 86)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "output.txt"), []byte("C000 CYC:7\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nestestlog.txt"), []byte(col+"CYC:7\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("C000 CYC:8\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("LOGCMP_CFG_FILE", filepath.Join(dir, "absent.yaml"))

	assert.Equal(t, 0, initAndRunApp([]string{"logcmp", "-q"}))
	assert.Equal(t, 1, initAndRunApp([]string{"logcmp", "-q", "bad.txt"}))
	assert.Equal(t, 2, initAndRunApp([]string{"logcmp", "-q", "missing.txt"}))
}
