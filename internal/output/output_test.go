// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/logcmp/internal/comparer"
)

var sample = &comparer.Divergence{
	Line:   2,
	Prefix: "C72E",
	Detail: "A:00 X:00 Y:00 P:24 SP:FD CYC:21",
	Left:   "CYC:21",
	Right:  "CYC:24",
}

func TestEmit_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, "text", sample))

	want := "Difference found in line 'C72E'\n" +
		"   Incorrect cycles: A:00 X:00 Y:00 P:24 SP:FD CYC:21\n"
	assert.Equal(t, want, buf.String())
}

func TestEmit_NoDivergence(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "text", want: ""},
		{format: "", want: ""},
		{format: "json", want: "null\n"},
		{format: "yaml", want: "null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Emit(&buf, tt.format, nil))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestEmit_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, "json", sample))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, float64(2), got["line"])
	assert.Equal(t, "C72E", got["prefix"])
	assert.Equal(t, sample.Detail, got["detail"])
	assert.Equal(t, "CYC:21", got["left"])
	assert.Equal(t, "CYC:24", got["right"])
}

func TestEmit_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, "yaml", sample))

	var got comparer.Divergence
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *sample, got)
	assert.Contains(t, buf.String(), "prefix: C72E")
}

func TestEmit_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Emit(&buf, "raw", sample)
	assert.ErrorContains(t, err, "unknown output format")
	assert.Empty(t, buf.String())
}

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat("text"))
	assert.True(t, ValidFormat("yaml"))
	assert.False(t, ValidFormat("raw"))
	assert.False(t, ValidFormat(""))
}
