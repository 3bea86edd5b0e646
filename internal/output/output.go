// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/tfctl/logcmp/internal/comparer"
)

// Formats lists the accepted values of the --output flag.
var Formats = []string{"text", "json", "yaml"}

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	return slices.Contains(Formats, format)
}

// Emit writes d to w in the requested format. In text format a nil d writes
// nothing; json and yaml always write a single document, null when there is
// no divergence.
func Emit(w io.Writer, format string, d *comparer.Divergence) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		return nil
	case "yaml":
		yamlOutput, err := yaml.Marshal(d)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	case "text", "":
		return Text(w, d)
	default:
		return fmt.Errorf("unknown output format %q, must be one of %v", format, Formats)
	}
}

// Text writes the two-line human report for d.
func Text(w io.Writer, d *comparer.Divergence) error {
	if d == nil {
		return nil
	}
	_, err := fmt.Fprintf(w, "Difference found in line '%s'\n   Incorrect cycles: %s\n", d.Prefix, d.Detail)
	return err
}
