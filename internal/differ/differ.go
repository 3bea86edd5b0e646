// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tfctl/logcmp/internal/log"
)

// Render returns left and right merged into one line with the differing runs
// marked. Deletions read [-x-] and insertions {+y+}. When r is non-nil and its
// output supports color, the runs are styled red and green instead.
func Render(left, right string, r *lipgloss.Renderer) string {
	log.Debugf(">> differ.Render()")

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(left, right, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	deleteRun := func(s string) string { return "[-" + s + "-]" }
	insertRun := func(s string) string { return "{+" + s + "+}" }

	if r != nil && r.ColorProfile() != termenv.Ascii {
		deleteStyle := r.NewStyle().Foreground(lipgloss.Color("1")).Strikethrough(true)
		insertStyle := r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
		deleteRun = func(s string) string { return deleteStyle.Render(s) }
		insertRun = func(s string) string { return insertStyle.Render(s) }
	}

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString(deleteRun(d.Text))
		case diffmatchpatch.DiffInsert:
			b.WriteString(insertRun(d.Text))
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
