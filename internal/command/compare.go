// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/logcmp/internal/comparer"
	"github.com/tfctl/logcmp/internal/config"
	"github.com/tfctl/logcmp/internal/differ"
	"github.com/tfctl/logcmp/internal/log"
	"github.com/tfctl/logcmp/internal/meta"
	"github.com/tfctl/logcmp/internal/output"
)

const (
	// DefaultLeft is the emulator trace compared when no path is given.
	DefaultLeft = "output.txt"
	// DefaultRight is the reference log compared when no second path is given.
	DefaultRight = "nestestlog.txt"
)

// ErrDivergence is returned by the compare action after a divergence has
// been reported. Callers map it to a distinct exit status.
var ErrDivergence = errors.New("divergence found")

// compareCommandAction resolves the two inputs, runs the comparison and
// writes the report to the command's writer.
func compareCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args)

	if cmd.NArg() > 2 {
		return fmt.Errorf("expected at most two files, got %d", cmd.NArg())
	}
	left, right, err := inputPaths(cmd)
	if err != nil {
		return err
	}

	root := cmd.Root()
	format := cmd.String("output")

	opts := comparer.DefaultOptions()
	opts.WorkDir = meta.StartingDir
	if !cmd.Bool("quiet") {
		// Structured output keeps stdout to a single document.
		diagOut := root.Writer
		if format != "text" {
			diagOut = root.ErrWriter
		}
		opts.Diag = writerSink(diagOut)
	}

	c, err := comparer.New(opts)
	if err != nil {
		return err
	}

	d, err := c.CompareFiles(left, right)
	if err != nil {
		return err
	}

	if err := output.Emit(root.Writer, format, d); err != nil {
		return err
	}
	if d == nil {
		return nil
	}

	if format == "text" && cmd.Bool("diff") {
		var r *lipgloss.Renderer
		if cmd.Bool("color") {
			r = lipgloss.NewRenderer(root.Writer)
		}
		fmt.Fprintf(root.Writer, "   Diff: %s\n", differ.Render(d.Left, d.Right, r))
	}
	return ErrDivergence
}

// inputPaths returns the positional paths, falling back to the left and
// right config keys and then to the historical file names. A config value
// that is not a string is an error.
func inputPaths(cmd *cli.Command) (left string, right string, err error) {
	if left = cmd.Args().Get(0); left == "" {
		if left, err = config.GetString("left", DefaultLeft); err != nil {
			return "", "", fmt.Errorf("config key left: %w", err)
		}
	}
	if right = cmd.Args().Get(1); right == "" {
		if right, err = config.GetString("right", DefaultRight); err != nil {
			return "", "", fmt.Errorf("config key right: %w", err)
		}
	}
	return left, right, nil
}

// writerSink prints each diagnostic on its own line.
func writerSink(w io.Writer) comparer.Sink {
	return comparer.SinkFunc(func(msg string) {
		fmt.Fprintln(w, msg)
	})
}

// compareCommandBuilder constructs the root logcmp command.
func compareCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "logcmp",
		Usage:     "find the first diverging line between an emulator trace and a reference log",
		UsageText: fmt.Sprintf("logcmp [flags] [%s [%s]]", DefaultLeft, DefaultRight),
		Metadata:  map[string]any{"meta": meta},
		Flags: append(NewReportFlags(meta.Config.Source),
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "logcmp version info",
				HideDefault: true,
			},
		),
		Action: compareCommandAction,
	}
}
