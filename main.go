// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tfctl/logcmp/internal/command"
	"github.com/tfctl/logcmp/internal/log"
	"github.com/tfctl/logcmp/internal/version"
)

var ctx = context.Background()

const (
	exitOK         = 0
	exitDivergence = 1
	exitError      = 2
)

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// exitCode maps the result of a run to the process exit status. A reported
// divergence is not printed again.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, command.ErrDivergence):
		return exitDivergence
	default:
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		log.WithError(err).Debug("app init failed")
		return exitCode(err)
	}

	err = app.Run(ctx, args)
	if err != nil {
		log.WithError(err).Debug("app run finished with error")
	}
	return exitCode(err)
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return exitOK
	}

	return initAndRunApp(args)
}
