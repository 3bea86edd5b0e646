// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the logcmp CLI. It wires flags, config-file flag
// sources, validators, and the compare action.
package command
