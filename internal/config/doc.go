// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for logcmp's user
// configuration. The configuration is an optional YAML document located in
// the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/logcmp.yaml or $HOME/.config/logcmp.yaml
//   - macOS: $HOME/Library/Application Support/logcmp.yaml
//   - Windows: %APPDATA%/logcmp.yaml
//
// LOGCMP_CFG_FILE overrides the location. Recognized keys are left and right
// (default input paths) plus output, diff, color and quiet, which the CLI
// reads as flag values.
package config
