// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewReportFlags constructs the flags that shape the report. When cfgFile is
// non-empty, each flag also takes its value from the key of the same name in
// that YAML file, after the command line and environment.
func NewReportFlags(cfgFile string) (flags []cli.Flag) {
	output := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "text",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("LOGCMP_OUTPUT"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	diff := &cli.BoolFlag{
		Name:    "diff",
		Aliases: []string{"d"},
		Usage:   "show a character diff of the compared remainders",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("LOGCMP_DIFF"),
		),
	}

	color := &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored diff output",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("LOGCMP_COLOR"),
		),
	}

	quiet := &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "do not print the working directory",
	}

	if cfgFile != "" {
		ValueChainFromConfigFile(output.Name, cfgFile, &output.Sources)
		ValueChainFromConfigFile(diff.Name, cfgFile, &diff.Sources)
		ValueChainFromConfigFile(color.Name, cfgFile, &color.Sources)
		ValueChainFromConfigFile(quiet.Name, cfgFile, &quiet.Sources)
	}

	flags = []cli.Flag{output, diff, color, quiet}
	return
}

// ValueChainFromConfigFile appends the config file value for key to chain.
func ValueChainFromConfigFile(key string, path string, chain *cli.ValueSourceChain) {
	src := yaml.YAML(key, altsrc.StringSourcer(path))
	chain.Chain = append(chain.Chain, src)
}
