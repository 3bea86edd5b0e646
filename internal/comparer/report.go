// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package comparer

import "strings"

// Divergence describes the first line pair whose remainders differ.
//
// Prefix and Detail are cut from source A's raw line: Prefix is its first four
// characters (the line tag in an emulator trace) and Detail is everything from
// the tenth character on, trimmed. Left and Right are the two remainders that
// were compared.
type Divergence struct {
	Line   int    `json:"line" yaml:"line"`
	Prefix string `json:"prefix" yaml:"prefix"`
	Detail string `json:"detail" yaml:"detail"`
	Left   string `json:"left" yaml:"left"`
	Right  string `json:"right" yaml:"right"`
}

func newDivergence(line int, rawA, left, right string) *Divergence {
	return &Divergence{
		Line:   line,
		Prefix: head(rawA, prefixWidth),
		Detail: strings.TrimSpace(remainder(rawA, detailOffset)),
		Left:   left,
		Right:  right,
	}
}
