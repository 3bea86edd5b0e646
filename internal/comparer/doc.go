// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package comparer walks two line-oriented logs in lockstep and reports the
// first line whose compared remainders differ. Each side skips its own fixed
// number of leading characters before comparison; the historical defaults
// line an emulator trace (offset 5) up against the cycle column of the
// nestest reference log (offset 86).
//
// Line terminators are stripped from both sides before slicing, so a file
// written with CRLF endings compares equal to the same content written with
// LF endings. Lines may be of any length. Offsets count characters (runes),
// not bytes.
package comparer
