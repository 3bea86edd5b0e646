// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package comparer

// Sink receives diagnostic messages that are not part of the comparison
// result, such as the working directory the inputs were resolved against.
type Sink interface {
	Diagnostic(msg string)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(msg string)

// Diagnostic calls f(msg).
func (f SinkFunc) Diagnostic(msg string) {
	f(msg)
}

// discard drops every message.
type discard struct{}

func (discard) Diagnostic(string) {}
