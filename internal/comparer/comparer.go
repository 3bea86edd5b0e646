// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package comparer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tfctl/logcmp/internal/log"
)

const (
	// DefaultOffsetA is the number of leading characters skipped on each line
	// of the emulator trace.
	DefaultOffsetA = 5
	// DefaultOffsetB is the column at which the nestest reference log carries
	// its cycle information.
	DefaultOffsetB = 86

	prefixWidth  = 4
	detailOffset = 9
)

// Options configures a Comparer.
type Options struct {
	// OffsetA and OffsetB are the characters skipped on lines of source A and
	// source B before the remainders are compared.
	OffsetA int
	OffsetB int

	// WorkDir is the directory relative paths are resolved against in
	// CompareFiles. Empty means the process working directory.
	WorkDir string

	// Diag receives the working directory once per CompareFiles call. Nil
	// discards it.
	Diag Sink
}

// DefaultOptions returns Options with the historical offsets.
func DefaultOptions() Options {
	return Options{
		OffsetA: DefaultOffsetA,
		OffsetB: DefaultOffsetB,
	}
}

// Comparer finds the first diverging line pair of two sources.
type Comparer struct {
	opts Options
	diag Sink
}

// New validates opts and returns a Comparer.
func New(opts Options) (*Comparer, error) {
	if opts.OffsetA < 0 {
		return nil, fmt.Errorf("offset A %d: %w", opts.OffsetA, ErrNegativeOffset)
	}
	if opts.OffsetB < 0 {
		return nil, fmt.Errorf("offset B %d: %w", opts.OffsetB, ErrNegativeOffset)
	}

	c := &Comparer{opts: opts, diag: opts.Diag}
	if c.diag == nil {
		c.diag = discard{}
	}
	return c, nil
}

// Options returns the options the Comparer was built with.
func (c *Comparer) Options() Options {
	return c.opts
}

// Compare pairs the k-th line of a with the k-th line of b and returns the
// first pair whose remainders differ. It returns nil, nil when every pair
// matched before either source ran out of lines. A read error on either
// source is returned as is, wrapped with the source name.
func (c *Comparer) Compare(a, b io.Reader) (*Divergence, error) {
	la := newLineReader(a)
	lb := newLineReader(b)

	line := 0
	for {
		rawA, ok, err := la.next()
		if err != nil {
			return nil, fmt.Errorf("reading source A at line %d: %w", line+1, err)
		}
		if !ok {
			break
		}
		rawB, ok, err := lb.next()
		if err != nil {
			return nil, fmt.Errorf("reading source B at line %d: %w", line+1, err)
		}
		if !ok {
			break
		}
		line++

		left := remainder(rawA, c.opts.OffsetA)
		right := remainder(rawB, c.opts.OffsetB)
		log.Tracef("line %d: left=%q right=%q", line, left, right)

		if left != right {
			log.Debugf("divergence at line %d", line)
			return newDivergence(line, rawA, left, right), nil
		}
	}

	log.Debugf("no divergence in %d paired lines", line)
	return nil, nil
}

// CompareFiles opens pathA and pathB and compares them with Compare. The
// working directory is emitted to the diagnostic sink before anything is
// opened. An input that cannot be opened yields a *FileAccessError.
func (c *Comparer) CompareFiles(pathA, pathB string) (*Divergence, error) {
	wd := c.opts.WorkDir
	if wd == "" {
		var err error
		if wd, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
	}
	c.diag.Diagnostic(wd)

	fa, err := openSource("A", wd, pathA)
	if err != nil {
		return nil, err
	}
	defer fa.Close()

	fb, err := openSource("B", wd, pathB)
	if err != nil {
		return nil, err
	}
	defer fb.Close()

	log.Debugf("comparing %s (offset %d) with %s (offset %d)",
		fa.Name(), c.opts.OffsetA, fb.Name(), c.opts.OffsetB)

	return c.Compare(fa, fb)
}

// openSource opens path, relative to wd unless absolute.
func openSource(source, wd, path string) (*os.File, error) {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(wd, full)
	}

	info, err := os.Stat(full)
	if err != nil {
		return nil, &FileAccessError{Source: source, Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &FileAccessError{Source: source, Path: path, Err: errors.New("is a directory")}
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, &FileAccessError{Source: source, Path: path, Err: err}
	}
	return f, nil
}

// lineReader yields lines of unbounded length with the "\n" terminator and a
// preceding "\r" removed. A final line without a terminator is still a line.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next line and true, or false once the source is
// exhausted.
func (l *lineReader) next() (string, bool, error) {
	s, err := l.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if err != nil && s == "" {
		return "", false, nil
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true, nil
}

// remainder returns s with its first n characters removed. A line shorter
// than n yields "".
func remainder(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

// head returns at most the first n characters of s.
func head(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
