package iterator

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineIterator yields the lines of a reader without their
// line endings. Lines may be of any length.
type LineIterator struct {
	r   *bufio.Reader
	at  string
	eof bool
	err error
}

// Lines returns a LineIterator reading from r.
// A read error ends the iteration; check Err afterwards.
func Lines(r io.Reader) *LineIterator {
	return &LineIterator{
		r: bufio.NewReader(r),
	}
}

func (l *LineIterator) Next() bool {
	if l.eof || l.err != nil {
		return false
	}

	line, err := l.r.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF):
		l.eof = true
		if line == "" {
			return false
		}
	case err != nil:
		// a partial line before the error is dropped
		l.err = err
		return false
	}

	line = strings.TrimSuffix(line, "\n")
	l.at = strings.TrimSuffix(line, "\r")
	return true
}

func (l *LineIterator) Item() string {
	return l.at
}

// Err returns the first non-EOF error encountered while reading.
func (l *LineIterator) Err() error {
	return l.err
}
