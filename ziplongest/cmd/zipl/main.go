// Command zipl prints the lines of two files side by side,
// like paste(1), but keeps going until the longer file ends.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.lepak.sg/ziplongest/ziplongest"
	"go.lepak.sg/ziplongest/iterator"
)

var (
	sep = flag.String("d", "\t",
		"separator between the two columns")
	fill = flag.String("fill", "",
		"printed in place of a line from the file that ran out first")
	verbose = flag.Bool("v", false,
		"log debug information to stderr")
)

var (
	errTwoStdin = errors.New("only one of the files may be stdin")
	errRead     = errors.New("read failed")
)

// lineSource is an iterator over lines that can fail.
type lineSource interface {
	iterator.Iterator[string]
	Err() error
}

type stats struct {
	both, left, right int
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] FILE1 FILE2\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := zipFiles(log, os.Stdout, flag.Arg(0), flag.Arg(1)); err != nil {
		log.Error("zipl failed", "err", err)
		os.Exit(1)
	}
}

func zipFiles(log *slog.Logger, w io.Writer, name1, name2 string) error {
	if name1 == "-" && name2 == "-" {
		return errTwoStdin
	}

	f1, err := open(name1)
	if err != nil {
		return err
	}
	defer f1.Close()

	f2, err := open(name2)
	if err != nil {
		return err
	}
	defer f2.Close()

	l1, l2 := iterator.Lines(f1), iterator.Lines(f2)

	st, werr := write(w, l1, l2, *sep, *fill)
	if err := l1.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name1, err)
	}
	if err := l2.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name2, err)
	}
	if werr != nil {
		return fmt.Errorf("write: %w", werr)
	}

	log.Debug("done", "file1", name1, "file2", name2,
		"both", st.both, "only1", st.left, "only2", st.right)
	return nil
}

func open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// write stops before writing anything more once either side has
// failed, so a read error never shows up as a short file.
func write(w io.Writer, left, right lineSource, sep, fill string) (st stats, err error) {
	z := ziplongest.New[string, string](left, right)
	for item := range z.All() {
		if left.Err() != nil || right.Err() != nil {
			return st, errRead
		}

		a, aok, b, bok := item.Get()
		switch {
		case aok && bok:
			st.both++
		case aok:
			b = fill
			st.left++
		case bok:
			a = fill
			st.right++
		}

		if _, err = fmt.Fprint(w, a, sep, b, "\n"); err != nil {
			return
		}
	}
	return
}
