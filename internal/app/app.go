// Package app implements the pitinfo command line tool.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/FergusInLondon/PitParser/internal/render"
	"github.com/FergusInLondon/PitParser/pit"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var errUsage = errors.New("usage")

// options holds the parsed command line.
type options struct {
	path    string
	format  render.Format
	lenient bool
	verbose bool

	// At most one selector is set.
	id    *uint32
	index *uint32
	name  *string
}

// Run executes pitinfo with args (excluding the program name) and returns
// the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, errUsage):
		return ExitUsage
	case err != nil:
		fmt.Fprintf(stderr, "pitinfo: %v\n", err)
		return ExitUsage
	}

	log := newLogger(stderr, opts.verbose)

	if err := run(opts, stdout, log); err != nil {
		msg := "Failed to read PIT file"
		if isLookupError(err) {
			msg = "Entry lookup failed"
		}
		log.Error().Err(err).Str("file", opts.path).Msg(msg)
		return ExitError
	}
	return ExitOK
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("pitinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: pitinfo [flags] <filename.pit>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	format := fs.String("format", "text", "output format: text, json or yaml")
	lenient := fs.Bool("lenient", false, "decode the complete entries of a truncated file")
	verbose := fs.Bool("v", false, "enable debug logging")
	id := fs.String("id", "", "print only the entry with this partition identifier")
	index := fs.String("index", "", "print only the entry at this zero-based index")
	name := fs.String("name", "", "print only the entry with this partition name")

	if err := fs.Parse(args); err != nil {
		// The flag set has already reported the problem.
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, errUsage
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errUsage
	}

	f, err := render.ParseFormat(*format)
	if err != nil {
		return nil, err
	}

	opts := &options{
		path:    fs.Arg(0),
		format:  f,
		lenient: *lenient,
		verbose: *verbose,
	}

	selectors := 0
	var parseErr error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "id":
			selectors++
			v, err := parseUint32(*id)
			if err != nil {
				parseErr = fmt.Errorf("invalid -id %q: %w", *id, err)
			}
			opts.id = &v
		case "index":
			selectors++
			v, err := parseUint32(*index)
			if err != nil {
				parseErr = fmt.Errorf("invalid -index %q: %w", *index, err)
			}
			opts.index = &v
		case "name":
			selectors++
			opts.name = name
		}
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if selectors > 1 {
		return nil, fmt.Errorf("-id, -index and -name are mutually exclusive")
	}

	return opts, nil
}

// isLookupError reports whether err came from selecting an entry in a
// table that was read successfully.
func isLookupError(err error) bool {
	return pit.IsNotFound(err) || pit.IsIndexOutOfRange(err)
}

// parseUint32 accepts decimal or 0x-prefixed hexadecimal values.
func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func run(opts *options, stdout io.Writer, log zerolog.Logger) error {
	t, err := pit.Parse(opts.path, pit.WithLenient(opts.lenient))
	if err != nil {
		return err
	}

	hdr := t.Header()
	log.Debug().
		Str("file", opts.path).
		Str("head", fmt.Sprintf("0x%08X", hdr.Head)).
		Uint32("entry_count", hdr.EntryCount).
		Uint32("decoded", t.EntryCount()).
		Msg("Decoded PIT file")
	if t.Truncated() {
		log.Warn().
			Uint32("declared", hdr.EntryCount).
			Uint32("decoded", t.EntryCount()).
			Msg("PIT file is truncated, showing complete entries only")
	}

	switch {
	case opts.id != nil:
		idx, err := t.IndexOfIdentifier(*opts.id)
		if err != nil {
			return err
		}
		e, _ := t.EntryAt(idx)
		return render.WriteEntry(stdout, idx, e, opts.format)
	case opts.index != nil:
		e, err := t.EntryAt(*opts.index)
		if err != nil {
			return err
		}
		return render.WriteEntry(stdout, *opts.index, e, opts.format)
	case opts.name != nil:
		idx, err := t.IndexOfPartitionName(*opts.name)
		if err != nil {
			return err
		}
		e, _ := t.EntryAt(idx)
		return render.WriteEntry(stdout, idx, e, opts.format)
	}

	return render.Write(stdout, t, opts.format)
}
