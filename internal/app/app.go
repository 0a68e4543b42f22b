// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"hgtjoin-core/cooccur"
	"hgtjoin-core/hgt"
	"hgtjoin-core/pair"
	"hgtjoin-core/report"
	"hgtjoin-core/taxa"
	"hgtjoin-core/tipdist"
	"hgtjoin/internal/cli"
	"hgtjoin/internal/cmdutil"
	"hgtjoin/internal/version"
	"hgtjoin/internal/writers"
)

// Exit codes: 0 ok (or broken pipe), 1 input tables fail validation,
// 2 usage or load error, 3 write error, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("hgtjoin")
	fs.SetOutput(io.Discard)

	// No args → help
	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		if errors.Is(err, cli.ErrExamplesRequested) {
			cli.PrintExamples(outw, "hgtjoin")
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "hgtjoin version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	cooccurTab, err := cooccur.Load(opts.CooccurTab)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if cooccurTab.LegacyRenamed {
		cmdutil.Warnf(stderr, opts.Quiet, "renamed legacy columns taxoni/taxonj to taxon_i/taxon_j in %s", opts.CooccurTab)
	}
	tipDist, err := tipdist.Load(opts.TipDistances)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	taxaTab, err := taxa.Load(opts.TaxaTab)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	hgtTab, err := hgt.Load(opts.HGTTab)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		var fe *pair.FormatError
		if errors.As(err, &fe) {
			return 1
		}
		return 2
	}

	rep, err := report.New(report.Tables{
		Cooccur: cooccurTab,
		TipDist: tipDist,
		Taxa:    taxaTab,
		HGT:     hgtTab,
	}, opts.Measures())
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	inCh, writeErr := writers.StartRowWriter(outw, opts.Output, opts.Sort, opts.Header, rep.Measures(), 0)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	perr := rep.Rows(ctx, func(r report.Row) error {
		select {
		case inCh <- r:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		var ce *report.ConsistencyError
		var fe *pair.FormatError
		if errors.As(perr, &ce) || errors.As(perr, &fe) {
			return 1
		}
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
