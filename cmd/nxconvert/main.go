// Package main provides the CLI entrypoint for nxconvert.
//
// nxconvert converts encoded NeXus definition files (nxdl.yml dialect)
// into the simplified representation consumed by data-file writers. It
// runs over whole category trees, mirroring the input layout under the
// output root, or over a single file when -in names one.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"nxconvert/internal/batch"
	"nxconvert/internal/convert"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the application logic for easier testing and error
// handling.
func run(args []string) error {
	flags := flag.NewFlagSet("nxconvert", flag.ContinueOnError)

	in := flags.String("in", ".", "root of the encoded definition tree, or a single definition file")
	out := flags.String("out", "converted", "output root (or output file in single-file mode)")
	dirs := flags.String("dirs", "base_classes,applications,contributed_definitions",
		"comma-separated category directories under -in")
	reduce := flags.Bool("reduce", true, "drop vacuous nodes from the output")
	sortKeys := flags.Bool("sort", true, "impose the canonical key order on the output")
	keepDocs := flags.Bool("keep-docs", false, "retain documentation text in the output")
	debug := flags.Bool("debug", false, "dump each converted tree to stderr before writing")
	verbose := flags.Bool("v", false, "verbose logging")

	err := flags.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	opts := convert.Options{
		Reduce:   *reduce,
		Sort:     *sortKeys,
		KeepDocs: *keepDocs,
	}

	var dump io.Writer
	if *debug {
		dump = os.Stderr
	}

	info, err := os.Stat(*in)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		err = batch.ConvertFile(*in, *out, opts, dump)
		if err != nil {
			return err
		}

		log.Info("converted definition", "in", *in, "out", *out)

		return nil
	}

	cfg := batch.Config{
		In:      *in,
		Out:     *out,
		Dirs:    strings.Split(*dirs, ","),
		Options: opts,
		Debug:   dump,
	}

	return batch.Run(cfg, log)
}
