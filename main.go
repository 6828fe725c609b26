/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/app/config"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/app/export"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/app/generator"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/app/order"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/pkg/encodingscheme"
	"github.com/intel/rsp-sw-toolkit-im-suite-utilities/go-metrics"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitIO          = 3
	exitInterrupted = 130

	formatTSV  = "tsv"
	formatJSON = "json"
)

func main() {
	mConfigurationError := metrics.GetOrRegisterGauge("SGTIN.Main.ConfigurationError", nil)

	// Ensure simple text format
	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	// Load config variables
	if err := config.InitConfig(); err != nil {
		errorHandler("unable to load configuration variables, using defaults", err, &mConfigurationError)
		config.LoadDefaults()
	}

	setLoggingLevel(config.AppConfig.LoggingLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == exitOK {
		code = exitInterrupted
	}

	stop()
	os.Exit(code)
}

func run(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	switch argv[0] {
	case "encode":
		return runEncode(argv[1:], stdout, stderr)
	case "preview":
		return runPreview(argv[1:], stdout, stderr)
	case "bulk":
		return runBulk(ctx, argv[1:], stdin, stdout, stderr)
	case "help", "-h", "-help", "--help":
		printUsage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", argv[0])
		printUsage(stderr)
		return exitUsage
	}
}

func printUsage(out io.Writer) {
	fmt.Fprintf(out, "Usage:\n")
	fmt.Fprintf(out, "  %s encode  -gtin GTIN -serial SERIAL\n", config.AppConfig.ServiceName)
	fmt.Fprintf(out, "  %s preview -gtin GTIN -last-serial SERIAL\n", config.AppConfig.ServiceName)
	fmt.Fprintf(out, "  %s bulk    [-in FILE] [-format tsv|json] [-no-header] [-workers N]\n", config.AppConfig.ServiceName)
	fmt.Fprintf(out, "\nbulk reads tab separated lines: Style, Size, Color, Item Name, Item Code, Qty, Last Serial\n")
}

// runEncode prints the SGTIN-96 of exactly the given gtin and serial
func runEncode(argv []string, stdout, stderr io.Writer) int {
	mInputErr := metrics.GetOrRegisterGauge("SGTIN.Encode.Input-Error", nil)

	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	gtin := fs.String("gtin", "", "GTIN, up to 14 digits [required]")
	serial := fs.String("serial", "", "serial number, 0 to 274877906943 [required]")
	if err := fs.Parse(argv); err != nil {
		return exitUsage
	}

	epc, err := encodingscheme.Encode(*gtin, *serial)
	if err != nil {
		errorHandler("unable to encode SGTIN-96", err, &mInputErr)
		return exitFailure
	}
	return printLine(stdout, stderr, epc)
}

// runPreview prints the SGTIN-96 of the first tag following last-serial
func runPreview(argv []string, stdout, stderr io.Writer) int {
	mInputErr := metrics.GetOrRegisterGauge("SGTIN.Preview.Input-Error", nil)

	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	gtin := fs.String("gtin", "", "GTIN, up to 14 digits [required]")
	lastSerial := fs.String("last-serial", config.AppConfig.DefaultLastSerial, "last serial already in use")
	if err := fs.Parse(argv); err != nil {
		return exitUsage
	}

	epc, err := generator.FirstSGTIN(*gtin, *lastSerial)
	if err != nil {
		errorHandler("unable to preview first SGTIN-96", err, &mInputErr)
		return exitFailure
	}
	return printLine(stdout, stderr, epc)
}

func runBulk(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	mInputErr := metrics.GetOrRegisterGauge("SGTIN.Bulk.Input-Error", nil)
	mOutputErr := metrics.GetOrRegisterGauge("SGTIN.Bulk.Output-Error", nil)

	fs := flag.NewFlagSet("bulk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "-", "input file, - for stdin")
	format := fs.String("format", formatTSV, "input format: tsv or json")
	noHeader := fs.Bool("no-header", !config.AppConfig.OutputHeader, "omit the header line")
	workers := fs.Int("workers", config.AppConfig.GeneratorWorkers, "rows generated in parallel")
	if err := fs.Parse(argv); err != nil {
		return exitUsage
	}

	data, err := readInput(*in, stdin)
	if err != nil {
		errorHandler("unable to read order data", err, &mInputErr)
		return exitIO
	}

	var rows []order.InputRow
	var partial bool
	switch strings.ToLower(*format) {
	case formatTSV:
		var lineErrs []error
		rows, lineErrs = order.ParsePasted(string(data), config.AppConfig.DefaultLastSerial)
		for _, lineErr := range lineErrs {
			errorHandler("skipping order line", lineErr, &mInputErr)
			partial = true
		}
	case formatJSON:
		rows, err = order.ParseJSON(data, config.AppConfig.DefaultLastSerial)
		if err != nil {
			errorHandler("invalid order document", err, &mInputErr)
			return exitFailure
		}
	default:
		fmt.Fprintf(stderr, "unknown format %q\n", *format)
		return exitUsage
	}

	log.WithFields(log.Fields{
		"Method": "runBulk",
		"Action": "Generate",
		"Rows":   len(rows),
	}).Info("Generating SGTIN-96 codes...")

	entries, err := generator.GenerateBatch(ctx, rows, *workers)
	if err != nil {
		errorHandler("generation stopped", err, nil)
		return exitInterrupted
	}
	for _, entry := range entries {
		if !entry.OK() {
			partial = true
		}
	}

	if err := export.WriteEntries(stdout, entries, !*noHeader); err != nil {
		if export.IsBrokenPipe(err) {
			return exitOK
		}
		errorHandler("unable to write records", err, &mOutputErr)
		return exitIO
	}

	if partial {
		return exitFailure
	}
	return exitOK
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := ioutil.ReadAll(stdin)
		return data, errors.Wrap(err, "unable to read stdin")
	}
	data, err := ioutil.ReadFile(path)
	return data, errors.Wrapf(err, "unable to read %s", path)
}

func printLine(stdout, stderr io.Writer, line string) int {
	if _, err := fmt.Fprintln(stdout, line); err != nil {
		if export.IsBrokenPipe(err) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitIO
	}
	return exitOK
}
