// Command processor reads a CSV transaction log, applies it to the engine,
// and writes the final per-client account summary as CSV to stdout.
// Diagnostics go to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mkravchenko/payments-engine/internal/infra/logging"
	"github.com/mkravchenko/payments-engine/internal/reader"
	ledgermem "github.com/mkravchenko/payments-engine/internal/repos/ledger/memory"
	"github.com/mkravchenko/payments-engine/internal/services/engine"
	"github.com/mkravchenko/payments-engine/internal/writer"
)

func main() {
	verbose := flag.Bool("v", false, "log skipped and rejected transactions at debug level")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-v] <transactions.csv>\n", os.Args[0])
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}

	logging.SetupText(level)

	err := run(flag.Arg(0), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, out io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer file.Close()

	eng := engine.New(ledgermem.New(), slog.Default())
	transactions := reader.New(file, slog.Default())

	for {
		record, err := transactions.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("read transactions: %w", err)
		}

		// Reportable per-transaction failures never abort the run.
		err = eng.Process(record)
		if err != nil {
			slog.Warn("transaction not applied", "error", err)
		}
	}

	err = writer.WriteSummaries(out, eng.Summaries())
	if err != nil {
		return fmt.Errorf("write summaries: %w", err)
	}

	return nil
}
