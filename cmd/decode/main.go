// Command decode is an offline batch decoder. It decodes one or more EDIFACT
// IFTMIN files and writes the flattened shipment/item rows (or per-file
// summary rows) as CSV, without the server, database, or object storage.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"maniflow/internal/csvexport"
	"maniflow/internal/edifact"
	"maniflow/internal/sample"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	output := flag.String("o", "", "output CSV path (default stdout)")
	summary := flag.Bool("summary", false, "emit per-file summary rows instead of shipment rows")
	useSample := flag.Bool("sample", false, "decode the built-in sample interchange")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 && !*useSample {
		fmt.Fprintln(os.Stderr, "Usage: decode [-o out.csv] [-summary] [-sample] file.edi [file2.edi ...]")
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	type decoded struct {
		name string
		ic   *edifact.Interchange
	}

	var all []decoded
	if *useSample {
		all = append(all, decoded{sample.ReferenceName, edifact.Decode(sample.Reference())})
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		all = append(all, decoded{filepath.Base(path), edifact.Decode(string(data))})
	}

	if *summary {
		w := csvexport.NewSummaryWriter(out)
		if err := w.WriteHeader(); err != nil {
			return err
		}
		for _, d := range all {
			if err := w.WriteInterchange(d.name, d.ic); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}

	w := csvexport.NewShipmentWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, d := range all {
		if err := w.WriteInterchange(d.name, d.ic); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
