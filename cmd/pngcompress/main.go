// Copyright 2024 Sadopc.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// pngcompress recompresses PNG images to reduce their file size,
// providing both a command line and a graphical interface. Run with
// no arguments to get the graphical interface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	compressor "github.com/sadopc/png-image-compressor"
	"github.com/sadopc/png-image-compressor/internal/pipeline"
)

const usage = `Usage: pngcompress [-v] [-o dir] [-l level] [-r] input ...

Compresses PNG images to reduce their file size. An input may be a
PNG file or a directory containing PNG files. Compressed copies are
named like the original with a _compressed suffix, and saved next to
the original unless -o is given.

If no inputs are given a graphical interface is started instead.
`

// null writer to enable non-verbose logging to be discarded
type NullWriter bool

func (w NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func main() {
	verbose := flag.Bool("v", false, "verbose")
	outdir := flag.String("o", "", "output directory for compressed images (default: same directory as each input)")
	level := flag.Int("l", compressor.DefaultLevel, "compression level (1-9, higher means more compression but slower)")
	recursive := flag.Bool("r", false, "recursively process directories")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", 0)
	} else {
		var n NullWriter
		verboselog = log.New(n, "", 0)
	}

	if *level < compressor.MinLevel || *level > compressor.MaxLevel {
		log.Fatalf("Compression level must be between %d and %d, got %d", compressor.MinLevel, compressor.MaxLevel, *level)
	}

	if flag.NArg() == 0 {
		err := startGui(verboselog)
		if err != nil {
			log.Fatalln("Error running graphical interface:", err)
		}
		return
	}

	files, err := pipeline.FindImages(flag.Args(), *recursive)
	if err != nil {
		log.Fatalln(err)
	}
	if len(files) == 0 {
		fmt.Println("No PNG files found!")
		return
	}
	fmt.Printf("Found %d PNG files to process\n", len(files))

	outcomes, err := pipeline.Process(context.Background(), files, *level, *outdir, func(o pipeline.Outcome) {
		fmt.Println(outcomeLine(o))
	}, verboselog)
	if err != nil {
		log.Fatalln("Error processing files:", err)
	}

	fmt.Printf("\nCompression Summary:\n%s\n", summary(outcomes))
}

// outcomeLine formats the progress line for a single processed file,
// used for both command line output and the results list in the
// graphical interface.
func outcomeLine(o pipeline.Outcome) string {
	name := filepath.Base(o.Path)
	if o.Err != nil {
		return fmt.Sprintf("Error: %s - %v", name, o.Err)
	}
	return fmt.Sprintf("Compressed: %s - %s → %s (%.1f%% saved)",
		name, sizeString(o.OrigSize), sizeString(o.NewSize), o.PercentSaved())
}

// summary formats the overall results of a batch: how many files
// succeeded and how much space was saved.
func summary(outcomes []pipeline.Outcome) string {
	var n int
	var origTotal, newTotal int64
	var pctTotal float64
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		n++
		origTotal += o.OrigSize
		newTotal += o.NewSize
		pctTotal += o.PercentSaved()
	}
	var avg float64
	if n > 0 {
		avg = pctTotal / float64(n)
	}
	return fmt.Sprintf("Files processed successfully: %d/%d\nTotal size reduction: %s (%.1f%% average)",
		n, len(outcomes), sizeString(origTotal-newTotal), avg)
}

// sizeString formats a byte count in a human readable way. The count
// can be negative, as recompression can grow a file.
func sizeString(n int64) string {
	if n < 0 {
		return "-" + humanize.Bytes(uint64(-n))
	}
	return humanize.Bytes(uint64(n))
}
