// Copyright 2024 Sadopc.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// pipeline is a package used by the pngcompress command, which
// handles the batch compression, using channels to coordinate the
// stages. Note that it is considered an "internal" package, not
// intended for external use, and no guarantee is made of the
// stability of any interfaces provided.
package pipeline

import (
	"context"
	"log"

	compressor "github.com/sadopc/png-image-compressor"
)

// Outcome is the result of attempting to compress a single file.
// Err is set, and the sizes zero valued, if the file failed.
type Outcome struct {
	compressor.Result
	Err error
}

// compress reads file paths from the paths channel and compresses
// each in turn, sending an Outcome for every path received. A file
// that fails to read, decode or encode is recorded and skipped; it
// never stops the batch.
func compress(ctx context.Context, paths chan string, results chan Outcome, c *compressor.Compressor, outdir string, logger *log.Logger) {
	for path := range paths {
		select {
		case <-ctx.Done():
			for range paths {
			} // consume the rest of the receiving channel so it isn't blocked
			close(results)
			return
		default:
		}
		logger.Println("Compressing", path)
		r, err := c.Compress(path, compressor.OutputPath(path, outdir))
		if err != nil {
			logger.Println("Error compressing, skipping", path, err)
			results <- Outcome{Result: compressor.Result{Path: path}, Err: err}
			continue
		}
		results <- Outcome{Result: r}
	}
	close(results)
}

// collect gathers outcomes as they arrive, calling report for each
// one, and sends the full list on done once the results channel is
// closed.
func collect(results chan Outcome, done chan []Outcome, report func(Outcome)) {
	var all []Outcome
	for o := range results {
		if report != nil {
			report(o)
		}
		all = append(all, o)
	}
	done <- all
}

// Process compresses each of the given files at the given level,
// saving the output next to each input or in outdir if it is not
// empty. The report function, if not nil, is called for each file as
// it completes. The outcomes are returned in the order the files
// were given; if the context is cancelled mid-batch the outcomes so
// far are returned along with the context's error.
func Process(ctx context.Context, files []string, level int, outdir string, report func(Outcome), logger *log.Logger) ([]Outcome, error) {
	paths := make(chan string)
	results := make(chan Outcome)
	done := make(chan []Outcome, 1)

	c := &compressor.Compressor{Level: level}

	// these functions will do their jobs when their channels have data
	go compress(ctx, paths, results, c, outdir, logger)
	go collect(results, done, report)

	for _, f := range files {
		paths <- f
	}
	close(paths)

	all := <-done

	select {
	case <-ctx.Done():
		return all, ctx.Err()
	default:
	}
	return all, nil
}
