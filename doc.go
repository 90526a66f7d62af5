// Copyright 2024 Sadopc.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The compressor package recompresses PNG files to reduce their file
size, together with the pngcompress command which provides both a
command line and a graphical interface to it.

Introduction

PNG files found in the wild are frequently saved at a low compression
setting, as image editors tend to favour save speed over file size.
Recompressing them at a higher level is lossless and can shave a good
amount off the file size. This package does exactly that and no more;
the encoding itself is entirely delegated to the standard PNG codec,
with this package providing the batch iteration, directory walking and
the two user facing shells around it.

Presuming you have the go tools installed, you can install the
pngcompress command with this:
  go install github.com/sadopc/png-image-compressor/cmd/pngcompress@latest

Using the command line

Pass one or more PNG files or directories containing PNG files to
pngcompress. Directories are scanned for files ending in .png, and
recursively so if the -r flag is given. Compressed versions are named
like the original with a _compressed suffix, saved next to the
original, or into a different directory with the -o flag. The -l flag
sets the compression level, from 1 (fastest) to 9 (smallest):
  pngcompress -r -l 9 -o done/ scans/

Each file that fails to read or decode is reported and skipped, and
the rest of the batch carries on. A summary of the total and average
savings is printed at the end.

Using the graphical interface

Running pngcompress with no arguments starts a window instead. Files
and folders can be dragged and dropped onto it, or added with the
buttons, and the same level and output directory settings are
available. Once a batch has run the per file results are listed along
with a graph of the savings across the batch.

A note on levels

The underlying codec exposes a small number of compression strategies
rather than the full 1 to 9 range, so neighbouring levels may produce
identical output. Level semantics are owned by the codec, not by this
package.
*/
package compressor
