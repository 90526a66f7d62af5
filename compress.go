// Copyright 2024 Sadopc.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package compressor

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MinLevel and MaxLevel are the range of valid compression levels,
// with DefaultLevel being a reasonable balance of speed and size.
const MinLevel = 1
const MaxLevel = 9
const DefaultLevel = 6

// OutSuffix is appended to the base name of compressed files, so
// that the original is never silently overwritten.
const OutSuffix = "_compressed"

// Compressor recompresses images as PNG at a set compression level.
type Compressor struct {
	// Level is the compression level, from MinLevel (fastest) to
	// MaxLevel (smallest output). Zero means DefaultLevel.
	Level int
}

// Result describes a successful compression of a single file.
type Result struct {
	Path     string
	OutPath  string
	OrigSize int64
	NewSize  int64
}

// Saved is the number of bytes saved by the compression. It is
// negative if the file grew, which can happen with already well
// compressed files.
func (r Result) Saved() int64 {
	return r.OrigSize - r.NewSize
}

// PercentSaved is Saved as a percentage of the original file size.
func (r Result) PercentSaved() float64 {
	if r.OrigSize == 0 {
		return 0
	}
	return float64(r.Saved()) / float64(r.OrigSize) * 100
}

// codecLevel maps a 1-9 level onto the levels the codec exposes.
// The codec only distinguishes a few strategies, so neighbouring
// levels map to the same one.
func codecLevel(level int) (png.CompressionLevel, error) {
	switch {
	case level < MinLevel || level > MaxLevel:
		return png.DefaultCompression, fmt.Errorf("Invalid compression level %d; must be between %d and %d", level, MinLevel, MaxLevel)
	case level <= 3:
		return png.BestSpeed, nil
	case level <= 6:
		return png.DefaultCompression, nil
	default:
		return png.BestCompression, nil
	}
}

// OutputPath returns the path a compressed version of path should be
// saved to, which is the original name with OutSuffix appended before
// the extension. It is placed next to the original, or in outdir if
// that is not empty.
func OutputPath(path string, outdir string) string {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if outdir == "" {
		outdir = filepath.Dir(path)
	}
	return filepath.Join(outdir, base+OutSuffix+ext)
}

// Compress reads the image at path and saves a recompressed PNG
// version of it to outpath, creating the output directory if
// necessary. The file content is sniffed rather than trusting the
// extension, so a mislabelled file containing e.g. JPEG data is
// still decoded and comes out as a real PNG.
func (c *Compressor) Compress(path string, outpath string) (Result, error) {
	level := c.Level
	if level == 0 {
		level = DefaultLevel
	}
	cl, err := codecLevel(level)
	if err != nil {
		return Result{}, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("Error finding input file %s: %v", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("Error opening image %s: %v", path, err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return Result{}, fmt.Errorf("Error decoding image %s: %v", path, err)
	}

	err = os.MkdirAll(filepath.Dir(outpath), 0755)
	if err != nil {
		return Result{}, fmt.Errorf("Error creating output directory for %s: %v", outpath, err)
	}

	out, err := os.Create(outpath)
	if err != nil {
		return Result{}, fmt.Errorf("Error creating output file %s: %v", outpath, err)
	}
	enc := png.Encoder{CompressionLevel: cl}
	err = enc.Encode(out, img)
	if err != nil {
		out.Close()
		_ = os.Remove(outpath)
		return Result{}, fmt.Errorf("Error encoding %s: %v", outpath, err)
	}
	err = out.Close()
	if err != nil {
		return Result{}, fmt.Errorf("Error writing output file %s: %v", outpath, err)
	}

	ofi, err := os.Stat(outpath)
	if err != nil {
		return Result{}, fmt.Errorf("Error finding output file %s: %v", outpath, err)
	}

	return Result{
		Path:     path,
		OutPath:  outpath,
		OrigSize: fi.Size(),
		NewSize:  ofi.Size(),
	}, nil
}
