// Copyright 2024 Sadopc.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"testing"

	compressor "github.com/sadopc/png-image-compressor"
	"github.com/sadopc/png-image-compressor/internal/pipeline"
)

func TestOutcomeLine(t *testing.T) {
	cases := []struct {
		name string
		o    pipeline.Outcome
		want string
	}{
		{"halved", pipeline.Outcome{
			Result: compressor.Result{Path: "/tmp/pics/a.png", OrigSize: 2000, NewSize: 1000},
		}, "Compressed: a.png - 2.0 kB → 1.0 kB (50.0% saved)"},
		{"small file", pipeline.Outcome{
			Result: compressor.Result{Path: "b.png", OrigSize: 500, NewSize: 400},
		}, "Compressed: b.png - 500 B → 400 B (20.0% saved)"},
		{"failed", pipeline.Outcome{
			Result: compressor.Result{Path: "/tmp/pics/c.png"},
			Err:    errors.New("Error decoding image"),
		}, "Error: c.png - Error decoding image"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := outcomeLine(c.o)
			if got != c.want {
				t.Fatalf("Expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	cases := []struct {
		name     string
		outcomes []pipeline.Outcome
		want     string
	}{
		{"mixed", []pipeline.Outcome{
			{Result: compressor.Result{Path: "a.png", OrigSize: 2000, NewSize: 1000}},
			{Result: compressor.Result{Path: "b.png"}, Err: errors.New("nope")},
			{Result: compressor.Result{Path: "c.png", OrigSize: 1000, NewSize: 900}},
		}, "Files processed successfully: 2/3\nTotal size reduction: 1.1 kB (30.0% average)"},
		{"grew", []pipeline.Outcome{
			{Result: compressor.Result{Path: "a.png", OrigSize: 1000, NewSize: 1500}},
		}, "Files processed successfully: 1/1\nTotal size reduction: -500 B (-50.0% average)"},
		{"empty", nil,
			"Files processed successfully: 0/0\nTotal size reduction: 0 B (0.0% average)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := summary(c.outcomes)
			if got != c.want {
				t.Fatalf("Expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestSizeString(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{999, "999 B"},
		{1000, "1.0 kB"},
		{1500000, "1.5 MB"},
		{-2000, "-2.0 kB"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			if got := sizeString(c.n); got != c.want {
				t.Fatalf("Expected %q, got %q", c.want, got)
			}
		})
	}
}
