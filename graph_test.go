// Copyright 2024 Sadopc.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package compressor

import (
	"bytes"
	"fmt"
	"image/png"
	"testing"
)

func TestGraph(t *testing.T) {
	var results []Result
	for i := 0; i < 20; i++ {
		results = append(results, Result{
			Path:     fmt.Sprintf("page%02d.png", i),
			OutPath:  fmt.Sprintf("page%02d_compressed.png", i),
			OrigSize: 10000,
			NewSize:  int64(10000 - i*250),
		})
	}

	var buf bytes.Buffer
	err := Graph(results, "test batch", &buf)
	if err != nil {
		t.Fatalf("Error rendering graph: %v", err)
	}
	_, err = png.Decode(&buf)
	if err != nil {
		t.Fatalf("Graph output is not a valid PNG: %v", err)
	}
}

func TestGraphTooFewResults(t *testing.T) {
	var buf bytes.Buffer
	err := Graph([]Result{{Path: "only.png", OrigSize: 10, NewSize: 5}}, "test", &buf)
	if err == nil {
		t.Fatalf("Expected an error graphing a single result, got none")
	}
}
