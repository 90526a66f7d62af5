// Copyright 2024 Sadopc.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package compressor

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const maxticks = 40
const goodCutoff = 50
const mediumCutoff = 20
const badCutoff = 5
const yticknum = 20

type graphSaving struct {
	Num     float64
	Name    string
	Percent float64
}

// createLine creates a horizontal line with a particular y value for
// a graph
func createLine(xvalues []float64, y float64, c drawing.Color) chart.ContinuousSeries {
	var yvalues []float64
	for range xvalues {
		yvalues = append(yvalues, y)
	}
	return chart.ContinuousSeries{
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor: c,
		},
	}
}

// Graph creates a graph of the size saving of each file in a batch
func Graph(results []Result, title string, w io.Writer) error {
	return GraphOpts(results, title, "File number", true, w)
}

// GraphOpts creates a graph of size savings
func GraphOpts(results []Result, title string, xaxis string, guidelines bool, w io.Writer) error {
	if len(results) < 2 {
		return errors.New("Not enough results to graph")
	}

	var savings []graphSaving
	for i, r := range results {
		var s graphSaving
		s.Num = float64(i + 1)
		s.Name = filepath.Base(r.Path)
		s.Percent = r.PercentSaved()
		savings = append(savings, s)
	}

	// Create main xvalues, yvalues ticks
	var xvalues, yvalues []float64
	var ticks []chart.Tick
	var yticks []chart.Tick
	tickevery := len(savings) / maxticks
	if tickevery < 1 {
		tickevery = 1
	}
	for i, s := range savings {
		xvalues = append(xvalues, s.Num)
		yvalues = append(yvalues, s.Percent)
		if i%tickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: s.Num, Label: fmt.Sprintf("%.0f", s.Num)})
		}
	}
	// Make last tick the final file
	final := savings[len(savings)-1]
	ticks[len(ticks)-1] = chart.Tick{Value: final.Num, Label: fmt.Sprintf("%.0f", final.Num)}

	// A file can grow when recompressed, so extend the y axis below
	// zero if needed
	graphmin := 0.0
	for _, s := range savings {
		if s.Percent < graphmin {
			graphmin = s.Percent
		}
	}
	for i := 0; i <= yticknum; i++ {
		n := graphmin + float64(i)*(100-graphmin)/yticknum
		yticks = append(yticks, chart.Tick{Value: n, Label: fmt.Sprintf("%.1f", n)})
	}

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	// Create lines
	goodCutoffSeries := createLine(xvalues, goodCutoff, chart.ColorAlternateGreen)
	mediumCutoffSeries := createLine(xvalues, mediumCutoff, chart.ColorOrange)
	badCutoffSeries := createLine(xvalues, badCutoff, chart.ColorRed)

	// Create lines marking top and bottom 10% savings
	sort.Slice(savings, func(i, j int) bool { return savings[i].Percent < savings[j].Percent })
	lowsaving := savings[int(len(savings)/10)].Percent
	highsaving := savings[int((len(savings)/10)*9)].Percent
	yvalues = []float64{}
	for range savings {
		yvalues = append(yvalues, lowsaving)
	}
	minSeries := &chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor:     chart.ColorAlternateGray,
			StrokeDashArray: []float64{5.0, 5.0},
		},
		XValues: xvalues,
		YValues: yvalues,
	}
	yvalues = []float64{}
	for range savings {
		yvalues = append(yvalues, highsaving)
	}
	maxSeries := &chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor:     chart.ColorAlternateGray,
			StrokeDashArray: []float64{5.0, 5.0},
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	// Annotate the outliers with their file names
	var annotations []chart.Value2
	for _, s := range savings {
		if !guidelines || (s.Percent > highsaving || s.Percent < lowsaving) {
			annotations = append(annotations, chart.Value2{Label: s.Name, XValue: s.Num, YValue: s.Percent})
		}
	}
	annotations = append(annotations, chart.Value2{Label: fmt.Sprintf("%.0f", lowsaving), XValue: xvalues[len(xvalues)-1], YValue: lowsaving})
	annotations = append(annotations, chart.Value2{Label: fmt.Sprintf("%.0f", highsaving), XValue: xvalues[len(xvalues)-1], YValue: highsaving})

	graph := chart.Chart{
		Title:  title,
		Width:  3840,
		Height: 2160,
		XAxis: chart.XAxis{
			Name: xaxis,
			Range: &chart.ContinuousRange{
				Min: 0.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Size saved (%)",
			Range: &chart.ContinuousRange{
				Min: graphmin,
				Max: 100.0,
			},
			Ticks: yticks,
		},
		Series: []chart.Series{
			mainSeries,
			chart.AnnotationSeries{
				Annotations: annotations,
			},
		},
	}
	if guidelines {
		for _, s := range []chart.Series{
			minSeries,
			maxSeries,
			goodCutoffSeries,
			mediumCutoffSeries,
			badCutoffSeries,
		} {
			graph.Series = append(graph.Series, s)
		}
	}
	return graph.Render(chart.PNG, w)
}
