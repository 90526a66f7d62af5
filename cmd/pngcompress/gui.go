// Copyright 2024 Sadopc.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	compressor "github.com/sadopc/png-image-compressor"
	"github.com/sadopc/png-image-compressor/internal/pipeline"
)

// startGui starts the gui process
func startGui(verboselog *log.Logger) error {
	myApp := app.New()
	myWindow := myApp.NewWindow("PNG Image Compressor")

	var files []string
	var outdir string

	var gobtn *widget.Button

	filelist := widget.NewMultiLineEntry()
	filelist.SetPlaceHolder("Drag and drop PNG files or folders here, or use the buttons below")
	filelist.Disable()

	refresh := func() {
		filelist.SetText(strings.Join(files, "\n"))
		if len(files) > 0 {
			gobtn.Enable()
		} else {
			gobtn.Disable()
		}
	}

	addPaths := func(paths []string) {
		found, err := pipeline.FindImages(paths, false)
		if err != nil {
			dialog.ShowError(err, myWindow)
			return
		}
		for _, f := range found {
			dup := false
			for _, have := range files {
				if have == f {
					dup = true
					break
				}
			}
			if !dup {
				files = append(files, f)
			}
		}
		refresh()
	}

	myWindow.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		var paths []string
		for _, u := range uris {
			paths = append(paths, u.Path())
		}
		if len(paths) > 0 {
			addPaths(paths)
		}
	})

	addbtn := widget.NewButtonWithIcon("Add files", theme.FileImageIcon(), func() {
		d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil || rc == nil {
				return
			}
			p := rc.URI().Path()
			rc.Close()
			addPaths([]string{p})
		}, myWindow)
		d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
		d.Show()
	})
	folderbtn := widget.NewButtonWithIcon("Add folder", theme.FolderOpenIcon(), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err == nil && uri != nil {
				addPaths([]string{uri.Path()})
			}
		}, myWindow)
	})
	clearbtn := widget.NewButtonWithIcon("Clear list", theme.ContentClearIcon(), func() {
		files = nil
		refresh()
	})

	var levels []string
	for i := compressor.MinLevel; i <= compressor.MaxLevel; i++ {
		levels = append(levels, strconv.Itoa(i))
	}
	levelsel := widget.NewSelect(levels, nil)
	levelsel.SetSelected(strconv.Itoa(compressor.DefaultLevel))

	outdirlabel := widget.NewLabel("Same as input files")
	outdirbtn := widget.NewButtonWithIcon("Output folder", theme.FolderIcon(), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				return
			}
			if uri == nil {
				outdir = ""
				outdirlabel.SetText("Same as input files")
				return
			}
			outdir = uri.Path()
			outdirlabel.SetText(outdir)
		}, myWindow)
	})

	progressBar := widget.NewProgressBar()

	logarea := widget.NewMultiLineEntry()
	logarea.Disable()

	summarylabel := widget.NewLabel("")

	chartimg := &canvas.Image{FillMode: canvas.ImageFillContain}
	chartimg.SetMinSize(fyne.NewSize(640, 360))
	chartimg.Hide()

	gobtn = widget.NewButtonWithIcon("Compress images", theme.ConfirmIcon(), func() {
		if len(files) == 0 {
			return
		}
		level, err := strconv.Atoi(levelsel.Selected)
		if err != nil {
			level = compressor.DefaultLevel
		}

		batch := make([]string, len(files))
		copy(batch, files)

		gobtn.Disable()
		gobtn.SetText("Compressing...")
		for _, b := range []*widget.Button{addbtn, folderbtn, clearbtn, outdirbtn} {
			b.Disable()
		}
		progressBar.SetValue(0)
		logarea.SetText("")
		summarylabel.SetText("")
		chartimg.Hide()

		// run the batch in a concurrent goroutine so the interface
		// stays responsive while it works
		go func() {
			processed := 0
			outcomes, err := pipeline.Process(context.Background(), batch, level, outdir, func(o pipeline.Outcome) {
				processed++
				logarea.SetText(logarea.Text + outcomeLine(o) + "\n")
				logarea.CursorRow = strings.Count(logarea.Text, "\n")
				progressBar.SetValue(float64(processed) / float64(len(batch)))
			}, verboselog)
			if err != nil {
				dialog.ShowError(err, myWindow)
			}

			summarylabel.SetText(summary(outcomes))

			var results []compressor.Result
			for _, o := range outcomes {
				if o.Err == nil {
					results = append(results, o.Result)
				}
			}

			var buf bytes.Buffer
			err = compressor.Graph(results, "Size saved per file", &buf)
			if err == nil {
				chartimg.Resource = fyne.NewStaticResource("savings.png", buf.Bytes())
				chartimg.Show()
				chartimg.Refresh()
			}

			if len(results) > 0 {
				dialog.ShowInformation("Compression Complete",
					fmt.Sprintf("Successfully compressed %d images", len(results)), myWindow)
			}

			for _, b := range []*widget.Button{addbtn, folderbtn, clearbtn, outdirbtn} {
				b.Enable()
			}
			gobtn.SetText("Compress images")
			gobtn.Enable()
		}()
	})
	gobtn.Disable()

	buttons := container.New(layout.NewGridLayout(3), addbtn, folderbtn, clearbtn)
	settings := container.New(layout.NewGridLayout(2),
		container.NewHBox(widget.NewLabel("Compression level:"), levelsel),
		container.NewHBox(outdirbtn, outdirlabel))

	content := container.NewVBox(filelist, buttons, settings, gobtn, progressBar, logarea, summarylabel, chartimg)

	myWindow.Resize(fyne.NewSize(800, 600))
	myWindow.SetContent(content)

	myWindow.Show()
	myApp.Run()

	return nil
}
