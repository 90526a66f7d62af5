// Copyright 2024 Sadopc.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

type fileWalk chan string

// Walk sends the path of all files to the channel, with the exception of
// any file which starts with "."
func (f fileWalk) Walk(path string, info os.FileInfo, err error) error {
	if err != nil {
		return err
	}
	// skip files starting with . to prevent automatically generated
	// files like .DS_Store getting in the way
	if strings.HasPrefix(filepath.Base(path), ".") {
		return nil
	}
	if !info.IsDir() {
		f <- path
	}
	return nil
}

// IsPng checks whether a file name has a ".png" suffix, ignoring case
func IsPng(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}

// FindImages resolves input arguments into the list of PNG files to
// process. A file argument is included only if it has a ".png" suffix;
// a directory argument is scanned for PNG files, recursively if
// recursive is set. Dotfiles are skipped.
func FindImages(paths []string, recursive bool) ([]string, error) {
	var found []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("Error finding input %s: %v", p, err)
		}

		if !fi.IsDir() {
			if IsPng(p) && !strings.HasPrefix(filepath.Base(p), ".") {
				found = append(found, p)
			}
			continue
		}

		if recursive {
			walker := make(fileWalk)
			go func(dir string) {
				_ = filepath.Walk(dir, walker.Walk)
				close(walker)
			}(p)
			for path := range walker {
				if IsPng(path) {
					found = append(found, path)
				}
			}
			continue
		}

		files, err := ioutil.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("Error reading directory %s: %v", p, err)
		}
		for _, file := range files {
			if file.IsDir() || strings.HasPrefix(file.Name(), ".") {
				continue
			}
			if IsPng(file.Name()) {
				found = append(found, filepath.Join(p, file.Name()))
			}
		}
	}
	return found, nil
}
