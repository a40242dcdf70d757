// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package inputs finds and loads puzzle input files.
package inputs

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/spf13/afero"
)

var (
	// puzzle input files have names that match the pattern day_NN.txt.
	rxInputFile = regexp.MustCompile(`^day_(\d{2})\.txt$`)
)

// File is a puzzle input file found in the inputs directory.
type File struct {
	Day  int    // the day number, taken from the file name
	Path string // the path to the input file
}

// FileName returns the conventional file name for a day's input.
func FileName(day int) string {
	return fmt.Sprintf("day_%02d.txt", day)
}

// Match returns the day number if the file name looks like a puzzle input.
func Match(fileName string) (int, bool) {
	matches := rxInputFile.FindStringSubmatch(fileName)
	// length of matches is 2 because it includes the whole string in the slice
	if len(matches) != 2 {
		return 0, false
	}
	day, _ := strconv.Atoi(matches[1])
	if day < 1 || day > 25 {
		return 0, false
	}
	return day, true
}

// CollectInputs returns the puzzle input files in dir, ordered by day.
// Files that do not match day_NN.txt are ignored.
func CollectInputs(fs afero.Fs, dir string, logger *slog.Logger) ([]*File, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("inputs: %w", err)
	}
	var files []*File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		day, ok := Match(entry.Name())
		if !ok {
			if logger != nil {
				logger.Debug("inputs: ignoring file", "name", entry.Name())
			}
			continue
		}
		files = append(files, &File{Day: day, Path: filepath.Join(dir, entry.Name())})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Day < files[j].Day
	})
	return files, nil
}

// Load reads an input file and normalizes its line endings.
func Load(fs afero.Fs, path string, options ...Option) (string, error) {
	cfg, err := newConfig(options...)
	if err != nil {
		return "", err
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", err
	}
	return string(cfg.normalize(data)), nil
}

// Normalize applies the line-ending options to data.
func Normalize(data []byte, options ...Option) ([]byte, error) {
	cfg, err := newConfig(options...)
	if err != nil {
		return nil, err
	}
	return cfg.normalize(data), nil
}
