// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package aoc2020 holds the build version of the puzzle runner.
package aoc2020

import (
	"github.com/maloquacious/semver"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 7,
		Patch: 0,
		Build: semver.Commit(),
	}
)

func Version() semver.Version {
	return version
}
