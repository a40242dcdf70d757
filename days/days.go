// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package days holds the registry of puzzle solvers.
package days

import (
	"errors"
	"strings"
)

var (
	ErrNoSolution    = errors.New("no solution")
	ErrUnimplemented = errors.New("unimplemented")
)

// Solver solves both parts of one day's puzzle.
//
// Parse is called once with the raw input before either part is solved.
// Lines that do not parse are dropped; Parse never fails.
type Solver interface {
	Parse(input string)
	Part1() (int, error)
	Part2() (int, error)
}

// Day describes a registered puzzle.
type Day struct {
	No   int
	Name string
	New  func() Solver
}

var registry = []Day{
	{No: 1, Name: "Report Repair", New: func() Solver { return &ExpenseReport{} }},
	{No: 2, Name: "Password Philosophy", New: func() Solver { return &Passwords{} }},
	{No: 3, Name: "Toboggan Trajectory", New: func() Solver { return &Toboggan{} }},
	{No: 4, Name: "Passport Processing", New: func() Solver { return &Passports{} }},
	{No: 5, Name: "Binary Boarding", New: func() Solver { return &BoardingPasses{} }},
	{No: 6, Name: "Custom Customs", New: func() Solver { return &Customs{} }},
	{No: 7, Name: "Handy Haversacks", New: func() Solver { return &Haversacks{Target: "shiny gold"} }},
}

// Registry returns the registered days in order.
func Registry() []Day {
	return append([]Day(nil), registry...)
}

// Lookup returns the day with the given number.
func Lookup(no int) (Day, bool) {
	for _, day := range registry {
		if day.No == no {
			return day, true
		}
	}
	return Day{}, false
}

// GroupByEmptyLines splits input into groups of lines separated by blank
// lines. Lines are trimmed and blank groups are dropped.
func GroupByEmptyLines(input string) [][]string {
	var groups [][]string
	var group []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(group) != 0 {
				groups = append(groups, group)
				group = nil
			}
			continue
		}
		group = append(group, line)
	}
	if len(group) != 0 {
		groups = append(groups, group)
	}
	return groups
}
