// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package bags

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrCycle        = errors.New("bag rules contain a cycle")
	ErrUnknownColor = errors.New("unknown bag color")
	ErrOverflow     = errors.New("bag count overflows int")
)

// Rules maps a bag color to its required contents.
type Rules map[string][]Child

// NewRules indexes rules by color. When a color is listed more than
// once, the last rule wins.
func NewRules(rules []Rule) Rules {
	g := make(Rules, len(rules))
	for _, rule := range rules {
		g[rule.Color] = rule.Contents
	}
	return g
}

// Colors returns the colors that have a rule, sorted.
func (g Rules) Colors() []string {
	colors := make([]string, 0, len(g))
	for color := range g {
		colors = append(colors, color)
	}
	sort.Strings(colors)
	return colors
}

// known reports whether color has a rule or is listed as a child.
func (g Rules) known(color string) bool {
	if _, ok := g[color]; ok {
		return true
	}
	for _, children := range g {
		for _, child := range children {
			if child.Color == color {
				return true
			}
		}
	}
	return false
}

// Containers returns the colors that can eventually contain a bag of the
// target color, sorted. The target itself is never included.
func (g Rules) Containers(target string) ([]string, error) {
	if !g.known(target) {
		return nil, fmt.Errorf("%q: %w", target, ErrUnknownColor)
	}

	parents := map[string][]string{}
	for outer, children := range g {
		for _, child := range children {
			parents[child.Color] = append(parents[child.Color], outer)
		}
	}

	seen := map[string]bool{target: true}
	queue := []string{target}
	var containers []string
	for len(queue) != 0 {
		color := queue[0]
		queue = queue[1:]
		for _, outer := range parents[color] {
			if seen[outer] {
				continue
			}
			seen[outer] = true
			containers = append(containers, outer)
			queue = append(queue, outer)
		}
	}
	sort.Strings(containers)
	return containers, nil
}

// CountInside returns the total number of bags required inside one bag of
// the given color. Colors without a rule are treated as empty.
// Results are memoized, so shared sub-bags are only counted once per call.
// A total that does not fit in an int returns ErrOverflow.
func (g Rules) CountInside(color string) (int, error) {
	if _, ok := g[color]; !ok {
		return 0, fmt.Errorf("%q: %w", color, ErrUnknownColor)
	}
	const (
		visiting = iota + 1
		done
	)
	state := map[string]int{}
	memo := map[string]int{}
	var count func(color string) (int, error)
	count = func(color string) (int, error) {
		switch state[color] {
		case visiting:
			return 0, fmt.Errorf("%q: %w", color, ErrCycle)
		case done:
			return memo[color], nil
		}
		state[color] = visiting
		total := 0
		for _, child := range g[color] {
			n, err := count(child.Color)
			if err != nil {
				return 0, err
			}
			total, err = addBags(total, int(child.Count), n)
			if err != nil {
				return 0, fmt.Errorf("%q: %w", color, err)
			}
		}
		state[color], memo[color] = done, total
		return total, nil
	}
	return count(color)
}

// addBags returns total + count*(1+inside), the bags added by count
// children that each hold inside bags.
func addBags(total, count, inside int) (int, error) {
	if inside == math.MaxInt || (count != 0 && inside+1 > math.MaxInt/count) {
		return 0, ErrOverflow
	}
	n := count * (inside + 1)
	if total > math.MaxInt-n {
		return 0, ErrOverflow
	}
	return total + n, nil
}
