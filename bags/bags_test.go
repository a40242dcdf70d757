// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package bags_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdhender/aoc2020/bags"
	"github.com/mdhender/aoc2020/parsec"
)

const example = `light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
`

func TestColorParser(t *testing.T) {
	input := "pale turquoise bags contain 3 muted cyan bags, 5 striped teal bags."
	want := parsec.Success("bags contain 3 muted cyan bags, 5 striped teal bags.", "pale turquoise")
	if diff := cmp.Diff(want, bags.ColorParser().Parse(input)); diff != "" {
		t.Errorf("ColorParser mismatch (-want +got):\n%s", diff)
	}
}

func TestChildParser(t *testing.T) {
	want := parsec.Success("bags.", bags.Child{Count: 5, Color: "striped teal"})
	if diff := cmp.Diff(want, bags.ChildParser().Parse("5 striped teal bags.")); diff != "" {
		t.Errorf("ChildParser mismatch (-want +got):\n%s", diff)
	}
}

func TestChildrenParser(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  parsec.Result[[]bags.Child]
	}{
		{"5 striped teal bags.", parsec.Success("", []bags.Child{{Count: 5, Color: "striped teal"}})},
		{"1 shiny gold bag.", parsec.Success("", []bags.Child{{Count: 1, Color: "shiny gold"}})},
		{"3 muted cyan bags, 5 striped teal bags.", parsec.Success("", []bags.Child{
			{Count: 3, Color: "muted cyan"},
			{Count: 5, Color: "striped teal"},
		})},
		{"no other bags.", parsec.Failure[[]bags.Child]("no other bags.")},
		// the list must end with a period
		{"1 shiny gold bag, ", parsec.Failure[[]bags.Child](", ")},
		{"1 shiny gold bag.2 dark red bags.", parsec.Success("2 dark red bags.", []bags.Child{{Count: 1, Color: "shiny gold"}})},
	} {
		if diff := cmp.Diff(tc.want, bags.ChildrenParser().Parse(tc.input)); diff != "" {
			t.Errorf("ChildrenParser(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestRuleParser(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  parsec.Result[bags.Rule]
	}{
		{
			input: "pale turquoise bags contain 3 muted cyan bags, 5 striped teal bags.",
			want: parsec.Success("", bags.Rule{
				Color: "pale turquoise",
				Contents: []bags.Child{
					{Count: 3, Color: "muted cyan"},
					{Count: 5, Color: "striped teal"},
				},
			}),
		},
		{
			input: "faded blue bags contain no other bags.",
			want:  parsec.Success("", bags.Rule{Color: "faded blue", Contents: []bags.Child{}}),
		},
	} {
		if diff := cmp.Diff(tc.want, bags.RuleParser().Parse(tc.input)); diff != "" {
			t.Errorf("RuleParser(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestParseRule_Rejects(t *testing.T) {
	for _, input := range []string{
		"",
		"bags contain no other bags.",
		"faded blue bags contain nothing.",
		"faded blue bags contain no other bags. extra",
		"light red bags contain one bright white bag.",
		"light red bags contain 1 bright white bag",
		"light red bags contain 1 bright white bag, ",
		"light red bags contain 1 bright white bag.2 muted yellow bags.",
		"light red bags contain 1 bright white bag. 2 muted yellow bags.",
		"light red bags contain 1 bright white bag, 2 muted yellow bags, ",
	} {
		if rule, ok := bags.ParseRule(input); ok {
			t.Errorf("ParseRule(%q) = %+v, want no match", input, rule)
		}
	}
}

func TestParseRules_SkipsBadLines(t *testing.T) {
	text := "faded blue bags contain no other bags.\r\nthis line is noise\ndotted black bags contain no other bags.\n"
	rules := bags.ParseRules(text)
	if got, want := len(rules), 2; got != want {
		t.Fatalf("len(rules) = %d, want %d", got, want)
	}
	if got, want := rules[1].Color, "dotted black"; got != want {
		t.Fatalf("rules[1].Color = %q, want %q", got, want)
	}
}

func TestContainers(t *testing.T) {
	g := bags.NewRules(bags.ParseRules(example))
	got, err := g.Containers("shiny gold")
	if err != nil {
		t.Fatalf("Containers: %v", err)
	}
	want := []string{"bright white", "dark orange", "light red", "muted yellow"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Containers mismatch (-want +got):\n%s", diff)
	}

	if _, err := g.Containers("plaid magenta"); !errors.Is(err, bags.ErrUnknownColor) {
		t.Errorf("Containers(unknown) error = %v, want ErrUnknownColor", err)
	}
}

func TestCountInside(t *testing.T) {
	g := bags.NewRules(bags.ParseRules(example))
	if got, err := g.CountInside("shiny gold"); err != nil || got != 32 {
		t.Errorf("CountInside(shiny gold) = %d, %v, want 32", got, err)
	}
	if got, err := g.CountInside("faded blue"); err != nil || got != 0 {
		t.Errorf("CountInside(faded blue) = %d, %v, want 0", got, err)
	}

	deep := bags.NewRules(bags.ParseRules(`shiny gold bags contain 2 dark red bags.
dark red bags contain 2 dark orange bags.
dark orange bags contain 2 dark yellow bags.
dark yellow bags contain 2 dark green bags.
dark green bags contain 2 dark blue bags.
dark blue bags contain 2 dark violet bags.
dark violet bags contain no other bags.`))
	if got, err := deep.CountInside("shiny gold"); err != nil || got != 126 {
		t.Errorf("CountInside(deep) = %d, %v, want 126", got, err)
	}
}

func TestCountInside_Cycle(t *testing.T) {
	g := bags.NewRules(bags.ParseRules(`shiny gold bags contain 1 dark red bag.
dark red bags contain 2 shiny gold bags.`))
	if _, err := g.CountInside("shiny gold"); !errors.Is(err, bags.ErrCycle) {
		t.Fatalf("CountInside(cycle) error = %v, want ErrCycle", err)
	}
	// reachability still terminates on a cycle
	got, err := g.Containers("shiny gold")
	if err != nil {
		t.Fatalf("Containers(cycle): %v", err)
	}
	if diff := cmp.Diff([]string{"dark red"}, got); diff != "" {
		t.Errorf("Containers(cycle) mismatch (-want +got):\n%s", diff)
	}
}

func TestCountInside_Overflow(t *testing.T) {
	g := bags.NewRules(bags.ParseRules(`shiny gold bags contain 4294967295 dark red bags.
dark red bags contain 4294967295 dark blue bags.
dark blue bags contain no other bags.
`))
	// dark red alone still fits
	if got, err := g.CountInside("dark red"); err != nil || got != 4294967295 {
		t.Errorf("CountInside(dark red) = %d, %v, want 4294967295", got, err)
	}
	if _, err := g.CountInside("shiny gold"); !errors.Is(err, bags.ErrOverflow) {
		t.Errorf("CountInside(shiny gold) error = %v, want ErrOverflow", err)
	}
}
