package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chris-olszewski/aoc2022"
	"github.com/chris-olszewski/aoc2022/day1"
	"github.com/chris-olszewski/aoc2022/day2"
	"github.com/chris-olszewski/aoc2022/day3"
	"github.com/chris-olszewski/aoc2022/day4"
	"github.com/spf13/cobra"
)

// catalogue returns every solved day.
func catalogue() (*aoc.Registry, error) {
	return aoc.NewRegistry(
		day1.Puzzle(),
		day2.Puzzle(),
		day3.Puzzle(),
		day4.Puzzle(),
	)
}

// parseDay accepts "4" or "day4".
func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(strings.TrimPrefix(s, "day"))
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	return day, nil
}

// completeDays offers the registered days for shell completion.
func completeDays(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	registry, err := catalogue()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var completions []string
	for _, p := range registry.All() {
		day := strconv.Itoa(p.Day)
		if strings.HasPrefix(day, toComplete) {
			completions = append(completions, day+"\t"+p.Title)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
