package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-olszewski/aoc2022"
	"gopkg.in/yaml.v3"
)

// Column widths for text output.
const (
	columnWidthDay    = 5
	columnWidthPart   = 7
	columnWidthAnswer = 12
	columnWidthTime   = 12
	columnWidthTitle  = 24
	digestPrefixLen   = 12
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	answerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

func cell(style lipgloss.Style, width int, s string) string {
	return style.Width(width).Render(s)
}

// renderReports writes run reports as a table or as YAML.
func renderReports(w io.Writer, format string, reports []aoc.Report) error {
	if format == OutputYAML {
		return encodeYAML(w, struct {
			Reports []aoc.Report `yaml:"reports"`
		}{reports})
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		cell(headerStyle, columnWidthDay, "DAY"),
		cell(headerStyle, columnWidthPart, "PART"),
		cell(headerStyle, columnWidthAnswer, "ANSWER"),
		cell(headerStyle, columnWidthTime, "TIME"),
		headerStyle.Render("INPUT"),
	))
	b.WriteString("\n")
	for _, r := range reports {
		input := r.Digest
		if len(input) > digestPrefixLen {
			input = input[:digestPrefixLen]
		}
		if r.Sample {
			input = "sample"
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			cell(lipgloss.NewStyle(), columnWidthDay, strconv.Itoa(r.Day)),
			cell(lipgloss.NewStyle(), columnWidthPart, r.Part.String()),
			cell(answerStyle, columnWidthAnswer, strconv.Itoa(r.Answer)),
			cell(faintStyle, columnWidthTime, r.Duration.Round(time.Microsecond).String()),
			faintStyle.Render(input),
		))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// renderCatalogue writes the registered days.
func renderCatalogue(w io.Writer, format string, puzzles []aoc.Puzzle) error {
	if format == OutputYAML {
		type entry struct {
			Title string `yaml:"title"`
			Day   int    `yaml:"day"`
		}
		days := make([]entry, 0, len(puzzles))
		for _, p := range puzzles {
			days = append(days, entry{Day: p.Day, Title: p.Title})
		}
		return encodeYAML(w, struct {
			Days []entry `yaml:"days"`
		}{days})
	}

	var b strings.Builder
	b.WriteString("Available days:\n\n")
	for _, p := range puzzles {
		b.WriteString("  ")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			cell(headerStyle, columnWidthDay, strconv.Itoa(p.Day)),
			cell(lipgloss.NewStyle(), columnWidthTitle, p.Title),
		))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// renderBench writes benchmark results.
func renderBench(w io.Writer, format string, results []BenchResult) error {
	if format == OutputYAML {
		return encodeYAML(w, struct {
			Benchmarks []BenchResult `yaml:"benchmarks"`
		}{results})
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		cell(headerStyle, columnWidthDay, "DAY"),
		cell(headerStyle, columnWidthPart, "PART"),
		cell(headerStyle, columnWidthAnswer, "N"),
		cell(headerStyle, columnWidthTime, "NS/OP"),
		headerStyle.Render("ALLOCS/OP"),
	))
	b.WriteString("\n")
	for _, r := range results {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			cell(lipgloss.NewStyle(), columnWidthDay, strconv.Itoa(r.Day)),
			cell(lipgloss.NewStyle(), columnWidthPart, r.Part.String()),
			cell(lipgloss.NewStyle(), columnWidthAnswer, strconv.Itoa(r.Iterations)),
			cell(answerStyle, columnWidthTime, strconv.FormatInt(r.NsPerOp, 10)),
			faintStyle.Render(fmt.Sprintf("%d (%d B)", r.AllocsPerOp, r.BytesPerOp)),
		))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
