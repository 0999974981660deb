package day2

import (
	"strings"

	"github.com/chris-olszewski/aoc2022"
)

// Round is one line read as two shapes: the elf's and yours.
type Round struct {
	Elf Shape
	You Shape
}

// Outcome returns the round's result from your side.
func (r Round) Outcome() Outcome {
	return r.You.Against(r.Elf)
}

// Score is your shape's value plus the outcome's value.
func (r Round) Score() int {
	return r.Outcome().Value() + r.You.Value()
}

// Plan is one line read as the elf's shape and the outcome you need.
type Plan struct {
	Elf  Shape
	Want Outcome
}

// Shape returns the shape to play.
func (p Plan) Shape() Shape {
	return ShapeFor(p.Elf, p.Want)
}

// Score is the chosen shape's value plus the planned outcome's value.
func (p Plan) Score() int {
	return p.Want.Value() + p.Shape().Value()
}

func splitTokens(line string) (string, string, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", aoc.Malformedf("want 2 tokens, got %d", len(fields))
	}
	return fields[0], fields[1], nil
}

func parseElf(tok string) (Shape, error) {
	switch tok {
	case "A":
		return Rock, nil
	case "B":
		return Paper, nil
	case "C":
		return Scissors, nil
	default:
		return 0, aoc.Malformedf("unexpected elf play %q", tok)
	}
}

func parseYou(tok string) (Shape, error) {
	switch tok {
	case "X":
		return Rock, nil
	case "Y":
		return Paper, nil
	case "Z":
		return Scissors, nil
	default:
		return 0, aoc.Malformedf("unexpected play %q", tok)
	}
}

func parseOutcome(tok string) (Outcome, error) {
	switch tok {
	case "X":
		return Lost, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Won, nil
	default:
		return 0, aoc.Malformedf("unexpected outcome %q", tok)
	}
}

// ParseRound reads a line such as "A Y".
func ParseRound(line string) (Round, error) {
	elfTok, youTok, err := splitTokens(line)
	if err != nil {
		return Round{}, err
	}
	elf, err := parseElf(elfTok)
	if err != nil {
		return Round{}, err
	}
	you, err := parseYou(youTok)
	if err != nil {
		return Round{}, err
	}
	return Round{Elf: elf, You: you}, nil
}

// ParsePlan reads a line such as "A Y" as shape and desired outcome.
func ParsePlan(line string) (Plan, error) {
	elfTok, wantTok, err := splitTokens(line)
	if err != nil {
		return Plan{}, err
	}
	elf, err := parseElf(elfTok)
	if err != nil {
		return Plan{}, err
	}
	want, err := parseOutcome(wantTok)
	if err != nil {
		return Plan{}, err
	}
	return Plan{Elf: elf, Want: want}, nil
}

// ParseRounds parses a whole strategy guide as rounds.
func ParseRounds(input string) ([]Round, error) {
	return aoc.ParseLines(input, ParseRound)
}

// ParsePlans parses a whole strategy guide as plans.
func ParsePlans(input string) ([]Plan, error) {
	return aoc.ParseLines(input, ParsePlan)
}
