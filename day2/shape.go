package day2

import "fmt"

// Shape is a hand shape. Its numeric value is the shape's score.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

// Shapes lists every shape.
var Shapes = []Shape{Rock, Paper, Scissors}

func (s Shape) String() string {
	switch s {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Value is the score for playing s.
func (s Shape) Value() int {
	return int(s)
}

// Beats returns the shape s defeats.
func (s Shape) Beats() Shape {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	case Scissors:
		return Paper
	default:
		panic(fmt.Sprintf("day2: invalid shape %d", int(s)))
	}
}

// Against returns the outcome of playing s against opponent.
func (s Shape) Against(opponent Shape) Outcome {
	switch {
	case s == opponent:
		return Draw
	case s.Beats() == opponent:
		return Won
	default:
		return Lost
	}
}

// Outcome is the result of a round. Its numeric value is the outcome's
// score.
type Outcome int

const (
	Lost Outcome = 0
	Draw Outcome = 3
	Won  Outcome = 6
)

func (o Outcome) String() string {
	switch o {
	case Lost:
		return "Lost"
	case Draw:
		return "Draw"
	case Won:
		return "Won"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Value is the score for the outcome.
func (o Outcome) Value() int {
	return int(o)
}

// ShapeFor returns the one shape that reaches want against opponent.
func ShapeFor(opponent Shape, want Outcome) Shape {
	switch want {
	case Draw:
		return opponent
	case Lost:
		return opponent.Beats()
	case Won:
		// The shape that beats opponent is the one opponent's victim beats.
		return opponent.Beats().Beats()
	default:
		panic(fmt.Sprintf("day2: invalid outcome %d", int(want)))
	}
}
