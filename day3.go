package main

import (
	"regexp"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	_numberRegexp = regexp.MustCompile(`\d+`)
	_symbolRegexp = regexp.MustCompile(`[^.\d]`)
	_rowRegexp    = regexp.MustCompile(`^[^\s]*$`)
)

// Part is a number or symbol of the schematic, spanning Cols of its row.
type Part struct {
	Value  int
	Symbol byte
	Cols   Range
}

type Schematic struct {
	Width   int
	Numbers [][]Part
	Symbols [][]Part
}

func ParseSchematic(lines []string) (*Schematic, error) {
	s := &Schematic{Width: -1}
	for i, line := range lines {
		if line == "" {
			continue
		}
		if !_rowRegexp.MatchString(line) {
			return nil, &ParseError{Line: i + 1, Text: line, Err: errorf("unexpected whitespace")}
		}
		if s.Width < 0 {
			s.Width = len(line)
		} else if s.Width != len(line) {
			return nil, &ParseError{Line: i + 1, Text: line, Err: errorf("width %v does not match %v", len(line), s.Width)}
		}

		var numbers, symbols []Part
		for _, loc := range _numberRegexp.FindAllStringIndex(line, -1) {
			v, err := strconv.Atoi(line[loc[0]:loc[1]])
			if err != nil {
				return nil, &ParseError{Line: i + 1, Text: line, Err: err}
			}
			numbers = append(numbers, Part{Value: v, Cols: Range{int64(loc[0]), int64(loc[1])}})
		}
		for _, loc := range _symbolRegexp.FindAllStringIndex(line, -1) {
			symbols = append(symbols, Part{Symbol: line[loc[0]], Cols: Range{int64(loc[0]), int64(loc[1])}})
		}
		s.Numbers = append(s.Numbers, numbers)
		s.Symbols = append(s.Symbols, symbols)
	}
	return s, nil
}

// adjacent returns the parts of rows around row y touching p, diagonals
// included.
func (s *Schematic) adjacent(rows [][]Part, p Part, y int) []Part {
	block := Range{p.Cols.Low - 1, p.Cols.High + 1}
	var found []Part
	for row := max(0, y-1); row <= min(len(rows)-1, y+1); row++ {
		for _, q := range rows[row] {
			if _, ok := block.Intersect(q.Cols); ok {
				found = append(found, q)
			}
		}
	}
	return found
}

// PartNumbers are the numbers next to at least one symbol.
func (s *Schematic) PartNumbers() []int {
	var parts []int
	for y, row := range s.Numbers {
		for _, n := range row {
			if len(s.adjacent(s.Symbols, n, y)) > 0 {
				parts = append(parts, n.Value)
			} else {
				log.Debug().Int("number", n.Value).Int("row", y).Msg("not a part number")
			}
		}
	}
	return parts
}

// GearRatios multiplies the two numbers around every '*' that touches
// exactly two numbers.
func (s *Schematic) GearRatios() []int {
	var ratios []int
	for y, row := range s.Symbols {
		for _, g := range row {
			if g.Symbol != '*' {
				continue
			}
			numbers := s.adjacent(s.Numbers, g, y)
			if len(numbers) != 2 {
				continue
			}
			ratios = append(ratios, numbers[0].Value*numbers[1].Value)
		}
	}
	return ratios
}

func day3Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day3",
		Short: "Gear Ratios",
		RunE: func(cmd *cobra.Command, args []string) error {
			return _solve(cmd, 3, _day3)
		},
	}
}

func _day3(cfg Config, r *Report) error {
	lines, err := _loadLines(cfg.Input)
	if err != nil {
		return err
	}
	s, err := ParseSchematic(lines)
	if err != nil {
		return err
	}
	r.Add("Sum of Part Numbers", int64(_sum(s.PartNumbers())))
	r.Add("Sum of Gear Ratios", int64(_sum(s.GearRatios())))
	return nil
}
