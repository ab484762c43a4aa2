package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitLines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestCalibrationValue(t *testing.T) {
	tests := []struct {
		line  string
		words bool
		want  int
		ok    bool
	}{
		{"1abc2", false, 12, true},
		{"treb7uchet", false, 77, true},
		{"eightwothree", false, 0, false},
		{"eightwothree", true, 83, true},
		{"zoneight234", true, 14, true},
		{"xtwone3four", true, 24, true},
		{"oneight", true, 18, true},
	}
	for _, tt := range tests {
		got, ok := CalibrationValue(tt.line, tt.words)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestSumCalibrationValues(t *testing.T) {
	assert.Equal(t, 142, SumCalibrationValues(splitLines(`
1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`), false))
	assert.Equal(t, 281, SumCalibrationValues(splitLines(`
two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`), true))
}

const _sampleGames = `
Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestGames(t *testing.T) {
	games, err := ParseGames(splitLines(_sampleGames))
	require.NoError(t, err)
	require.Len(t, games, 5)
	assert.Equal(t, Game{1, []Cubes{{4, 0, 3}, {1, 2, 6}, {0, 2, 0}}}, games[0])

	limit := Cubes{12, 13, 14}
	possible, power := 0, 0
	for _, g := range games {
		if g.Possible(limit) {
			possible += g.ID
		}
		power += g.Fewest().Power()
	}
	assert.Equal(t, 8, possible)
	assert.Equal(t, 2286, power)
}

func TestParseGameErrors(t *testing.T) {
	_, err := ParseGames([]string{"Game 1: 3 blue", "Game 2: 3 purple"})
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)

	_, err = ParseGame("Round 1: 3 blue")
	assert.Error(t, err)
}

const _sampleSchematic = `
467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestSchematic(t *testing.T) {
	s, err := ParseSchematic(splitLines(_sampleSchematic))
	require.NoError(t, err)
	assert.Equal(t, 10, s.Width)

	parts := s.PartNumbers()
	assert.NotContains(t, parts, 114)
	assert.NotContains(t, parts, 58)
	assert.Equal(t, 4361, _sum(parts))
	assert.Equal(t, []int{16345, 451490}, s.GearRatios())
	assert.Equal(t, 467835, _sum(s.GearRatios()))
}

func TestParseSchematicWidth(t *testing.T) {
	_, err := ParseSchematic([]string{"..1..", "..*.", "....."})
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
}

const _sampleCards = `
Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestCards(t *testing.T) {
	cards, err := ParseCards(splitLines(_sampleCards))
	require.NoError(t, err)
	require.Len(t, cards, 6)

	var points []int
	for _, c := range cards {
		points = append(points, c.Points())
	}
	assert.Equal(t, []int{8, 2, 2, 1, 0, 0}, points)
	assert.Equal(t, 13, _sum(points))
	assert.Equal(t, 30, PlayCards(cards))
}

func TestCardRepeatedNumbers(t *testing.T) {
	c, err := ParseCard("Card 1: 5 6 | 5 5 7")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Matches())
	assert.Equal(t, 1, c.Points())
}

func TestParseCardErrors(t *testing.T) {
	_, err := ParseCards([]string{"Card 1: 1 2 | 3 4", "Card 2: 1 2 3 4"})
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
}
