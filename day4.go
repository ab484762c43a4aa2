package main

import (
	"regexp"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var _cardRegexp = regexp.MustCompile(`^Card +(\d+):((?: +\d+)+) \|((?: +\d+)+)$`)

type Card struct {
	ID      int
	Winning map[int64]bool
	Mine    []int64
}

// Matches counts the distinct numbers of Mine that are winning.
func (c Card) Matches() int {
	seen := make(map[int64]bool, len(c.Mine))
	n := 0
	for _, v := range c.Mine {
		if c.Winning[v] && !seen[v] {
			n++
		}
		seen[v] = true
	}
	return n
}

func (c Card) Points() int {
	n := c.Matches()
	if n == 0 {
		return 0
	}
	return 1 << (n - 1)
}

// ParseCard reads a line like "Card 1: 41 48 83 | 83 86 6 31".
func ParseCard(line string) (Card, error) {
	m := _cardRegexp.FindStringSubmatch(line)
	if m == nil {
		return Card{}, errorf("not a card")
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Card{}, err
	}
	winning, err := _parseInts(m[2])
	if err != nil {
		return Card{}, err
	}
	mine, err := _parseInts(m[3])
	if err != nil {
		return Card{}, err
	}

	c := Card{ID: id, Winning: make(map[int64]bool, len(winning)), Mine: mine}
	for _, v := range winning {
		c.Winning[v] = true
	}
	return c, nil
}

func ParseCards(lines []string) ([]Card, error) {
	var cards []Card
	for i, line := range lines {
		if line == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Err: err}
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// PlayCards returns how many cards get played when card i with n matches
// wins one more copy of each of the next n cards.
func PlayCards(cards []Card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	played := 0
	for i, c := range cards {
		played += copies[i]
		n := c.Matches()
		for j := i + 1; j <= i+n && j < len(cards); j++ {
			copies[j] += copies[i]
		}
		log.Debug().Int("card", c.ID).Int("matches", n).Int("copies", copies[i]).Msg("played")
	}
	return played
}

func day4Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day4",
		Short: "Scratchcards",
		RunE: func(cmd *cobra.Command, args []string) error {
			return _solve(cmd, 4, _day4)
		},
	}
}

func _day4(cfg Config, r *Report) error {
	lines, err := _loadLines(cfg.Input)
	if err != nil {
		return err
	}
	cards, err := ParseCards(lines)
	if err != nil {
		return err
	}
	points := 0
	for _, c := range cards {
		points += c.Points()
	}
	r.Add("Sum of Points", int64(points))
	r.Add("Total Scratchcards Played", int64(PlayCards(cards)))
	return nil
}
