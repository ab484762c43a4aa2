package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	_gameRegexp  = regexp.MustCompile(`^Game (\d+): (.*)$`)
	_colorRegexp = regexp.MustCompile(`^(\d+) (red|green|blue)$`)
)

// Cubes counts cubes of each colour, either in one pull or as a limit.
type Cubes struct {
	Red, Green, Blue int
}

func (c Cubes) Within(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

type Game struct {
	ID    int
	Pulls []Cubes
}

func (g Game) Possible(limit Cubes) bool {
	for _, p := range g.Pulls {
		if !p.Within(limit) {
			return false
		}
	}
	return true
}

// Fewest is the smallest bag that makes every pull of g possible.
func (g Game) Fewest() Cubes {
	var c Cubes
	for _, p := range g.Pulls {
		c.Red = max(c.Red, p.Red)
		c.Green = max(c.Green, p.Green)
		c.Blue = max(c.Blue, p.Blue)
	}
	return c
}

func day2Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day2",
		Short: "Cube Conundrum",
		RunE: func(cmd *cobra.Command, args []string) error {
			return _solve(cmd, 2, _day2)
		},
	}
	cmd.Flags().Int("max-red", 12, "red cubes in the bag")
	cmd.Flags().Int("max-green", 13, "green cubes in the bag")
	cmd.Flags().Int("max-blue", 14, "blue cubes in the bag")
	return cmd
}

func _day2(cfg Config, r *Report) error {
	lines, err := _loadLines(cfg.Input)
	if err != nil {
		return err
	}
	games, err := ParseGames(lines)
	if err != nil {
		return err
	}

	limit := Cubes{cfg.MaxRed, cfg.MaxGreen, cfg.MaxBlue}
	log.Info().Interface("limit", limit).Msg("checking games")
	possible, power := 0, 0
	for _, g := range games {
		if g.Possible(limit) {
			possible += g.ID
		}
		power += g.Fewest().Power()
	}
	r.Add("Sum of Possible Game IDs", int64(possible))
	r.Add("Sum of Game Powers", int64(power))
	return nil
}

func ParseGames(lines []string) ([]Game, error) {
	var games []Game
	for i, line := range lines {
		if line == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Err: err}
		}
		games = append(games, g)
	}
	return games, nil
}

// ParseGame reads a line like "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line string) (Game, error) {
	m := _gameRegexp.FindStringSubmatch(line)
	if m == nil {
		return Game{}, errorf("not a game")
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Game{}, err
	}

	g := Game{ID: id}
	for _, pull := range strings.Split(m[2], "; ") {
		var c Cubes
		for _, color := range strings.Split(pull, ", ") {
			m := _colorRegexp.FindStringSubmatch(color)
			if m == nil {
				return Game{}, errorf("bad cube count %q", color)
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return Game{}, err
			}
			switch m[2] {
			case "red":
				c.Red = n
			case "green":
				c.Green = n
			case "blue":
				c.Blue = n
			}
		}
		g.Pulls = append(g.Pulls, c)
	}
	log.Debug().Int("game", g.ID).Interface("pulls", g.Pulls).Msg("parsed")
	return g, nil
}
