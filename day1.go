package main

import (
	"regexp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const _digitWords = `one|two|three|four|five|six|seven|eight|nine`

var (
	_firstDigit     = regexp.MustCompile(`\d`)
	_lastDigit      = regexp.MustCompile(`.*(\d)`)
	_firstDigitWord = regexp.MustCompile(`\d|` + _digitWords)
	_lastDigitWord  = regexp.MustCompile(`.*(\d|` + _digitWords + `)`)
)

var _digitValues = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

func day1Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day1",
		Short: "Trebuchet?!",
		RunE: func(cmd *cobra.Command, args []string) error {
			return _solve(cmd, 1, _day1)
		},
	}
}

func _day1(cfg Config, r *Report) error {
	lines, err := _loadLines(cfg.Input)
	if err != nil {
		return err
	}
	r.Add("Sum of Calibration Values", int64(SumCalibrationValues(lines, false)))
	r.Add("Sum of Calibration Values With Words", int64(SumCalibrationValues(lines, true)))
	return nil
}

// CalibrationValue joins the first and last digit of line into a two
// digit number. With words, spelled-out digits count too; they may
// overlap, as in "eightwo". ok is false when line holds no digit.
func CalibrationValue(line string, words bool) (value int, ok bool) {
	first, last := _firstDigit, _lastDigit
	if words {
		first, last = _firstDigitWord, _lastDigitWord
	}
	f := first.FindString(line)
	m := last.FindStringSubmatch(line)
	if f == "" || m == nil {
		return 0, false
	}
	return _digitValue(f)*10 + _digitValue(m[1]), true
}

func _digitValue(s string) int {
	if v, ok := _digitValues[s]; ok {
		return v
	}
	return int(s[0] - '0')
}

func SumCalibrationValues(lines []string, words bool) int {
	total := 0
	for i, line := range lines {
		value, ok := CalibrationValue(line, words)
		if !ok {
			log.Debug().Int("line", i+1).Str("text", line).Msg("no digit")
			continue
		}
		total += value
	}
	return total
}
