package main

import (
	"errors"
	"io"
	"os"
	"regexp"
	"strconv"
)

var (
	_seedsRegexp = regexp.MustCompile(`^seeds:((?: +\d+)*)$`)
	_rangeRegexp = regexp.MustCompile(`^(\d+) +(\d+) +(\d+)$`)
	_labelRegexp = regexp.MustCompile(`^([a-z]+-to-[a-z]+) map:$`)
)

func LoadAlmanac(name string) (*Almanac, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseAlmanac(file)
}

// ParseAlmanac reads a seeds line followed by the seven stage maps in
// pipeline order, each a label line and "dest src length" lines.
func ParseAlmanac(r io.Reader) (*Almanac, error) {
	lines, err := _readLines(r)
	if err != nil {
		return nil, err
	}

	b := NewAlmanacBuilder()
	i := 0
	fail := func(err error) (*Almanac, error) {
		if i >= len(lines) {
			return nil, &ParseError{Line: len(lines) + 1, Err: err}
		}
		return nil, &ParseError{Line: i + 1, Text: lines[i], Err: err}
	}

	if len(lines) == 0 {
		return fail(errors.New("missing seeds"))
	}
	m := _seedsRegexp.FindStringSubmatch(lines[i])
	if m == nil {
		return fail(errors.New("expected seeds"))
	}
	seeds, err := _parseInts(m[1])
	if err != nil {
		return fail(err)
	}
	if err := b.AddSeeds(seeds...); err != nil {
		return fail(err)
	}
	i++

	for _, stage := range Stages() {
		for i < len(lines) && lines[i] == "" {
			i++
		}
		if i >= len(lines) {
			return fail(errorf("missing %v map", stage))
		}
		m := _labelRegexp.FindStringSubmatch(lines[i])
		if m == nil || m[1] != stage.String() {
			return fail(errorf("expected %v map", stage))
		}
		i++

		for ; i < len(lines) && lines[i] != ""; i++ {
			m := _rangeRegexp.FindStringSubmatch(lines[i])
			if m == nil {
				return fail(errors.New("expected dest, src and length"))
			}
			var v [3]int64
			for j := range v {
				v[j], err = strconv.ParseInt(m[j+1], 10, 64)
				if err != nil {
					return fail(err)
				}
			}
			if err := b.AddRule(stage, NewRule(v[0], v[1], v[2])); err != nil {
				return fail(err)
			}
		}
	}

	for ; i < len(lines); i++ {
		if lines[i] != "" {
			return fail(errors.New("unexpected trailing input"))
		}
	}

	return b.Build()
}
