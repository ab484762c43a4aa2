package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const _maxLineSize = 64 * 1024

func errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

func fprintf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format, a...)
}

func sprintf(format string, a ...interface{}) string {
	return fmt.Sprintf(format, a...)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

// ParseError reports the input line a solver could not make sense of.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return sprintf("failed to parse line %v: %q: %v", e.Line, e.Text, e.Err)
	}
	return sprintf("failed to parse line %v: %q", e.Line, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// _loadLines reads name fully, with trailing whitespace trimmed from
// every line.
func _loadLines(name string) (lines []string, err error) {
	file, err := os.Open(name)
	if err != nil {
		return
	}
	defer file.Close()
	return _readLines(file)
}

func _readLines(r io.Reader) (lines []string, err error) {
	s := bufio.NewScanner(r)
	s.Buffer(nil, _maxLineSize)
	for s.Scan() {
		lines = append(lines, strings.TrimRightFunc(s.Text(), func(r rune) bool {
			return r == ' ' || r == '\t' || r == '\r'
		}))
	}
	err = s.Err()
	return
}

// _parseInts parses whitespace-separated integers.
func _parseInts(s string) ([]int64, error) {
	fields := strings.Fields(s)
	values := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func _sum(values []int) (total int) {
	for _, v := range values {
		total += v
	}
	return
}
