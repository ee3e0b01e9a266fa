package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineLength = 16 * 1024 * 1024

// WriteGrid stores g in its textual form in the given file.
func WriteGrid(g *Grid, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(g.AsString()); err != nil {
		return err
	}
	return writer.Flush()
}

func NewGridFromString(s string) (*Grid, error) {
	return NewGridFromReader(strings.NewReader(s))
}

func NewGridFromFile(filename string) (*Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	g, err := NewGridFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return g, nil
}

// NewGridFromReader parses a grid with one row per line. '0' marks a free cell, '1' a
// blocked one and ',' may separate cells. Blank lines are skipped.
func NewGridFromReader(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	rows := make([][]Cell, 0)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if len(line) < 1 {
			// skip empty lines
			continue
		}

		row := make([]Cell, 0, len(line))
		for column, r := range line {
			switch r {
			case '0':
				row = append(row, Free)
			case '1':
				row = append(row, Blocked)
			case ',':
				continue
			default:
				return nil, fmt.Errorf("line %d, column %d: %q: %w", lineNumber, column+1, r, ErrInvalidCharacter)
			}
		}
		if len(row) == 0 {
			// a line of separators only
			continue
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return NewGrid(rows)
}
