package querygen

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadQueries parses a query file. Comment lines starting with '#' and blank
// lines are skipped.
func ReadQueries(r io.Reader) ([]Pair, error) {
	br := bufio.NewScanner(r)
	queries := make([]Pair, 0)

	lineNo := 0
	for br.Scan() {
		lineNo++
		line := strings.TrimSpace(br.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ff := strings.Fields(line)
		if len(ff) != 2 {
			return nil, fmt.Errorf("line %d: expected \"source destination\", got %q", lineNo, line)
		}
		s, err := strconv.Atoi(ff[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid source: %w", lineNo, err)
		}
		t, err := strconv.Atoi(ff[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid destination: %w", lineNo, err)
		}
		queries = append(queries, Pair{Source: s, Destination: t})
	}
	if err := br.Err(); err != nil {
		return nil, err
	}
	return queries, nil
}
