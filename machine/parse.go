package machine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/matrix"
)

// ErrBadMachine is returned (wrapped with positional context) when a line
// does not follow the [diagram] (buttons...) {targets} format.
var ErrBadMachine = errors.New("machine: malformed machine description")

// Parse reads machine descriptions line by line and assembles one
// lp.System per non-blank line.
//
// Errors: ErrBadMachine (wrapped with the 1-based line number) on the
// first malformed line; reader errors are passed through.
//
// Complexity: O(total input) parsing + O(m·n) per system assembly.
func Parse(r io.Reader) ([]*lp.System, error) {
	var (
		systems []*lp.System
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sys, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("machine: line %d: %w", lineNo, err)
		}
		systems = append(systems, sys)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return systems, nil
}

// ParseLine parses a single machine description.
//
// Stage 1 (Diagram): require a leading [...] block and skip it.
// Stage 2 (Groups): scan (…) button groups, then one {…} target group.
// Stage 3 (Assemble): build A (m×n indicator), b (targets), c (ones).
func ParseLine(line string) (*lp.System, error) {
	s := strings.TrimSpace(line)

	// Stage 1: diagram block.
	if !strings.HasPrefix(s, "[") {
		return nil, fmt.Errorf("%w: missing diagram", ErrBadMachine)
	}
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return nil, fmt.Errorf("%w: unterminated diagram", ErrBadMachine)
	}
	s = s[end+1:]

	// Stage 2: button groups and the target group.
	var (
		buttons [][]int
		targets []float64
	)
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			break
		}
		switch s[0] {
		case '(':
			body, rest, err := delimited(s, '(', ')')
			if err != nil {
				return nil, err
			}
			if targets != nil {
				return nil, fmt.Errorf("%w: button group after targets", ErrBadMachine)
			}
			rows, err := parseIntList(body)
			if err != nil {
				return nil, err
			}
			buttons = append(buttons, rows)
			s = rest
		case '{':
			body, rest, err := delimited(s, '{', '}')
			if err != nil {
				return nil, err
			}
			if targets != nil {
				return nil, fmt.Errorf("%w: duplicate target group", ErrBadMachine)
			}
			vals, err := parseIntList(body)
			if err != nil {
				return nil, err
			}
			targets = make([]float64, len(vals))
			for i, v := range vals {
				targets[i] = float64(v)
			}
			s = rest
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrBadMachine, s[0])
		}
	}
	if len(buttons) == 0 || len(targets) == 0 {
		return nil, fmt.Errorf("%w: need at least one button and one target", ErrBadMachine)
	}

	// Stage 3: assemble the indicator system.
	var (
		m      = len(targets)
		n      = len(buttons)
		a, err = matrix.NewDense(m, n)
	)
	if err != nil {
		return nil, err
	}
	for col, rows := range buttons {
		for _, row := range rows {
			if row < m { // out-of-range rows are ignored by the format
				if serr := a.Set(row, col, 1); serr != nil {
					return nil, serr
				}
			}
		}
	}
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1 // one press, one unit of cost
	}

	return lp.NewSystem(a, targets, ones)
}

// delimited slices s as open body closing and returns body plus the rest.
// s[0] is already known to equal open.
func delimited(s string, open, closing byte) (body, rest string, err error) {
	end := strings.IndexByte(s, closing)
	if end < 0 {
		return "", "", fmt.Errorf("%w: unterminated %q group", ErrBadMachine, open)
	}

	return s[1:end], s[end+1:], nil
}

// parseIntList parses a comma-separated list of non-negative integers;
// an empty body yields an empty list (a button may press nothing).
func parseIntList(body string) ([]int, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: bad integer %q", ErrBadMachine, p)
		}
		out = append(out, v)
	}

	return out, nil
}
