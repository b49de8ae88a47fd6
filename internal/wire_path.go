package internal

import (
	"strconv"
	"strings"

	"crosswarped.com/wires/pkg/primitives"
)

// ParseWires splits the puzzle input into one segment list per line.
//
// Empty input yields no wires. A blank line between two definitions still counts
// as a wire, just one without segments.
func ParseWires(input string) [][]primitives.Segment {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	lines := strings.Split(input, "\n")
	wires := make([][]primitives.Segment, len(lines))
	for i, line := range lines {
		wires[i] = ParsePath(strings.TrimRight(line, "\r"))
	}
	return wires
}

// ParsePath converts a comma-separated move list such as "R8,U5,L5,D3" into the
// segments of a wire starting at the origin.
//
// Moves that cannot be read are skipped rather than reported: a missing or
// negative distance, or a letter other than R, L, U or D. Anything after the
// leading digits of a distance is ignored.
func ParsePath(definition string) []primitives.Segment {
	var segments []primitives.Segment
	x, y, steps := 0, 0, 0

	for move := range strings.SplitSeq(definition, ",") {
		facing, dist, ok := parseMove(move)
		if !ok {
			continue
		}

		dx, dy := facing.Delta()
		start := primitives.NewPoint(x, y)
		x += dx * dist
		y += dy * dist

		segments = append(segments, primitives.Segment{
			Facing:    facing,
			Start:     start,
			End:       primitives.NewPoint(x, y),
			StepStart: steps,
			StepEnd:   steps + dist,
		})
		steps += dist
	}

	return segments
}

func parseMove(move string) (primitives.Facing, int, bool) {
	move = strings.TrimSpace(move)
	if move == "" {
		return 0, 0, false
	}

	facing, ok := primitives.ParseFacing(move[0])
	if !ok {
		return 0, 0, false
	}

	digits := move[1:]
	end := strings.IndexFunc(digits, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if end >= 0 {
		digits = digits[:end]
	}
	if digits == "" {
		return 0, 0, false
	}

	dist, err := strconv.Atoi(digits)
	if err != nil {
		// Out of range for int.
		return 0, 0, false
	}
	return facing, dist, true
}
