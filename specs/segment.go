package specs

import "fmt"

// NewSegment composes the three-digit segment code from individual scores.
//
// The code is the scores concatenated as single digits in r, f, m order with
// no separators: scores 5,5,5 produce "555". Each score must be in [1,5];
// anything else is a construction bug upstream and is rejected.
func NewSegment(rScore, fScore, mScore int) (string, error) {
	for _, s := range []int{rScore, fScore, mScore} {
		if s < 1 || s > 5 {
			return "", fmt.Errorf("segment: score %d out of range [1,5]", s)
		}
	}
	return fmt.Sprintf("%d%d%d", rScore, fScore, mScore), nil
}

// ParseSegment splits a segment code back into its three scores.
//
// Inverse of NewSegment: for any valid code, composing the parsed scores
// reproduces the code exactly. Returns error if the code is not exactly
// three digits in [1,5].
func ParseSegment(segment string) (rScore, fScore, mScore int, err error) {
	if len(segment) != 3 {
		return 0, 0, 0, fmt.Errorf("segment %q: want exactly 3 digits", segment)
	}
	scores := make([]int, 3)
	for i, c := range segment {
		if c < '1' || c > '5' {
			return 0, 0, 0, fmt.Errorf("segment %q: digit %q out of range [1,5]", segment, c)
		}
		scores[i] = int(c - '0')
	}
	return scores[0], scores[1], scores[2], nil
}
