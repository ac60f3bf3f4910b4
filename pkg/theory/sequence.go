package theory

import "fmt"

// ParseNotes parses each string with ParseNote and stops at the first failure
func ParseNotes(strs []string) ([]Note, error) {
	notes := make([]Note, 0, len(strs))
	for i, s := range strs {
		n, err := ParseNote(s)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", i+1, err)
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Intervals returns the half-step gaps between consecutive notes
func Intervals(notes []Note) []int {
	if len(notes) < 2 {
		return []int{}
	}
	gaps := make([]int, len(notes)-1)
	for i := range gaps {
		gaps[i] = notes[i].DistHsteps(notes[i+1])
	}
	return gaps
}
