package vocabulary

import (
	"fmt"
	"strings"
)

// ProblemKind classifies an issue found in loaded entries.
type ProblemKind string

const (
	ProblemBlankOriginal ProblemKind = "blank original"
	ProblemDuplicate     ProblemKind = "duplicate"
)

// Problem is one issue at Index.
type Problem struct {
	Kind    ProblemKind
	Index   int
	Message string
}

// Validate reports blank originals and originals repeated case-insensitively.
// Loaded data is otherwise trusted, so this only runs on demand.
func Validate(entries []Entry) []Problem {
	var problems []Problem
	firstIndex := make(map[string]int, len(entries))
	for i, entry := range entries {
		original := strings.TrimSpace(entry.Original)
		if original == "" {
			problems = append(problems, Problem{
				Kind:    ProblemBlankOriginal,
				Index:   i,
				Message: "original is empty",
			})
			continue
		}

		key := strings.ToLower(original)
		if first, ok := firstIndex[key]; ok {
			problems = append(problems, Problem{
				Kind:    ProblemDuplicate,
				Index:   i,
				Message: fmt.Sprintf("%q duplicates entry %d", original, first),
			})
			continue
		}
		firstIndex[key] = i
	}
	return problems
}
