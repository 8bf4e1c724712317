// Package rapidapi models WordsAPI responses served through RapidAPI.
// https://rapidapi.com/dpventures/api/wordsapi
package rapidapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Response struct {
	Word          string        `json:"word"`
	Syllables     Syllable      `json:"syllables"`
	Frequency     float64       `json:"frequency"`
	Pronunciation Pronunciation `json:"pronunciation"`
	Results       []Result      `json:"results"`
}

type Syllable struct {
	Count int      `json:"count"`
	List  []string `json:"list"`
}

type Pronunciation struct {
	All string `json:"all"`
}

func (p *Pronunciation) UnmarshalJSON(data []byte) error {
	// pronunciation is either {"all": "..."} or a bare string
	if len(data) > 0 && data[0] == '{' {
		var all struct {
			All string `json:"all"`
		}
		if err := json.Unmarshal(data, &all); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		p.All = all.All
		return nil
	}

	var all string
	if err := json.Unmarshal(data, &all); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	p.All = all
	return nil
}

type Result struct {
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Synonyms     []string `json:"synonyms"`
	Examples     []string `json:"examples"`
}

// Examples collects example sentences across results, up to limit.
// A non-positive limit returns all of them.
func (r Response) Examples(limit int) []string {
	var examples []string
	for _, result := range r.Results {
		for _, example := range result.Examples {
			if limit > 0 && len(examples) >= limit {
				return examples
			}
			examples = append(examples, example)
		}
	}
	return examples
}

// Summary renders the response as one definition per line.
func (r Response) Summary() string {
	builder := strings.Builder{}
	if r.Pronunciation.All != "" {
		builder.WriteString(fmt.Sprintf("%s: /%s/\n", r.Word, r.Pronunciation.All))
	} else {
		builder.WriteString(r.Word + "\n")
	}
	for i, result := range r.Results {
		builder.WriteString(fmt.Sprintf("%d: [%s] %s", i+1, result.PartOfSpeech, result.Definition))
		if len(result.Synonyms) > 0 {
			builder.WriteString(" (" + strings.Join(result.Synonyms, ", ") + ")")
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
