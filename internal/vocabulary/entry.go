// Package vocabulary provides the word entry model, the ordered entry store,
// and the cursor used to browse it.
package vocabulary

import "strings"

const exampleBullet = "• "

// Entry is one vocabulary record.
// Original is the lookup key and is compared case-insensitively.
type Entry struct {
	Original      string `json:"original" yaml:"original" db:"original"`
	Translation   string `json:"translation" yaml:"translation" db:"translation"`
	Transcription string `json:"transcription" yaml:"transcription" db:"transcription"`
	Examples      string `json:"examples" yaml:"examples" db:"examples"`
}

// ExampleLines returns the example sentences, one per line of Examples.
func (e Entry) ExampleLines() []string {
	if e.Examples == "" {
		return nil
	}
	return strings.Split(e.Examples, "\n")
}

// BulletedExamples renders every example line with a leading bullet.
func (e Entry) BulletedExamples() string {
	lines := e.ExampleLines()
	for i, line := range lines {
		lines[i] = exampleBullet + line
	}
	return strings.Join(lines, "\n")
}
