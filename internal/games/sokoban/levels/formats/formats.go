// Package formats provides pluggable Sokoban level file parsers.
// Parsers only split files into raw level rows; turning rows into
// playable definitions is left to the core parser.
package formats

// Level is one level as read from a file, before parsing.
type Level struct {
	Name string
	Rows []string
}

// Lines returns the level in text form with the name as metadata,
// ready for core.Parse.
func (l Level) Lines() []string {
	if l.Name == "" {
		return l.Rows
	}
	lines := make([]string, 0, len(l.Rows)+1)
	lines = append(lines, "; "+l.Name)
	return append(lines, l.Rows...)
}

// Pack is an ordered collection of levels from one file.
type Pack struct {
	Name   string
	Levels []Level
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return append(TextExtensions(), YAMLExtensions()...)
}
