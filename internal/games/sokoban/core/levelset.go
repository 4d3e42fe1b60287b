package core

import (
	"fmt"
	"strings"
)

// ParseError reports a level that failed to parse inside a set.
type ParseError struct {
	Index int // 0-based position among the set's levels
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("level %d: %v", e.Index+1, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SplitLevels splits a multi-level text into groups of lines. Levels are
// separated by one or more blank or whitespace-only lines. CRLF line
// endings are accepted and source order is preserved.
func SplitLevels(raw string) [][]string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var chunks [][]string
	var cur []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				chunks = append(chunks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}
	return chunks
}

// ParseSet parses every level of a multi-level text.
func ParseSet(raw string) ([]Definition, error) {
	return parseSet(raw, Parse)
}

// ParseSetStrict is ParseSet with ParseStrict applied to each level.
func ParseSetStrict(raw string) ([]Definition, error) {
	return parseSet(raw, ParseStrict)
}

func parseSet(raw string, parse func([]string) (Definition, error)) ([]Definition, error) {
	var defs []Definition
	for _, chunk := range SplitLevels(raw) {
		if metadataOnly(chunk) {
			continue
		}
		def, err := parse(chunk)
		if err != nil {
			return nil, &ParseError{Index: len(defs), Err: err}
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// metadataOnly reports whether a chunk has no map rows, such as a file
// header comment.
func metadataOnly(lines []string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, string(MetadataPrefix)) {
			return false
		}
	}
	return true
}
