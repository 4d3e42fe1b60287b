package formats

import (
	"strings"

	"github.com/vovakirdan/tui-classics/internal/games/sokoban/core"
)

// TextExtensions returns extensions of the plain text format.
func TextExtensions() []string {
	return []string{".txt", ".sok", ".xsb"}
}

// ParseText splits a plain text level file. Levels are separated by
// blank lines; a leading chunk of only ';' lines is the pack header and
// names the pack.
func ParseText(data []byte) Pack {
	var pack Pack
	for i, chunk := range core.SplitLevels(string(data)) {
		if headerOnly(chunk) {
			if i == 0 {
				pack.Name = strings.TrimSpace(strings.TrimPrefix(chunk[0], string(core.MetadataPrefix)))
			}
			continue
		}
		pack.Levels = append(pack.Levels, Level{Rows: chunk})
	}
	return pack
}

func headerOnly(lines []string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, string(core.MetadataPrefix)) {
			return false
		}
	}
	return true
}
