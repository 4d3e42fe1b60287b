// Package levels loads Sokoban level packs from files.
// This package depends on core but core does not depend on levels.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-classics/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-classics/internal/games/sokoban/levels/formats"
)

//go:embed default.txt
var defaultPack []byte

// DefaultName is the name of the embedded level pack.
const DefaultName = "Classics"

// ErrNoLevels is returned when a pack parses to zero levels.
var ErrNoLevels = errors.New("levels: pack contains no levels")

// Set is an ordered, read-only sequence of level definitions.
type Set struct {
	Name   string
	Path   string // empty for the embedded pack
	Levels []core.Definition
}

// Len returns the number of levels.
func (s Set) Len() int {
	return len(s.Levels)
}

// Level returns a pointer to level i (0-based).
func (s Set) Level(i int) *core.Definition {
	return &s.Levels[i]
}

// Title returns the display name of level i, falling back to its number.
func (s Set) Title(i int) string {
	if name := s.Levels[i].Name; name != "" {
		return name
	}
	return fmt.Sprintf("Level %d", i+1)
}

// Loader parses level packs.
type Loader struct {
	// Strict rejects levels without exactly one player start instead of
	// starting the player at (0,0).
	Strict bool
}

// NewLoader creates a new level loader.
func NewLoader(strict bool) *Loader {
	return &Loader{Strict: strict}
}

// Load reads a level pack with the lenient parser.
func Load(path string) (Set, error) {
	return NewLoader(false).LoadFile(path)
}

// Default returns the embedded level pack.
func Default() Set {
	set, err := NewLoader(true).Parse(defaultPack, ".txt")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded pack: %v", err))
	}
	set.Name = DefaultName
	return set
}

// LoadFile loads a level pack, choosing the format by extension.
func (l *Loader) LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("levels: reading %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	set, err := l.Parse(data, ext)
	if err != nil {
		return Set{}, fmt.Errorf("levels: parsing %s: %w", path, err)
	}

	set.Path = path
	if set.Name == "" {
		set.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return set, nil
}

// Parse parses pack data in the format named by ext.
func (l *Loader) Parse(data []byte, ext string) (Set, error) {
	pack, err := parseByExtension(data, ext)
	if err != nil {
		return Set{}, err
	}

	parse := core.Parse
	if l.Strict {
		parse = core.ParseStrict
	}

	set := Set{Name: pack.Name}
	for i, lvl := range pack.Levels {
		def, err := parse(lvl.Lines())
		if err != nil {
			return Set{}, &core.ParseError{Index: i, Err: err}
		}
		set.Levels = append(set.Levels, def)
	}

	if len(set.Levels) == 0 {
		return Set{}, ErrNoLevels
	}
	return set, nil
}

// IsSupported reports whether a file has a known level pack extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Pack, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt", ".sok", ".xsb":
		return formats.ParseText(data), nil
	default:
		return formats.Pack{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}
