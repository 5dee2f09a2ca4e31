package gridgraph

import (
	"strings"

	"github.com/katalvlaran/pathscope/core"
)

// Cell glyphs used by Render.
const (
	GlyphEmpty   = ' ' // no vertex at this location (random grids)
	GlyphWall    = '#'
	GlyphDefault = '.'
	GlyphQueued  = 'o'
	GlyphVisited = '+'
	GlyphPath    = '*'
)

// Render returns one line per row showing walls and each vertex's status.
// Lines are joined with '\n' and have no trailing newline.
func (gg *GridGraph) Render() string {
	var b strings.Builder
	b.Grow(gg.Rows * (gg.Cols + 1))
	for y := 0; y < gg.Rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < gg.Cols; x++ {
			b.WriteRune(gg.glyph(Loc(x, y)))
		}
	}
	return b.String()
}

func (gg *GridGraph) glyph(l Location) rune {
	st, err := gg.Status(l)
	if err != nil {
		return GlyphEmpty
	}
	if gg.IsWall(l) {
		return GlyphWall
	}
	switch st {
	case core.StatusQueued:
		return GlyphQueued
	case core.StatusVisited:
		return GlyphVisited
	case core.StatusPath:
		return GlyphPath
	default:
		return GlyphDefault
	}
}
