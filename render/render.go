package render

import (
	"errors"
	"strings"

	"github.com/katalvlaran/nonogrid/grid"
)

// Sentinel errors for render operations.
var (
	// ErrNilGrid indicates a nil grid was passed.
	ErrNilGrid = errors.New("render: grid is nil")
	// ErrUnresolved indicates Bitmap was asked for a grid that still has
	// Unknown cells; export a finished solve instead.
	ErrUnresolved = errors.New("render: grid has unresolved cells")
)

// Terminal glyphs, one per cell state.
const (
	glyphFilled  = '█'
	glyphEmpty   = '░'
	glyphUnknown = '?'
)

// Bitmap converts a fully determined grid into row-major 0/1 rows:
// 0=Empty, 1=Filled. Returns ErrUnresolved if any cell is Unknown.
// Complexity: O(rows×cols).
func Bitmap(g *grid.Grid) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	out := make([][]int, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		out[r] = make([]int, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			s, err := g.At(r, c)
			if err != nil {
				return nil, err
			}
			switch s {
			case grid.Filled:
				out[r][c] = 1
			case grid.Empty:
				out[r][c] = 0
			default:
				return nil, ErrUnresolved
			}
		}
	}

	return out, nil
}

// Render draws the grid as text, one line per row: '█' Filled,
// '░' Empty, '?' Unknown. Partial grids render fine, which makes this
// the debug view of a stalled position as well as the final picture.
// Complexity: O(rows×cols).
func Render(g *grid.Grid) string {
	if g == nil {
		return ""
	}

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Cols(); c++ {
			s, err := g.At(r, c)
			if err != nil {
				continue
			}
			switch s {
			case grid.Filled:
				b.WriteRune(glyphFilled)
			case grid.Empty:
				b.WriteRune(glyphEmpty)
			default:
				b.WriteRune(glyphUnknown)
			}
		}
	}

	return b.String()
}
