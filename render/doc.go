// Package render exports a solved (or partially solved) nonogram grid
// in the two shapes callers consume: a 0/1 bitmap for programmatic use
// and a glyph string for terminals.
//
// What:
//
//   - Bitmap: row-major [][]int with 0=Empty, 1=Filled; refuses grids
//     that still contain Unknown cells.
//   - Render: one text row per grid row, '█' for Filled, '░' for Empty,
//     '?' for Unknown, joined by newlines. Purely presentational; the
//     solving engine never reads it back.
//
// Why:
//
//   - Rendering is a bijection on cell states, so a rendered grid can be
//     re-read into the same bitmap — handy for golden tests and debug
//     dumps of half-solved positions.
//
// Complexity: O(rows×cols) for both operations.
//
// Errors:
//
//   - ErrNilGrid: a nil *grid.Grid was passed.
//   - ErrUnresolved: Bitmap on a grid with Unknown cells.
package render
