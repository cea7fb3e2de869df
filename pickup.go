package porkbelly

import "math"

// TileEmpty marks a cell with no tile.
const TileEmpty = -1

// PickupTile is the tile index of a tulip on the coin layer.
const PickupTile = 32

// TileGrid is a row-major grid of tile indices in world space.
type TileGrid struct {
	Cols, Rows   int
	TileW, TileH float64
	Data         []int
}

// NewTileGrid returns an empty grid.
func NewTileGrid(cols, rows int, tileW, tileH float64) *TileGrid {
	data := make([]int, cols*rows)
	for i := range data {
		data[i] = TileEmpty
	}
	return &TileGrid{Cols: cols, Rows: rows, TileW: tileW, TileH: tileH, Data: data}
}

// At returns the tile at (col, row), or TileEmpty outside the grid.
func (g *TileGrid) At(col, row int) int {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return TileEmpty
	}
	return g.Data[row*g.Cols+col]
}

// Set stores a tile index. Out-of-range cells are ignored.
func (g *TileGrid) Set(col, row, index int) {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return
	}
	g.Data[row*g.Cols+col] = index
}

// Solid reports whether (col, row) holds any tile.
func (g *TileGrid) Solid(col, row int) bool {
	return g.At(col, row) != TileEmpty
}

// CellRange returns the inclusive cell range overlapped by r.
func (g *TileGrid) CellRange(r Rect) (c0, r0, c1, r1 int) {
	c0 = int(math.Floor(r.X / g.TileW))
	r0 = int(math.Floor(r.Y / g.TileH))
	c1 = int(math.Floor((r.Right() - 1e-9) / g.TileW))
	r1 = int(math.Floor((r.Bottom() - 1e-9) / g.TileH))
	return
}

// Width returns the grid width in world pixels.
func (g *TileGrid) Width() float64 { return float64(g.Cols) * g.TileW }

// Height returns the grid height in world pixels.
func (g *TileGrid) Height() float64 { return float64(g.Rows) * g.TileH }

// Pickups tracks collectible tiles and the score.
type Pickups struct {
	grid  *TileGrid
	tile  int
	score int
}

// NewPickups collects tiles with index tile from grid. A nil grid yields no pickups.
func NewPickups(grid *TileGrid, tile int) *Pickups {
	return &Pickups{grid: grid, tile: tile}
}

// Grid returns the pickup layer, or nil.
func (p *Pickups) Grid() *TileGrid {
	return p.grid
}

// Score returns the number of pickups collected.
func (p *Pickups) Score() int {
	return p.score
}

// Collect removes every pickup tile overlapped by bounds and returns how many
// were taken.
func (p *Pickups) Collect(bounds Rect) int {
	if p.grid == nil {
		return 0
	}
	c0, r0, c1, r1 := p.grid.CellRange(bounds)
	taken := 0
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if p.grid.At(col, row) != p.tile {
				continue
			}
			p.grid.Set(col, row, TileEmpty)
			p.score++
			taken++
		}
	}
	return taken
}
