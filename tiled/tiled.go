// Package tiled loads maps saved by the Tiled editor in its JSON format and
// converts tile layers into porkbelly tile grids.
//
// Only orthogonal tile layers are read. Object and image layers are kept in
// Layers but carry no tile data.
package tiled

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Raymond-exe/porkbelly"
)

// GID flag bits set by Tiled on flipped or rotated tiles.
const (
	flipH    uint32 = 1 << 31
	flipV    uint32 = 1 << 30
	flipD    uint32 = 1 << 29
	flagMask        = flipH | flipV | flipD
)

// Map is a decoded Tiled map.
type Map struct {
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	TileWidth   int       `json:"tilewidth"`
	TileHeight  int       `json:"tileheight"`
	Orientation string    `json:"orientation"`
	Infinite    bool      `json:"infinite"`
	Layers      []*Layer  `json:"layers"`
	Tilesets    []Tileset `json:"tilesets"`
}

// Layer is one map layer. Tiles holds the decoded GIDs, flip flags removed,
// for tile layers.
type Layer struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Visible     bool            `json:"visible"`
	Opacity     float64         `json:"opacity"`
	Encoding    string          `json:"encoding"`
	Compression string          `json:"compression"`
	Data        json.RawMessage `json:"data"`

	Tiles []uint32 `json:"-"`
}

// Tileset describes one embedded tileset image.
type Tileset struct {
	FirstGID    int    `json:"firstgid"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	ImageWidth  int    `json:"imagewidth"`
	ImageHeight int    `json:"imageheight"`
	TileWidth   int    `json:"tilewidth"`
	TileHeight  int    `json:"tileheight"`
	TileCount   int    `json:"tilecount"`
	Columns     int    `json:"columns"`
	Margin      int    `json:"margin"`
	Spacing     int    `json:"spacing"`
}

// Load reads and parses the map at path.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tiled: read map: %w", err)
	}
	return Parse(data)
}

// Parse decodes a Tiled JSON map and every tile layer's data.
func Parse(data []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("tiled: parse map: %w", err)
	}
	if m.Infinite {
		return nil, errors.New("tiled: infinite maps are not supported")
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("tiled: invalid tile size %dx%d", m.TileWidth, m.TileHeight)
	}
	for _, l := range m.Layers {
		if l.Type != "tilelayer" {
			continue
		}
		tiles, err := decodeLayer(l)
		if err != nil {
			return nil, fmt.Errorf("tiled: layer %q: %w", l.Name, err)
		}
		if len(tiles) != l.Width*l.Height {
			return nil, fmt.Errorf("tiled: layer %q: got %d tiles, want %dx%d", l.Name, len(tiles), l.Width, l.Height)
		}
		l.Tiles = tiles
	}
	return &m, nil
}

// Layer returns the layer with the given name.
func (m *Map) Layer(name string) (*Layer, bool) {
	for _, l := range m.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// Tileset returns the tileset with the given name.
func (m *Map) Tileset(name string) (*Tileset, bool) {
	for i := range m.Tilesets {
		if m.Tilesets[i].Name == name {
			return &m.Tilesets[i], true
		}
	}
	return nil, false
}

// Grid converts the named tile layer into a grid scaled by scale. Cells keep
// their GID; empty cells become porkbelly.TileEmpty.
func (m *Map) Grid(name string, scale float64) (*porkbelly.TileGrid, error) {
	l, ok := m.Layer(name)
	if !ok {
		return nil, fmt.Errorf("tiled: no layer %q", name)
	}
	if l.Type != "tilelayer" {
		return nil, fmt.Errorf("tiled: layer %q is a %s, not a tile layer", name, l.Type)
	}
	if scale <= 0 {
		scale = 1
	}
	g := porkbelly.NewTileGrid(l.Width, l.Height, float64(m.TileWidth)*scale, float64(m.TileHeight)*scale)
	for i, gid := range l.Tiles {
		if gid != 0 {
			g.Data[i] = int(gid)
		}
	}
	return g, nil
}

// Source returns the pixel rectangle of gid within the tileset image.
func (ts *Tileset) Source(gid int) (x, y, w, h int, ok bool) {
	local := gid - ts.FirstGID
	if local < 0 || ts.Columns <= 0 || (ts.TileCount > 0 && local >= ts.TileCount) {
		return 0, 0, 0, 0, false
	}
	col, row := local%ts.Columns, local/ts.Columns
	x = ts.Margin + col*(ts.TileWidth+ts.Spacing)
	y = ts.Margin + row*(ts.TileHeight+ts.Spacing)
	return x, y, ts.TileWidth, ts.TileHeight, true
}

func decodeLayer(l *Layer) ([]uint32, error) {
	if len(l.Data) == 0 {
		return nil, errors.New("no data")
	}
	switch l.Encoding {
	case "", "csv":
		var raw []uint32
		if err := json.Unmarshal(l.Data, &raw); err != nil {
			return nil, fmt.Errorf("decode data: %w", err)
		}
		for i := range raw {
			raw[i] &^= flagMask
		}
		return raw, nil
	case "base64":
		var s string
		if err := json.Unmarshal(l.Data, &s); err != nil {
			return nil, fmt.Errorf("decode data: %w", err)
		}
		buf, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("decode base64: %w", err)
		}
		buf, err = decompress(buf, l.Compression)
		if err != nil {
			return nil, err
		}
		if len(buf)%4 != 0 {
			return nil, fmt.Errorf("data length %d is not a multiple of 4", len(buf))
		}
		tiles := make([]uint32, len(buf)/4)
		for i := range tiles {
			tiles[i] = binary.LittleEndian.Uint32(buf[i*4:]) &^ flagMask
		}
		return tiles, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", l.Encoding)
	}
}

func decompress(buf []byte, compression string) ([]byte, error) {
	var r io.ReadCloser
	var err error
	switch compression {
	case "":
		return buf, nil
	case "zlib":
		r, err = zlib.NewReader(bytes.NewReader(buf))
	case "gzip":
		r, err = gzip.NewReader(bytes.NewReader(buf))
	default:
		return nil, fmt.Errorf("unsupported compression %q", compression)
	}
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", compression, err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", compression, err)
	}
	return out, nil
}
