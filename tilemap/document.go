package tilemap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/automoto/summit/gamemath"
)

var (
	// ErrNotFound is returned when a level document does not exist.
	ErrNotFound = errors.New("level document not found")
	// ErrMalformedDocument is returned when a level document fails schema checks.
	ErrMalformedDocument = errors.New("malformed level document")
)

type tileRecord struct {
	Type    string `json:"type"`
	Variant int    `json:"variant"`
	Pos     [2]int `json:"pos"`
}

type offgridRecord struct {
	Type    string     `json:"type"`
	Variant int        `json:"variant"`
	Pos     [2]float64 `json:"pos"`
}

// document is the persisted level layout.
type document struct {
	Tilemap  map[string]tileRecord `json:"tilemap"`
	TileSize *int                  `json:"tile_size"`
	Offgrid  []offgridRecord       `json:"offgrid"`
}

func coordKey(c Coord) string {
	return strconv.Itoa(c.X) + ";" + strconv.Itoa(c.Y)
}

func parseCoordKey(key string) (Coord, error) {
	xs, ys, ok := strings.Cut(key, ";")
	if !ok {
		return Coord{}, fmt.Errorf("key %q: %w", key, ErrMalformedDocument)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil {
		return Coord{}, fmt.Errorf("key %q: %w", key, ErrMalformedDocument)
	}
	return Coord{X: x, Y: y}, nil
}

// MarshalDocument encodes the map as a level document.
func (tm *Tilemap) MarshalDocument() ([]byte, error) {
	size := tm.TileSize
	doc := document{
		Tilemap:  make(map[string]tileRecord, len(tm.tiles)),
		TileSize: &size,
		Offgrid:  make([]offgridRecord, 0, len(tm.offgrid)),
	}
	for c, t := range tm.tiles {
		doc.Tilemap[coordKey(c)] = tileRecord{
			Type:    string(t.Kind),
			Variant: t.Variant,
			Pos:     [2]int{c.X, c.Y},
		}
	}
	for _, t := range tm.offgrid {
		doc.Offgrid = append(doc.Offgrid, offgridRecord{
			Type:    string(t.Kind),
			Variant: t.Variant,
			Pos:     [2]float64{t.Pos.X, t.Pos.Y},
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode level document: %w", err)
	}
	return data, nil
}

// UnmarshalDocument decodes a level document into a new Tilemap. Any schema
// violation yields ErrMalformedDocument and no partial map.
func UnmarshalDocument(data []byte) (*Tilemap, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode level document: %v: %w", err, ErrMalformedDocument)
	}
	if doc.Tilemap == nil {
		return nil, fmt.Errorf("missing tilemap: %w", ErrMalformedDocument)
	}
	if doc.TileSize == nil || *doc.TileSize <= 0 {
		return nil, fmt.Errorf("invalid tile_size: %w", ErrMalformedDocument)
	}

	tm := New(*doc.TileSize)
	for key, rec := range doc.Tilemap {
		c, err := parseCoordKey(key)
		if err != nil {
			return nil, err
		}
		if c.X != rec.Pos[0] || c.Y != rec.Pos[1] {
			return nil, fmt.Errorf("key %q does not match pos %v: %w", key, rec.Pos, ErrMalformedDocument)
		}
		if rec.Type == "" {
			return nil, fmt.Errorf("key %q has no type: %w", key, ErrMalformedDocument)
		}
		tm.Place(Tile{Kind: Kind(rec.Type), Variant: rec.Variant, Pos: c})
	}
	for i, rec := range doc.Offgrid {
		if rec.Type == "" {
			return nil, fmt.Errorf("offgrid[%d] has no type: %w", i, ErrMalformedDocument)
		}
		tm.AddOffgrid(OffgridTile{
			Kind:    Kind(rec.Type),
			Variant: rec.Variant,
			Pos:     gamemath.Vec2{X: rec.Pos[0], Y: rec.Pos[1]},
		})
	}
	return tm, nil
}

// Save writes the level document to path.
func (tm *Tilemap) Save(path string) error {
	data, err := tm.MarshalDocument()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save level %s: %w", path, err)
	}
	return nil
}

// Load reads a level document from path. A missing file yields ErrNotFound so
// the caller can fall back to an empty map.
func Load(path string) (*Tilemap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load level %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	tm, err := UnmarshalDocument(data)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return tm, nil
}
