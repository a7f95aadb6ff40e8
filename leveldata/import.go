// Package leveldata imports Tiled maps into tilemaps and persists level slots.
package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/summit/config"
	"github.com/automoto/summit/gamemath"
	"github.com/automoto/summit/logger"
	"github.com/automoto/summit/tilemap"
)

const (
	tileLayerName    = "tiles"
	offgridGroupName = "offgrid"
)

// ImportTMX parses a TMX file into a Tilemap. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func ImportTMX(fsys fs.FS, tmxPath string) (*tilemap.Tilemap, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileSize := levelMap.TileWidth
	if tileSize <= 0 {
		tileSize = config.Level.TileSize
	}
	tm := tilemap.New(tileSize)

	if layer := gridLayer(levelMap); layer != nil {
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) {
					break
				}
				tile := layer.Tiles[i]
				if tile == nil || tile.IsNil() {
					continue
				}
				kind, variant := tileKind(tile)
				tm.Place(tilemap.Tile{Kind: kind, Variant: variant, Pos: tilemap.Coord{X: x, Y: y}})
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != offgridGroupName {
			continue
		}
		for _, o := range og.Objects {
			kind := o.Properties.GetString("type")
			if kind == "" {
				kind = o.Name
			}
			if kind == "" {
				continue
			}
			tm.AddOffgrid(tilemap.OffgridTile{
				Kind:    tilemap.Kind(kind),
				Variant: o.Properties.GetInt("variant"),
				Pos:     gamemath.Vec2{X: o.X, Y: o.Y},
			})
		}
	}

	logger.Log.Debugw("Imported TMX", "path", tmxPath, "tiles", tm.Len(), "offgrid", len(tm.Offgrid()))
	return tm, nil
}

func gridLayer(m *tiled.Map) *tiled.Layer {
	for _, layer := range m.Layers {
		if layer.Name == tileLayerName {
			return layer
		}
	}
	if len(m.Layers) > 0 {
		return m.Layers[0]
	}
	return nil
}

// tileKind reads the kind from the tileset tile "type" property, falling back
// to the tileset name. The variant comes from "variant", else the local id.
func tileKind(tile *tiled.LayerTile) (tilemap.Kind, int) {
	kind := ""
	variant := int(tile.ID)
	if tile.Tileset == nil {
		return tilemap.Kind(kind), variant
	}
	kind = tile.Tileset.Name
	if tt, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
		if k := tt.Properties.GetString("type"); k != "" {
			kind = k
		}
		if hasProperty(tt.Properties, "variant") {
			variant = tt.Properties.GetInt("variant")
		}
	}
	return tilemap.Kind(kind), variant
}

// ImportAll imports every .tmx file in dir within fsys, keyed by stem name,
// plus a sorted list of names.
func ImportAll(fsys fs.FS, dir string) (map[string]*tilemap.Tilemap, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*tilemap.Tilemap, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		tm, err := ImportTMX(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("import %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = tm
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}

func hasProperty(props tiled.Properties, name string) bool {
	for _, p := range props {
		if p.Name == name {
			return true
		}
	}
	return false
}
