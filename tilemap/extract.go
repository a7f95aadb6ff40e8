package tilemap

import "github.com/automoto/summit/gamemath"

// Extract returns every off-grid and grid tile matching one of pairs. Grid
// matches come back with pixel positions. Matches are removed from the map
// unless keep is set. Off-grid matches come first, in list order, then grid
// matches row-major.
func (tm *Tilemap) Extract(pairs []KindVariant, keep bool) []OffgridTile {
	want := make(map[KindVariant]struct{}, len(pairs))
	for _, p := range pairs {
		want[p] = struct{}{}
	}
	matches := func(k Kind, v int) bool {
		_, ok := want[KindVariant{Kind: k, Variant: v}]
		return ok
	}

	var out []OffgridTile

	kept := make([]OffgridTile, 0, len(tm.offgrid))
	for _, t := range tm.offgrid {
		if matches(t.Kind, t.Variant) {
			out = append(out, t)
			if keep {
				kept = append(kept, t)
			}
			continue
		}
		kept = append(kept, t)
	}
	tm.offgrid = kept

	size := float64(tm.TileSize)
	for _, t := range tm.Tiles() {
		if !matches(t.Kind, t.Variant) {
			continue
		}
		out = append(out, OffgridTile{
			Kind:    t.Kind,
			Variant: t.Variant,
			Pos:     gamemath.Vec2{X: float64(t.Pos.X) * size, Y: float64(t.Pos.Y) * size},
		})
		if !keep {
			delete(tm.tiles, t.Pos)
		}
	}

	return out
}

// VariantsOf builds extraction pairs for one kind.
func VariantsOf(kind Kind, variants ...int) []KindVariant {
	out := make([]KindVariant, len(variants))
	for i, v := range variants {
		out[i] = KindVariant{Kind: kind, Variant: v}
	}
	return out
}
