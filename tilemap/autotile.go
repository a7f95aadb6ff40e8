package tilemap

type neighborMask uint8

const (
	maskRight neighborMask = 1 << iota
	maskLeft
	maskUp
	maskDown
)

var cardinalOffsets = []struct {
	dx, dy int
	bit    neighborMask
}{
	{1, 0, maskRight},
	{-1, 0, maskLeft},
	{0, -1, maskUp},
	{0, 1, maskDown},
}

// autotileVariants maps a set of same-kind cardinal neighbours to a variant:
// four corners, four T-junctions and the cross. Other sets leave the variant
// alone.
var autotileVariants = map[neighborMask]int{
	maskRight | maskDown:                     0,
	maskRight | maskDown | maskLeft:          1,
	maskLeft | maskDown:                      2,
	maskLeft | maskUp | maskDown:             3,
	maskLeft | maskUp:                        4,
	maskLeft | maskUp | maskRight:            5,
	maskRight | maskUp:                       6,
	maskRight | maskUp | maskDown:            7,
	maskRight | maskLeft | maskUp | maskDown: 8,
}

// Autotile recomputes the variant of every autotile-eligible tile from its
// same-kind cardinal neighbours. Diagonals are ignored. Running it again
// changes nothing since it never touches kinds.
func (tm *Tilemap) Autotile() {
	updates := make(map[Coord]int)
	for c, t := range tm.tiles {
		if !t.Kind.IsAutotile() {
			continue
		}
		if v, ok := autotileVariants[tm.neighborsOfKind(c, t.Kind)]; ok {
			updates[c] = v
		}
	}

	for c, v := range updates {
		t := tm.tiles[c]
		t.Variant = v
		tm.tiles[c] = t
	}
}

func (tm *Tilemap) neighborsOfKind(c Coord, kind Kind) neighborMask {
	var mask neighborMask
	for _, off := range cardinalOffsets {
		if n, ok := tm.tiles[c.Add(off.dx, off.dy)]; ok && n.Kind == kind {
			mask |= off.bit
		}
	}
	return mask
}
