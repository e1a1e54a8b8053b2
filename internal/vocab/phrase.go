package vocab

import "github.com/RoaringBitmap/roaring"

// Phrase returns the starting positions of every run of adjacent positions
// spelling terms, in increasing order.
func (v *Vocabulary) Phrase(terms []string) []uint32 {
	if len(terms) == 0 {
		return nil
	}

	positions := make([]*roaring.Bitmap, len(terms))
	for i, term := range terms {
		bm := v.lookup(term)
		if bm == nil {
			return nil
		}
		positions[i] = bm
	}

	return phraseStarts(positions)
}

// phraseStarts returns each p in positions[0] for which positions[i] contains
// p+i for every i.
func phraseStarts(positions []*roaring.Bitmap) []uint32 {
	var starts []uint32

	it := positions[0].Iterator()
	for it.HasNext() {
		start := it.Next()
		ok := true
		for i := 1; i < len(positions); i++ {
			if !positions[i].Contains(start + uint32(i)) {
				ok = false
				break
			}
		}
		if ok {
			starts = append(starts, start)
		}
	}
	return starts
}
