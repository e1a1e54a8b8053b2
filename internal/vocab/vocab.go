package vocab

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring"
	"github.com/couchbase/vellum"

	"harshagw/docstats/internal/analysis"
)

// Vocabulary is an immutable term dictionary over one text. Terms live in an
// FST whose values are term ordinals; each ordinal owns a bitmap of the term
// positions where it occurs.
type Vocabulary struct {
	fst      *vellum.FST
	postings []*roaring.Bitmap // term ordinal -> positions
	offsets  []int             // position -> byte offset of the term
	ends     []int             // position -> byte offset just past the term
}

// Build analyses text and builds its vocabulary.
func Build(text string, analyzer analysis.Analyzer) (*Vocabulary, error) {
	tokens := analyzer.Analyze(text)

	termPositions := make(map[string]*roaring.Bitmap)
	v := &Vocabulary{
		offsets: make([]int, len(tokens)),
		ends:    make([]int, len(tokens)),
	}
	for i, tp := range tokens {
		bm, ok := termPositions[tp.Token]
		if !ok {
			bm = roaring.New()
			termPositions[tp.Token] = bm
		}
		bm.Add(uint32(tp.Position))
		v.offsets[i] = tp.Offset
		v.ends[i] = tp.Offset + len(tp.Token)
	}

	termList := make([]string, 0, len(termPositions))
	for term := range termPositions {
		termList = append(termList, term)
	}
	sort.Strings(termList)

	var fstBuf bytes.Buffer
	fstBuilder, err := vellum.New(&fstBuf, nil)
	if err != nil {
		return nil, err
	}
	v.postings = make([]*roaring.Bitmap, len(termList))
	for ord, term := range termList {
		if err := fstBuilder.Insert([]byte(term), uint64(ord)); err != nil {
			return nil, fmt.Errorf("failed to insert term %q: %w", term, err)
		}
		bm := termPositions[term]
		bm.RunOptimize()
		v.postings[ord] = bm
	}
	if err := fstBuilder.Close(); err != nil {
		return nil, err
	}

	v.fst, err = vellum.Load(fstBuf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to load term dictionary: %w", err)
	}
	return v, nil
}

// NumTerms returns the number of distinct terms.
func (v *Vocabulary) NumTerms() int { return len(v.postings) }

// NumPositions returns the number of term occurrences in the text.
func (v *Vocabulary) NumPositions() int { return len(v.offsets) }

// Offset returns the byte offset of the term at pos.
func (v *Vocabulary) Offset(pos uint32) int { return v.offsets[pos] }

// End returns the byte offset just past the term at pos.
func (v *Vocabulary) End(pos uint32) int { return v.ends[pos] }

// Lookup returns the positions of term, or nil when the term is unknown. The
// returned bitmap is a copy.
func (v *Vocabulary) Lookup(term string) *roaring.Bitmap {
	bm := v.lookup(term)
	if bm == nil {
		return nil
	}
	return bm.Clone()
}

// Count returns how often term occurs.
func (v *Vocabulary) Count(term string) uint64 {
	bm := v.lookup(term)
	if bm == nil {
		return 0
	}
	return bm.GetCardinality()
}

func (v *Vocabulary) lookup(term string) *roaring.Bitmap {
	if v.fst == nil {
		return nil
	}
	ord, exists, err := v.fst.Get([]byte(term))
	if err != nil || !exists {
		return nil
	}
	return v.postings[ord]
}

// Close releases the dictionary.
func (v *Vocabulary) Close() error {
	if v.fst == nil {
		return nil
	}
	err := v.fst.Close()
	v.fst = nil
	return err
}
