package ftsindex

import "encoding/binary"

// DefaultWeights scores only the content column: the id column (column 0)
// carries weight 0 and never contributes.
func DefaultWeights() []float64 {
	return []float64{0, 1.0}
}

// decodeRelevance converts a raw matchinfo blob into a relevance score.
//
// The blob layout is a hard contract with the index provider: a sequence
// of 4-byte unsigned integers in the provider's native byte order. The
// first two integers (phrase and column counts) are a header and are
// discarded. The remainder is consumed as consecutive
// (hits_in_row, hits_in_all_rows, total_rows) triples, one per indexed
// column in column order, paired positionally with weights.
//
// The score is the sum over columns of hits_in_row * weight / hits_in_all_rows.
// Columns with weight 0 or with no hits anywhere are skipped, so the
// division can never be by zero.
func decodeRelevance(blob []byte, weights []float64) float64 {
	if len(blob) < 8 {
		return 0
	}
	values := make([]uint32, len(blob)/4)
	for i := range values {
		values[i] = binary.NativeEndian.Uint32(blob[i*4:])
	}
	triples := values[2:]

	score := 0.0
	for i, weight := range weights {
		base := i * 3
		if base+2 >= len(triples) {
			break
		}
		hitsInRow := triples[base]
		hitsInAllRows := triples[base+1]
		if weight == 0 || hitsInAllRows == 0 {
			continue
		}
		score += float64(hitsInRow) * weight / float64(hitsInAllRows)
	}
	return score
}
