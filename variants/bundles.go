package variants

import (
	"freebarcodes/seqs"
)

// A bundle is a contiguous span of the sequence used as the atomic unit
// for complement swapping. start is inclusive, end exclusive.
type bundle struct {
	start int
	end   int
}

// Tiles the sequence with bundles of the given length. The last bundle
// absorbs the leftover bases so the tiling is exact; if two bundles
// don't fit, the whole sequence is a single bundle.
func tile(seqlen, blen int) []bundle {
	if blen*2 > seqlen {
		return []bundle{{0, seqlen}}
	}

	var bundles []bundle
	last := seqlen - seqlen%blen - blen
	for s := 0; s < last; s += blen {
		bundles = append(bundles, bundle{s, s + blen})
	}

	return append(bundles, bundle{last, seqlen})
}

// All sequences with combinations of bundles replaced by their forward
// complement.
//
// The sequence is tiled with bundles of each odd length 3, 5, 7 and 9,
// and every choice of 2 or 3 bundles is complemented. For instance, a
// sequence of length 13 tiled with bundles of length 3:
//
//	... ... ... ....
//
// complementing 2 bundles at a time produces:
//
//	*** *** ... ....
//	*** ... *** ....
//	*** ... ... ****
//	... *** *** ....
//	... *** ... ****
//	... ... *** ****
//
// Combinations that would leave a third of the sequence or less
// untouched are skipped, so the un-complemented residue always exceeds
// len(seq)/3. Results are deduplicated across bundle lengths.
func ComplementBundles(seq string) Set {
	out := NewSet()
	n := len(seq)

	for blen := 3; blen <= 9; blen += 2 {
		bundles := tile(n, blen)

		for r := 2; r <= 3; r++ {
			combinations(len(bundles), r, func(tup []int) {
				span := 0
				for _, bi := range tup {
					span += bundles[bi].end - bundles[bi].start
				}

				if float64(n-span) <= float64(n)/3.0 {
					return
				}

				buf := []byte(seq)
				for _, bi := range tup {
					b := bundles[bi]
					copy(buf[b.start:b.end], seqs.Complement(seq[b.start:b.end]))
				}

				if len(buf) != n {
					panic("bundle complement changed the sequence length")
				}

				out.Add(string(buf))
			})
		}
	}

	return out
}
