// The variants package exhaustively enumerates the sequences reachable
// from a reference sequence under one specific edit model: deletions,
// insertions, mismatches, complemented or randomized stretches.
//
// Every enumerator returns the complete, deduplicated Set of results.
// The edit count and the sequence length are the dominant cost drivers;
// the per-function complexity is noted below where it is exponential.
package variants

import (
	"fmt"

	"freebarcodes/seqs"
)

// End selects which end of the sequence an operation applies to.
type End int

const (
	End5p End = iota
	End3p
)

func (e End) String() string {
	if e == End3p {
		return "3p"
	}

	return "5p"
}

// Calls fn with every ascending r-element subset of [0, n).
// The slice passed to fn is reused between calls.
// For r == 0 fn is called once with an empty tuple.
func combinations(n, r int, fn func(tup []int)) {
	if r == 0 {
		fn(nil)
		return
	}

	tup := make([]int, r)
	var rec func(start, k int)
	rec = func(start, k int) {
		if k == r {
			fn(tup)
			return
		}

		for i := start; i <= n-(r-k); i++ {
			tup[k] = i
			rec(i+1, k+1)
		}
	}

	rec(0, 0)
}

// Calls fn with every length-k string over the ACGT alphabet.
// For k == 0 fn is called once with the empty string.
func eachBlock(k int, fn func(block string)) {
	n := 1
	for i := 0; i < k; i++ {
		n *= 4
	}

	buf := make([]byte, k)
	for v := 0; v < n; v++ {
		x := v
		for i := k - 1; i >= 0; i-- {
			buf[i] = seqs.Bases[x&3]
			x >>= 2
		}

		fn(string(buf))
	}
}

// All sequences obtainable by removing n positions from seq.
// Enumerates all C(len, n) position subsets; every result has length
// len(seq) - n. For n == 0 the result is the singleton {seq}.
func Deletions(seq string, n int) (Set, error) {
	if n < 0 || n > len(seq) {
		return nil, fmt.Errorf("invalid deletion count %d for sequence of length %d", n, len(seq))
	}

	out := NewSet()
	buf := make([]byte, 0, len(seq)-n)
	combinations(len(seq), n, func(tup []int) {
		buf = buf[:0]
		k := 0
		for i := 0; i < len(seq); i++ {
			if k < len(tup) && tup[k] == i {
				k++
				continue
			}

			buf = append(buf, seq[i])
		}

		if len(buf) != len(seq)-n {
			panic("deletion result has wrong length")
		}

		out.Add(string(buf))
	})

	return out, nil
}

// All sequences obtained by splicing one contiguous block of length
// insLen into seq, enumerating every insertion point in [0, len] and
// every possible block. (len+1) * 4^insLen results before dedup.
func ContiguousInsertions(seq string, insLen int) (Set, error) {
	if insLen < 0 {
		return nil, fmt.Errorf("invalid insertion length %d", insLen)
	}

	out := NewSet()
	for i := 0; i <= len(seq); i++ {
		eachBlock(insLen, func(block string) {
			ns := seq[:i] + block + seq[i:]
			if len(ns) != len(seq)+insLen {
				panic("insertion result has wrong length")
			}

			out.Add(ns)
		})
	}

	return out, nil
}

// All sequences obtainable by inserting n single bases at n distinct
// slots. Slots are chosen from [1, len], so insertion before index 0 is
// deliberately excluded (use ContiguousInsertions for the fully
// symmetric single-block case).
// The base for slot i lands between seq[i-1] and seq[i].
// C(len, n) * 4^n results before dedup.
func Insertions(seq string, n int) (Set, error) {
	if n < 0 || n > len(seq) {
		return nil, fmt.Errorf("invalid insertion count %d for sequence of length %d", n, len(seq))
	}

	out := NewSet()
	buf := make([]byte, 0, len(seq)+n)
	combinations(len(seq), n, func(tup []int) {
		eachBlock(n, func(ins string) {
			if len(tup) == 0 {
				out.Add(seq)
				return
			}

			buf = buf[:0]
			buf = append(buf, seq[:tup[0]+1]...)
			for k := 0; k < len(tup); k++ {
				buf = append(buf, ins[k])
				end := len(seq)
				if k+1 < len(tup) {
					end = tup[k+1] + 1
				}

				buf = append(buf, seq[tup[k]+1:end]...)
			}

			if len(buf) != len(seq)+n {
				panic("insertion result has wrong length")
			}

			out.Add(string(buf))
		})
	})

	return out, nil
}

// All sequences differing from seq by substitutions at exactly n chosen
// positions, each position replaced with one of the 3 non-original
// bases. Length is preserved. C(len, n) * 3^n results before dedup,
// the most expensive enumerator.
func Mismatches(seq string, n int) (Set, error) {
	if n < 0 || n > len(seq) {
		return nil, fmt.Errorf("invalid mismatch count %d for sequence of length %d", n, len(seq))
	}

	out := NewSet()
	if n == 0 {
		out.Add(seq)
		return out, nil
	}

	others := make([]string, n)
	idx := make([]int, n)
	buf := make([]byte, len(seq))
	combinations(len(seq), n, func(tup []int) {
		for k, p := range tup {
			others[k] = otherBases(seq[p])
		}

		for k := range idx {
			idx[k] = 0
		}

		for {
			copy(buf, seq)
			for k, p := range tup {
				buf[p] = others[k][idx[k]]
			}

			out.Add(string(buf))

			k := n - 1
			for ; k >= 0; k-- {
				idx[k]++
				if idx[k] < 3 {
					break
				}

				idx[k] = 0
			}

			if k < 0 {
				break
			}
		}
	})

	return out, nil
}

// The 3 bases other than c, in alphabet order
func otherBases(c byte) string {
	var b []byte

	for i := 0; i < len(seqs.Bases); i++ {
		if seqs.Bases[i] != c {
			b = append(b, seqs.Bases[i])
		}
	}

	return string(b)
}

// All sequences with one w-wide window replaced by its forward
// complement. One result per valid window position; the empty set if w
// is wider than the sequence.
func StretchComplements(seq string, w int) (Set, error) {
	if w <= 0 {
		return nil, fmt.Errorf("invalid stretch width %d", w)
	}

	out := NewSet()
	for i := 0; i+w <= len(seq); i++ {
		out.Add(seq[:i] + seqs.Complement(seq[i:i+w]) + seq[i+w:])
	}

	return out, nil
}

// All sequences with one w-wide window replaced by every possible
// w-length string, a superset of StretchComplements.
// (len-w+1) * 4^w results before dedup.
func RandomizedStretches(seq string, w int) (Set, error) {
	if w <= 0 {
		return nil, fmt.Errorf("invalid stretch width %d", w)
	}

	out := NewSet()
	for i := 0; i+w <= len(seq); i++ {
		start, end := i, i+w
		eachBlock(w, func(block string) {
			out.Add(seq[:start] + block + seq[end:])
		})
	}

	return out, nil
}

// All sequences with the randLen bases nearest the chosen end replaced
// by every possible randLen-length string. The randomized stretch
// covers the pamLen-wide PAM region plus its neighboring bases, so
// randLen must be at least pamLen. Length is preserved.
func RandomizedPAM(seq string, pamLen, randLen int, end End) (Set, error) {
	if pamLen < 1 || randLen < pamLen {
		return nil, fmt.Errorf("invalid PAM randomization: pam %d, randomized %d", pamLen, randLen)
	}

	if randLen > len(seq) {
		return nil, fmt.Errorf("randomized length %d exceeds sequence length %d", randLen, len(seq))
	}

	out := NewSet()
	if end == End5p {
		tail := seq[randLen:]
		eachBlock(randLen, func(block string) {
			out.Add(block + tail)
		})
	} else {
		head := seq[:len(seq)-randLen]
		eachBlock(randLen, func(block string) {
			out.Add(head + block)
		})
	}

	return out, nil
}

// All sequences with seq[start:end] replaced by every possible string
// of that length. 4^(end-start) results.
func RandomizedRegion(seq string, start, end int) (Set, error) {
	if start < 0 || start >= end || end > len(seq) {
		return nil, fmt.Errorf("invalid region [%d, %d) for sequence of length %d", start, end, len(seq))
	}

	out := NewSet()
	eachBlock(end-start, func(block string) {
		out.Add(seq[:start] + block + seq[end:])
	})

	return out, nil
}

// Mismatches restricted to the region [start, end); the flanks are
// never touched.
func MismatchesInRegion(seq string, start, end, n int) (Set, error) {
	if start < 0 || start >= end || end > len(seq) {
		return nil, fmt.Errorf("invalid region [%d, %d) for sequence of length %d", start, end, len(seq))
	}

	inner, err := Mismatches(seq[start:end], n)
	if err != nil {
		return nil, err
	}

	out := NewSet()
	for m := range inner {
		out.Add(seq[:start] + m + seq[end:])
	}

	return out, nil
}
