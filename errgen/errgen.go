// The errgen package injects randomized synthetic sequencing errors
// into sequences: substitutions, deletions, insertions and a composite
// free edit-distance model that mixes all three under a shared budget.
//
// Unlike the variants package, which enumerates every reachable
// sequence, errgen draws a single mutated sequence per call from a
// seeded random source.
package errgen

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"freebarcodes/seqs"
)

// Generator produces mutated sequences from a pseudorandom source.
// It is safe for concurrent use; the source is guarded by the mutex.
type Generator struct {
	sync.Mutex
	rnd *rand.Rand
}

// Creates a generator with the specified random seed.
// A seed of 0 uses the current time.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().Unix()
	}

	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Returns a uniformly random sequence of the specified length
func (g *Generator) Random(seqlen int) string {
	g.Lock()
	defer g.Unlock()

	buf := make([]byte, seqlen)
	for i := range buf {
		buf[i] = seqs.Bases[g.rnd.Intn(4)]
	}

	return string(buf)
}

// the random source needs to be locked
func (g *Generator) randBaseLocked() byte {
	return seqs.Bases[g.rnd.Intn(4)]
}

// a uniformly random base other than c; the random source needs to be locked
func (g *Generator) randOtherBaseLocked(c byte) byte {
	n := g.rnd.Intn(3)
	if n >= seqs.Char2Nt(c) {
		n++
	}

	return seqs.Bases[n]
}

// k distinct values from [0, n), ascending; the random source needs to be locked
func (g *Generator) sampleLocked(n, k int) []int {
	idxs := g.rnd.Perm(n)[:k]
	sort.Ints(idxs)
	return idxs
}

// Replaces the base at one random position with a random non-original base
func (g *Generator) SubstituteOne(seq string) (string, error) {
	return g.Substitute(seq, 1)
}

// Picks n distinct positions and replaces each with a uniformly chosen
// non-original base. Length is preserved.
func (g *Generator) Substitute(seq string, n int) (string, error) {
	if n < 0 || n > len(seq) {
		return "", fmt.Errorf("invalid substitution count %d for sequence of length %d", n, len(seq))
	}

	g.Lock()
	defer g.Unlock()

	return g.substituteLocked(seq, n), nil
}

func (g *Generator) substituteLocked(seq string, n int) string {
	buf := []byte(seq)
	for _, i := range g.sampleLocked(len(seq), n) {
		buf[i] = g.randOtherBaseLocked(buf[i])
	}

	return string(buf)
}

// Removes the base at one random position
func (g *Generator) DeleteOne(seq string) (string, error) {
	return g.Delete(seq, 1)
}

// Removes the base at one random position and right-pads with a random
// base back to the original length
func (g *Generator) DeleteOneFilled(seq string) (string, error) {
	return g.DeleteFilled(seq, 1)
}

// Picks n distinct positions and removes them, highest index first so
// the remaining indices stay valid. Result length is len(seq) - n.
func (g *Generator) Delete(seq string, n int) (string, error) {
	if n < 0 || n > len(seq) {
		return "", fmt.Errorf("invalid deletion count %d for sequence of length %d", n, len(seq))
	}

	g.Lock()
	defer g.Unlock()

	return g.deleteLocked(seq, n), nil
}

func (g *Generator) deleteLocked(seq string, n int) string {
	idxs := g.sampleLocked(len(seq), n)
	for k := len(idxs) - 1; k >= 0; k-- {
		i := idxs[k]
		seq = seq[:i] + seq[i+1:]
	}

	return seq
}

// Delete followed by right-padding with random bases back to the
// original length
func (g *Generator) DeleteFilled(seq string, n int) (string, error) {
	if n < 0 || n > len(seq) {
		return "", fmt.Errorf("invalid deletion count %d for sequence of length %d", n, len(seq))
	}

	g.Lock()
	defer g.Unlock()

	return g.fillOrTruncateLocked(g.deleteLocked(seq, n), len(seq)), nil
}

// Inserts a random base at one random slot
func (g *Generator) InsertOne(seq string) (string, error) {
	return g.Insert(seq, 1)
}

// Inserts a random base at one random slot and truncates back to the
// original length
func (g *Generator) InsertOneTruncated(seq string) (string, error) {
	return g.InsertTruncated(seq, 1)
}

// Inserts n uniformly random bases. The n slots are drawn independently
// with replacement from [0, len), since repeated insertions at the same
// original offset are valid, and applied highest original index first.
// Result length is len(seq) + n.
func (g *Generator) Insert(seq string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("invalid insertion count %d", n)
	}

	if len(seq) == 0 && n > 0 {
		return "", fmt.Errorf("cannot insert into an empty sequence")
	}

	g.Lock()
	defer g.Unlock()

	return g.insertLocked(seq, n), nil
}

func (g *Generator) insertLocked(seq string, n int) string {
	idxs := make([]int, n)
	for k := range idxs {
		idxs[k] = g.rnd.Intn(len(seq))
	}

	sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
	for _, i := range idxs {
		seq = seq[:i] + string(g.randBaseLocked()) + seq[i:]
	}

	return seq
}

// Insert followed by truncation back to the original length
func (g *Generator) InsertTruncated(seq string, n int) (string, error) {
	ns, err := g.Insert(seq, n)
	if err != nil {
		return "", err
	}

	return ns[:len(seq)], nil
}

// Applies nerr errors of mixed types: the budget is split uniformly
// into substitutions, deletions and insertions, which are applied in
// the order substitute, insert, delete (each stage sees the previous
// stage's output, so later indices are relative to the intermediate
// sequence). The result is filled or truncated back to the original
// length.
func (g *Generator) FreeEdit(seq string, nerr int) (string, error) {
	if nerr < 0 || nerr > len(seq) {
		return "", fmt.Errorf("invalid error count %d for sequence of length %d", nerr, len(seq))
	}

	g.Lock()
	defer g.Unlock()

	nmm := g.rnd.Intn(nerr + 1)
	ndel := g.rnd.Intn(nerr - nmm + 1)
	nins := nerr - nmm - ndel

	ns := g.substituteLocked(seq, nmm)
	ns = g.insertLocked(ns, nins)
	ns = g.deleteLocked(ns, ndel)

	return g.fillOrTruncateLocked(ns, len(seq)), nil
}

// Truncates the sequence if it is longer than seqlen, otherwise
// right-pads it with uniformly random bases.
func (g *Generator) FillOrTruncate(seq string, seqlen int) (string, error) {
	if seqlen < 0 {
		return "", fmt.Errorf("invalid target length %d", seqlen)
	}

	g.Lock()
	defer g.Unlock()

	return g.fillOrTruncateLocked(seq, seqlen), nil
}

func (g *Generator) fillOrTruncateLocked(seq string, seqlen int) string {
	if len(seq) >= seqlen {
		return seq[:seqlen]
	}

	buf := []byte(seq)
	for len(buf) < seqlen {
		buf = append(buf, g.randBaseLocked())
	}

	return string(buf)
}
