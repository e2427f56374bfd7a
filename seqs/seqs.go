// The seqs package defines the DNA sequence primitives shared by the
// variant enumerators and the error injector: the base alphabet,
// complement maps, base-4 conversions and distance functions.
//
// Sequences are plain Go strings over the alphabet "ACGT" and are never
// modified in place; every operation returns a new string.
package seqs

// Alphabet of the nucleotides, in numeric order (A=0, C=1, G=2, T=3)
const Bases = "ACGT"

var comptbl [256]byte

func init() {
	for i := range comptbl {
		comptbl[i] = 'N'
	}

	set := func(c, cc byte) { comptbl[c] = cc }
	set('A', 'T')
	set('C', 'G')
	set('G', 'C')
	set('T', 'A')
	set('N', 'N')
	set('a', 't')
	set('c', 'g')
	set('g', 'c')
	set('t', 'a')
	set('n', 'n')
}

// Converts the numeric value of a nucleotide (nt) to its character value
func Nt2Char(nt int) byte {
	if nt < 0 || nt >= len(Bases) {
		return '?'
	}

	return Bases[nt]
}

// Converts the character value of a nt to its numeric value, -1 if the
// character is not one of ACGT
func Char2Nt(c byte) int {
	switch c {
	default:
		return -1
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	}
}

// Returns true if the sequence consists only of ACGT characters
func Valid(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if Char2Nt(seq[i]) < 0 {
			return false
		}
	}

	return true
}

// Watson-Crick complement in forward order (A<->T, C<->G), not reversed.
// Characters outside acgtnACGTN map to 'N'.
func Complement(seq string) string {
	b := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b[i] = comptbl[seq[i]]
	}

	return string(b)
}

// Replaces the last n bases of the sequence with their forward
// complement. Returns the sequence unchanged for n <= 0.
func ComplementTail(seq string, n int) string {
	if n <= 0 {
		return seq
	}

	if n > len(seq) {
		n = len(seq)
	}

	return seq[:len(seq)-n] + Complement(seq[len(seq)-n:])
}

// Reverse complement: Complement applied and the result reversed
func RevComp(seq string) string {
	b := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b[len(seq)-1-i] = comptbl[seq[i]]
	}

	return string(b)
}

// Converts a sequence to a number, treating it as base 4 with
// 'ACGT' = 0123 and the first character most significant.
// Returns false if the sequence contains non-ACGT characters.
func Seq2Num(seq string) (uint64, bool) {
	var v uint64

	for i := 0; i < len(seq); i++ {
		nt := Char2Nt(seq[i])
		if nt < 0 {
			return 0, false
		}

		v = v<<2 | uint64(nt)
	}

	return v, true
}

// Converts a number to a sequence of the specified length, the inverse
// of Seq2Num
func Num2Seq(v uint64, seqlen int) string {
	b := make([]byte, seqlen)
	for i := seqlen - 1; i >= 0; i-- {
		b[i] = Bases[v&3]
		v >>= 2
	}

	return string(b)
}

// Labels the positions where seq differs from ref, in the form
// "A3C,G7T" (reference base, position, read base)
func MismatchNames(ref, seq string) string {
	var ret []byte

	n := len(ref)
	if len(seq) < n {
		n = len(seq)
	}

	for i := 0; i < n; i++ {
		if ref[i] == seq[i] {
			continue
		}

		if ret != nil {
			ret = append(ret, ',')
		}

		ret = append(ret, ref[i])
		ret = appendInt(ret, i)
		ret = append(ret, seq[i])
	}

	return string(ret)
}

func appendInt(b []byte, v int) []byte {
	if v >= 10 {
		b = appendInt(b, v/10)
	}

	return append(b, byte('0'+v%10))
}

// Number of positions where the two sequences differ. If the sequences
// have different lengths, only the overlapping prefix is compared.
func HammingDistance(s1, s2 string) int {
	n := len(s1)
	if len(s2) < n {
		n = len(s2)
	}

	d := 0
	for i := 0; i < n; i++ {
		if s1[i] != s2[i] {
			d++
		}
	}

	return d
}

// Implements Levenshtein distance
func Distance(a, b string) int {
	f := make([]int, len(b)+1)

	for j := range f {
		f[j] = j
	}

	for n := 0; n < len(a); n++ {
		ca := a[n]
		j := 1
		fj1 := f[0] // fj1 is the value of f[j - 1] in last iteration
		f[0]++
		for m := 0; m < len(b); m++ {
			cb := b[m]
			mn := min(f[j]+1, f[j-1]+1) // delete & insert
			if cb != ca {
				mn = min(mn, fj1+1) // change
			} else {
				mn = min(mn, fj1) // matched
			}

			fj1, f[j] = f[j], mn
			j++
		}
	}

	return f[len(f)-1]
}

// Scans all len(target)-wide windows of seq and returns the first window
// with minimum Hamming distance to the target, together with its start
// position and the distance.
// Returns position -1 if seq is shorter than the target.
func NearestWindow(target, seq string) (pos int, window string, dist int) {
	last := len(seq) - len(target)
	if last < 0 {
		return -1, "", 0
	}

	pos = 0
	dist = HammingDistance(target, seq[0:len(target)])
	for i := 1; i <= last; i++ {
		d := HammingDistance(target, seq[i:i+len(target)])
		if d < dist {
			pos = i
			dist = d
		}
	}

	return pos, seq[pos : pos+len(target)], dist
}
